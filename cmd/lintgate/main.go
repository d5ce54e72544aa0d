// Command lintgate scans directory trees for per-repository linter
// configuration and fails when any is found, keeping lint policy centralized.
package main

import (
	"os"

	"github.com/IAmJonoBo/lintgate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
