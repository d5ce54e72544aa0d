package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/IAmJonoBo/lintgate/internal/catalog"
	"github.com/IAmJonoBo/lintgate/internal/model"
)

// renderFindings writes the findings in the selected format. JSON always
// emits a single array, [] included, with raw paths; the plain format goes
// through Finding.String.
func renderFindings(w io.Writer, findings []model.Finding, asJSON, asCount bool) error {
	switch {
	case asJSON:
		return json.NewEncoder(w).Encode(findings)
	case asCount:
		_, err := fmt.Fprintln(w, len(findings))
		return err
	default:
		for _, f := range findings {
			fmt.Fprintln(w, f)
		}
		return nil
	}
}

// printChecking opens the verbose output: the active linters, then every
// file and section the scan will look for, one line per linter.
func printChecking(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "Checking for: %s\n", strings.Join(cat.Active(), ", "))
	for _, s := range cat.Summaries() {
		fmt.Fprintf(w, "  %s: %s\n", s.Name, strings.Join(s.Checks, ", "))
	}
}

// printSummary closes the verbose output.
func printSummary(w io.Writer, dirsScanned, findingCount int) {
	fmt.Fprintf(w, "Scanned %d directory(ies), found %d finding(s)\n", dirsScanned, findingCount)
}
