// Package model defines the finding record shared by the scan engine and
// the CLI rendering layer.
package model

import (
	"os"
	"path/filepath"
	"strings"
)

// Finding is a single detected instance of linter configuration: a dedicated
// config file or an embedded section inside a shared config file. Field
// order is load-bearing: JSON output must emit path, tool, reason.
type Finding struct {
	Path   string `json:"path"`
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
}

// String renders the finding in the path:tool:reason gate format. The path
// is shown relative to the working directory when it lies inside it; JSON
// output keeps the raw path.
func (f Finding) String() string {
	return displayPath(f.Path) + ":" + f.Tool + ":" + f.Reason
}

// displayPath shortens paths under the working directory for readability.
// Paths outside it, and paths that were walked relative to begin with, pass
// through unchanged.
func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
