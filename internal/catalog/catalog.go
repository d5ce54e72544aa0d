// Package catalog defines the closed registry of supported linters: which
// dedicated config filenames betray each tool, and which sections inside the
// shared config files (pyproject.toml, setup.cfg, tox.ini) count as evidence
// for it. The registry is a static table; adding a tool is a data edit, not
// a dispatch change.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// MatchKind selects how a SectionRule compares a parsed section name.
type MatchKind int

const (
	// MatchExact requires the full section name, case-sensitive.
	MatchExact MatchKind = iota
	// MatchPrefix matches the pattern itself or any dotted subsection of it,
	// case-sensitive. "tool.pylint" matches "tool.pylint.messages_control"
	// but not "tool.pylintfoo".
	MatchPrefix
	// MatchSubstring matches case-insensitively anywhere in the name.
	// Patterns are stored lowercase.
	MatchSubstring
)

// SharedKind identifies a shared multi-tool config file by its basename.
type SharedKind string

const (
	SharedManifest SharedKind = "pyproject.toml"
	SharedSetup    SharedKind = "setup.cfg"
	SharedTox      SharedKind = "tox.ini"
)

// sharedKinds fixes the listing order for verbose summaries.
var sharedKinds = []SharedKind{SharedManifest, SharedSetup, SharedTox}

// SectionRule decides whether a section name counts as evidence for a tool
// and derives the finding's reason string.
type SectionRule struct {
	Kind    MatchKind
	Pattern string
	// TrimPrefix is stripped from the matched name when building the reason,
	// so manifest pylint matches report "pylint.messages_control section"
	// rather than the raw table header.
	TrimPrefix string
}

// Matches reports whether the section name satisfies the rule.
func (r SectionRule) Matches(name string) bool {
	switch r.Kind {
	case MatchExact:
		return name == r.Pattern
	case MatchPrefix:
		return name == r.Pattern || strings.HasPrefix(name, r.Pattern+".")
	case MatchSubstring:
		return strings.Contains(strings.ToLower(name), r.Pattern)
	default:
		return false
	}
}

// Reason builds the reason string for a matched name. The literal name is
// preserved apart from TrimPrefix, so substring matches report the section
// exactly as written.
func (r SectionRule) Reason(name string) string {
	return strings.TrimPrefix(name, r.TrimPrefix) + " section"
}

// Display renders the rule for verbose listings.
func (r SectionRule) Display() string {
	switch r.Kind {
	case MatchPrefix:
		return "[" + r.Pattern + ".*]"
	case MatchSubstring:
		return "[*" + r.Pattern + "*]"
	default:
		return "[" + r.Pattern + "]"
	}
}

// LinterSpec is one tool's catalog entry.
type LinterSpec struct {
	Name           string
	Dedicated      []string // exact basenames
	DedicatedGlobs []string // basename glob patterns
	Shared         map[SharedKind][]SectionRule
}

var specs = []LinterSpec{
	{
		Name:      "pylint",
		Dedicated: []string{".pylintrc", "pylintrc", ".pylintrc.toml"},
		Shared: map[SharedKind][]SectionRule{
			SharedManifest: {{Kind: MatchPrefix, Pattern: "tool.pylint", TrimPrefix: "tool."}},
			SharedSetup:    {{Kind: MatchSubstring, Pattern: "pylint"}},
			SharedTox:      {{Kind: MatchSubstring, Pattern: "pylint"}},
		},
	},
	{
		Name:      "mypy",
		Dedicated: []string{"mypy.ini", ".mypy.ini"},
		Shared: map[SharedKind][]SectionRule{
			SharedManifest: {{Kind: MatchExact, Pattern: "tool.mypy"}},
			SharedSetup:    {{Kind: MatchExact, Pattern: "mypy"}},
			SharedTox:      {{Kind: MatchExact, Pattern: "mypy"}},
		},
	},
	{
		Name:      "pytest",
		Dedicated: []string{"pytest.ini"},
		Shared: map[SharedKind][]SectionRule{
			SharedManifest: {{Kind: MatchExact, Pattern: "tool.pytest.ini_options"}},
			SharedSetup:    {{Kind: MatchExact, Pattern: "tool:pytest"}},
			SharedTox: {
				{Kind: MatchExact, Pattern: "pytest"},
				{Kind: MatchExact, Pattern: "tool:pytest"},
			},
		},
	},
	{
		Name:      "yamllint",
		Dedicated: []string{".yamllint", ".yamllint.yml", ".yamllint.yaml"},
		Shared: map[SharedKind][]SectionRule{
			SharedManifest: {{Kind: MatchExact, Pattern: "tool.yamllint"}},
		},
	},
	{
		Name:           "jscpd",
		Dedicated:      []string{".jscpd.json", ".jscpd.yml", ".jscpd.yaml", ".jscpd.toml"},
		DedicatedGlobs: []string{".jscpdrc*"},
		Shared: map[SharedKind][]SectionRule{
			SharedManifest: {{Kind: MatchExact, Pattern: "tool.jscpd"}},
		},
	},
	{
		Name: "markdownlint",
		Dedicated: []string{
			".markdownlint.json", ".markdownlint.jsonc",
			".markdownlint.yaml", ".markdownlint.yml", ".markdownlintrc",
		},
	},
}

// Names returns every known tool name, sorted.
func Names() []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

type dedicatedGlob struct {
	tool    string
	pattern glob.Glob
}

// Catalog is the registry filtered to the active linters. Tools outside the
// active set never produce findings: the narrowing is a pre-filter, not a
// post-filter on findings.
type Catalog struct {
	active    []LinterSpec // catalog table order
	dedicated map[string]string
	globs     []dedicatedGlob
}

// Parse builds a Catalog from a comma-separated linter list. Names are
// trimmed and lowercased; unknown names and an empty list are usage errors.
func Parse(list string) (*Catalog, error) {
	requested := map[string]bool{}
	for _, part := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			requested[name] = true
		}
	}
	if len(requested) == 0 {
		return nil, errors.New("at least one linter must be specified")
	}

	known := map[string]bool{}
	for _, s := range specs {
		known[s.Name] = true
	}
	var invalid []string
	for name := range requested {
		if !known[name] {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, fmt.Errorf("invalid linter(s): %s; valid options: %s",
			strings.Join(invalid, ", "), strings.Join(Names(), ", "))
	}

	c := &Catalog{dedicated: map[string]string{}}
	for _, s := range specs {
		if !requested[s.Name] {
			continue
		}
		c.active = append(c.active, s)
		for _, basename := range s.Dedicated {
			c.dedicated[basename] = s.Name
		}
		for _, p := range s.DedicatedGlobs {
			c.globs = append(c.globs, dedicatedGlob{tool: s.Name, pattern: glob.MustCompile(p)})
		}
	}
	return c, nil
}

// DedicatedTool reports the active tool whose dedicated config file matches
// the basename, if any. Matching is against the basename only, never the
// full path.
func (c *Catalog) DedicatedTool(basename string) (string, bool) {
	if tool, ok := c.dedicated[basename]; ok {
		return tool, true
	}
	for _, dg := range c.globs {
		if dg.pattern.Match(basename) {
			return dg.tool, true
		}
	}
	return "", false
}

// SharedFile reports whether the basename is a shared config file that at
// least one active linter has section rules for. Files whose kind no active
// linter inspects are skipped without being read.
func (c *Catalog) SharedFile(basename string) (SharedKind, bool) {
	kind := SharedKind(basename)
	switch kind {
	case SharedManifest, SharedSetup, SharedTox:
	default:
		return "", false
	}
	for _, s := range c.active {
		if len(s.Shared[kind]) > 0 {
			return kind, true
		}
	}
	return "", false
}

// SectionMatch pairs the tool a section name implicates with the reason to
// report.
type SectionMatch struct {
	Tool   string
	Reason string
}

// MatchSection tests a parsed section name against every active rule for
// the given shared-file kind, in catalog table order.
func (c *Catalog) MatchSection(kind SharedKind, name string) []SectionMatch {
	var out []SectionMatch
	for _, s := range c.active {
		for _, r := range s.Shared[kind] {
			if r.Matches(name) {
				out = append(out, SectionMatch{Tool: s.Name, Reason: r.Reason(name)})
			}
		}
	}
	return out
}

// Active returns the active tool names, sorted.
func (c *Catalog) Active() []string {
	names := make([]string, 0, len(c.active))
	for _, s := range c.active {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// Summary lists everything checked for one linter, for verbose output.
type Summary struct {
	Name   string
	Checks []string
}

// Summaries describes, per active linter, the dedicated filenames and
// shared-file sections the scan will look for. Linters sort by name;
// dedicated patterns sort alphabetically ahead of the shared descriptions.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.active))
	for _, s := range c.active {
		files := make([]string, 0, len(s.Dedicated)+len(s.DedicatedGlobs))
		files = append(files, s.Dedicated...)
		files = append(files, s.DedicatedGlobs...)
		sort.Strings(files)

		checks := files
		for _, kind := range sharedKinds {
			for _, r := range s.Shared[kind] {
				checks = append(checks, fmt.Sprintf("%s in %s", r.Display(), kind))
			}
		}
		out = append(out, Summary{Name: s.Name, Checks: checks})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
