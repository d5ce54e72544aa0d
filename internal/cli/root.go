// Package cli wires the command line to the scan engine.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/IAmJonoBo/lintgate/internal/catalog"
	"github.com/IAmJonoBo/lintgate/internal/logging"
	"github.com/IAmJonoBo/lintgate/internal/model"
	"github.com/IAmJonoBo/lintgate/internal/scan"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
)

// errFindings signals a run that completed cleanly but found linter
// configuration.
var errFindings = errors.New("findings present")

type options struct {
	linters  string
	excludes []string
	quiet    bool
	count    bool
	json     bool
	verbose  bool
	failFast bool
	warnOnly bool
	debug    bool
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return exitFindings
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	return exitOK
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lintgate [flags] DIRECTORY...",
		Short: "Assert that no linter config files exist in directories",
		Long: `lintgate scans directory trees for per-repository linter configuration:
dedicated config files and tool sections embedded in pyproject.toml,
setup.cfg, or tox.ini. Every finding is reported as path:tool:reason and
any finding fails the gate with exit code 1.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(args, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.linters, "linters", "",
		"comma-separated linters to check (options: "+strings.Join(catalog.Names(), ", ")+")")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "glob pattern to exclude paths (repeatable)")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress output, exit code only")
	flags.BoolVar(&opts.count, "count", false, "print finding count only")
	flags.BoolVar(&opts.json, "json", false, "output findings as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show linters, directories scanned, findings, and a summary")
	flags.BoolVar(&opts.failFast, "fail-fast", false, "stop at the first finding")
	flags.BoolVar(&opts.warnOnly, "warn-only", false, "report findings but exit 0")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("linters")
	// The four output modes contradict each other; picking several is a
	// usage error rather than a silent precedence choice.
	cmd.MarkFlagsMutuallyExclusive("quiet", "count", "json", "verbose")

	return cmd
}

// run performs a full scan. Usage and root errors surface as returned
// errors (exit 2); findings surface as errFindings (exit 1) unless
// warn-only downgrades them.
func (o *options) run(roots []string, stdout io.Writer) error {
	cat, err := catalog.Parse(o.linters)
	if err != nil {
		return err
	}

	excludes := make([]glob.Glob, 0, len(o.excludes))
	for _, pattern := range o.excludes {
		g, err := glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	if err := scan.ValidateRoots(roots); err != nil {
		return err
	}

	log := logging.New(o.debug)
	defer func() { _ = log.Sync() }()

	if o.verbose {
		printChecking(stdout, cat)
	}

	scanner := scan.New(cat, scan.Config{Roots: roots, Excludes: excludes, FailFast: o.failFast}, log)
	if o.verbose {
		scanner.OnRootStart = func(root string) { fmt.Fprintf(stdout, "Scanning: %s\n", root) }
		scanner.OnFinding = func(f model.Finding) { fmt.Fprintln(stdout, f) }
	}

	res, err := scanner.Run()
	if err != nil {
		return err
	}

	if o.verbose {
		printSummary(stdout, res.RootsScanned, len(res.Findings))
	} else if !o.quiet {
		if err := renderFindings(stdout, res.Findings, o.json, o.count); err != nil {
			return err
		}
	}

	if len(res.Findings) > 0 && !o.warnOnly {
		return errFindings
	}
	return nil
}
