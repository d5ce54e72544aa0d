// Package scan implements the directory walk that feeds paths through the
// catalog and the shared-config inspectors, aggregating findings.
//
// Walk policy: directories are visited in lexical order so output is
// reproducible across runs on the same tree. Excluded paths are pruned
// before descent, .git directories are always pruned, and symlinked
// directories below a root are never followed. A root that cannot be read
// aborts the run; everything below a root degrades to a warning and a skip.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/IAmJonoBo/lintgate/internal/catalog"
	"github.com/IAmJonoBo/lintgate/internal/inspect"
	"github.com/IAmJonoBo/lintgate/internal/model"
)

// errStopWalk aborts the walk once fail-fast has its finding.
var errStopWalk = errors.New("stop walk")

// Config carries the walk parameters.
type Config struct {
	Roots    []string
	Excludes []glob.Glob
	FailFast bool
}

// Result is the outcome of scanning every root.
type Result struct {
	Findings     []model.Finding
	Truncated    bool
	RootsScanned int
}

// Scanner walks directory trees looking for linter configuration. Not safe
// for concurrent use.
type Scanner struct {
	catalog *catalog.Catalog
	cfg     Config
	log     *zap.SugaredLogger

	// OnRootStart, when set, runs before each root is walked. OnFinding
	// runs as each finding is recorded, in discovery order.
	OnRootStart func(root string)
	OnFinding   func(f model.Finding)

	seen      map[model.Finding]struct{}
	findings  []model.Finding
	truncated bool
}

// New builds a Scanner over the given catalog. The logger must be non-nil.
func New(c *catalog.Catalog, cfg Config, log *zap.SugaredLogger) *Scanner {
	return &Scanner{catalog: c, cfg: cfg, log: log}
}

// Run scans every configured root in order. Findings are de-duplicated by
// (path, tool, reason) across the whole run, and Findings is never nil.
// Under fail-fast the first finding stops the walk, skips any remaining
// roots, and marks the result truncated; callers must not treat a truncated
// findings list as complete.
func (s *Scanner) Run() (*Result, error) {
	s.seen = make(map[model.Finding]struct{})
	s.findings = []model.Finding{}
	s.truncated = false

	res := &Result{}
	for _, root := range s.cfg.Roots {
		if s.OnRootStart != nil {
			s.OnRootStart(root)
		}
		res.RootsScanned++
		if err := s.walkRoot(root); err != nil {
			return nil, err
		}
		if s.truncated {
			break
		}
	}
	res.Findings = s.findings
	res.Truncated = s.truncated
	return res, nil
}

// ValidateRoots verifies every root exists, is a directory, and can be
// opened for reading. Callers run it before scanning so a bad root fails
// the run before any output is produced.
func ValidateRoots(roots []string) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%q is not a directory", root)
		}
		f, err := os.Open(root)
		if err != nil {
			return fmt.Errorf("reading root %s: %w", root, unwrapPath(err))
		}
		f.Close()
	}
	return nil
}

// walkRoot descends one root. The walk runs over a filesystem rooted at the
// directory, so a root that is itself a symlink is still entered even
// though symlinks below it are not.
func (s *Scanner) walkRoot(root string) error {
	s.log.Debugw("walking root", "root", root)
	err := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		path := filepath.Join(root, p)
		if err != nil {
			if p == "." {
				return fmt.Errorf("reading root %s: %w", root, unwrapPath(err))
			}
			s.log.Warnw("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if p != "." && d.Name() == ".git" {
				return fs.SkipDir
			}
			if s.excluded(path) {
				return fs.SkipDir
			}
			return nil
		}
		if s.excluded(path) {
			return nil
		}
		return s.inspectFile(path, d.Name())
	})
	if errors.Is(err, errStopWalk) {
		return nil
	}
	return err
}

func (s *Scanner) inspectFile(path, basename string) error {
	if tool, ok := s.catalog.DedicatedTool(basename); ok {
		if err := s.emit(model.Finding{Path: path, Tool: tool, Reason: "config file"}); err != nil {
			return err
		}
	}
	kind, ok := s.catalog.SharedFile(basename)
	if !ok {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warnw("skipping unreadable file", "path", path, "error", err)
		return nil
	}
	var sections []string
	if kind == catalog.SharedManifest {
		sections = inspect.TOMLSections(data)
	} else {
		sections = inspect.INISections(data)
	}
	for _, name := range sections {
		for _, m := range s.catalog.MatchSection(kind, name) {
			if err := s.emit(model.Finding{Path: path, Tool: m.Tool, Reason: m.Reason}); err != nil {
				return err
			}
		}
	}
	return nil
}

// emit records a finding once; duplicates are dropped silently.
func (s *Scanner) emit(f model.Finding) error {
	if _, dup := s.seen[f]; dup {
		return nil
	}
	s.seen[f] = struct{}{}
	s.findings = append(s.findings, f)
	s.log.Debugw("finding", "path", f.Path, "tool", f.Tool, "reason", f.Reason)
	if s.OnFinding != nil {
		s.OnFinding(f)
	}
	if s.cfg.FailFast {
		s.truncated = true
		return errStopWalk
	}
	return nil
}

// excluded tests the walked path as-is against every exclude pattern. The
// patterns compile without a separator, so * crosses path boundaries the
// way shell-style excludes are usually written.
func (s *Scanner) excluded(path string) bool {
	for _, g := range s.cfg.Excludes {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// unwrapPath strips the fs.PathError wrapper so messages do not repeat the
// path the caller already names.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
