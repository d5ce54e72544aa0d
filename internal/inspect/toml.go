// Package inspect extracts section names from shared configuration files.
//
// Parsing is deliberately tolerant: a malformed pyproject.toml must not
// defeat the gate. Each extractor first runs a real parser and falls back to
// a permissive line scan when the parser rejects the input. Input that yields
// nothing produces no sections and no error.
package inspect

import (
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

// TOMLSections returns the table names of a TOML document in document order,
// dotted keys joined with ".". The unstable parser is syntactic only, so
// semantic faults such as duplicate tables still yield their names.
func TOMLSections(data []byte) []string {
	var out []string
	var p unstable.Parser
	p.Reset(data)
	for p.NextExpression() {
		e := p.Expression()
		if e.Kind != unstable.Table && e.Kind != unstable.ArrayTable {
			continue
		}
		var parts []string
		it := e.Key()
		for it.Next() {
			parts = append(parts, string(it.Node().Data))
		}
		if len(parts) > 0 {
			out = append(out, strings.Join(parts, "."))
		}
	}
	if p.Error() != nil {
		return headerScan(data, normalizeTOMLKey)
	}
	return out
}

// headerScan is the permissive fallback: every line whose first non-blank
// rune opens a [section] or [[section]] header yields a name, rewritten by
// norm.
func headerScan(data []byte, norm func(string) string) []string {
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		raw, ok := headerName(line)
		if !ok {
			continue
		}
		if name := norm(raw); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func headerName(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "[") {
		return "", false
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "["), "[")
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return "", false
	}
	name := strings.TrimSpace(s[:end])
	return name, name != ""
}

// normalizeTOMLKey rewrites a raw dotted key the way the real parser would
// have: quotes dropped and whitespace around separators trimmed, so
// `tool . "pylint"` comes out as tool.pylint.
func normalizeTOMLKey(raw string) string {
	var parts []string
	var b strings.Builder
	var quote byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				b.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '.':
			parts = append(parts, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	parts = append(parts, strings.TrimSpace(b.String()))
	return strings.Join(parts, ".")
}
