package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestINISectionsWellFormed(t *testing.T) {
	doc := "[mypy]\nstrict = true\n\n[tool:pytest]\naddopts = -q\n"
	assert.Equal(t, []string{"mypy", "tool:pytest"}, INISections([]byte(doc)))
}

func TestINISectionsFiltersDefault(t *testing.T) {
	doc := "[DEFAULT]\nshared = 1\n[pylint]\nscore = no\n"
	assert.Equal(t, []string{"pylint"}, INISections([]byte(doc)))
}

// Keys before the first header and lines with no delimiter at all are
// skipped without losing the rest of the file.
func TestINISectionsToleratesStrayLines(t *testing.T) {
	doc := "stray = 1\n[mypy]\njust some prose\nstrict = true\n"
	assert.Equal(t, []string{"mypy"}, INISections([]byte(doc)))
}

// go-ini rejects an unclosed header outright; the fallback scan recovers the
// headers on intact lines.
func TestINISectionsFallbackOnUnclosedHeader(t *testing.T) {
	doc := "[mypy\n[pylint]\nkey = value\n"
	assert.Equal(t, []string{"pylint"}, INISections([]byte(doc)))
}

// A well-formed header ahead of the malformed region survives the fallback.
func TestINISectionsFallbackKeepsEarlierHeaders(t *testing.T) {
	doc := "[mypy]\nstrict = true\n[pylint\n"
	assert.Equal(t, []string{"mypy"}, INISections([]byte(doc)))
}

func TestINISectionsMergesDuplicates(t *testing.T) {
	doc := "[mypy]\na = 1\n[mypy]\nb = 2\n"
	assert.Equal(t, []string{"mypy"}, INISections([]byte(doc)))
}

func TestINISectionsPreservesCase(t *testing.T) {
	doc := "[PyLint.main]\npersistent = no\n"
	assert.Equal(t, []string{"PyLint.main"}, INISections([]byte(doc)))
}

func TestINISectionsEmptyAndGarbage(t *testing.T) {
	assert.Empty(t, INISections(nil))
	assert.Empty(t, INISections([]byte("no headers here, only text\n")))
}
