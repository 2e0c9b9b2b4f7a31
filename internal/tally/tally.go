// Package tally derives normalized extension keys from file paths and
// accumulates occurrence counts per key.
package tally

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// NoExtension is the report key for paths whose last segment carries no file
// extension.
const NoExtension = "[no extension]"

// Key derives the extension key for a path: everything from the last dot of
// the final path segment to its end, lowercased. A segment without a dot, a
// bare leading-dot name like .gitignore and a name ending with a dot all map
// to NoExtension.
func Key(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return NoExtension
	}
	return strings.ToLower(ext)
}

// Tally accumulates occurrence counts per extension key. It is not safe for
// concurrent use, all access must happen from a single goroutine.
type Tally struct {
	counts map[string]int
}

func New() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add derives the extension key for path and increments its count, inserting
// the key with count 1 when not seen before. Returns the derived key.
func (t *Tally) Add(path string) string {
	key := Key(path)
	t.counts[key]++
	return key
}

// Len returns the number of distinct extension keys seen so far.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Entry is a single (extension key, count) pair of the report.
type Entry struct {
	Key   string
	Count int
}

// Report converts the tally into entries ordered by ascending count. Entries
// with an equal count are ordered by ascending key, so the report is a total
// order and reproducible for any input.
func (t *Tally) Report() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for key, count := range t.counts {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Count, b.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}
