package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// includeNote reports whether a note title passes the --include filter.
// An empty pattern admits every note.
func includeNote(pattern, title string) (bool, error) {
	if pattern == "" {
		return true, nil
	}
	ok, err := doublestar.Match(pattern, title)
	if err != nil {
		return false, fmt.Errorf("invalid --include pattern %q: %w", pattern, err)
	}
	return ok, nil
}
