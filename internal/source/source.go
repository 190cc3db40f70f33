// Package source supplies raw per-book JSON blobs and the corpus index.
// Providers may be backed by a local directory or a chain of remote mirrors;
// either can be wrapped in a SQLite blob cache so repeated builds avoid
// refetching.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
)

// IndexFilename is the corpus index file: a JSON array of canonical book
// display names.
const IndexFilename = "Books.json"

// Sentinel errors distinguishing a missing file from an unreachable source.
var (
	// ErrBookNotFound indicates the source answered but has no such file.
	ErrBookNotFound = errors.New("book file not found")
	// ErrSourceUnavailable indicates every configured source failed for one
	// file. Fatal for the whole build.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Provider fetches one raw source file by name.
type Provider interface {
	FetchBook(filename string) ([]byte, error)
}

// ListBooks fetches and parses the corpus index into a name set.
func ListBooks(p Provider) (map[string]bool, error) {
	raw, err := p.FetchBook(IndexFilename)
	if err != nil {
		return nil, fmt.Errorf("fetching book index: %w", err)
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("parsing book index: %w", err)
	}
	index := make(map[string]bool, len(names))
	for _, n := range names {
		index[n] = true
	}
	return index, nil
}
