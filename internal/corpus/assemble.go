package corpus

import (
	"fmt"
	"log/slog"

	"versepages/internal/canon"
)

// Fetcher supplies the raw JSON blob for a source filename. Satisfied by the
// providers in internal/source.
type Fetcher interface {
	FetchBook(filename string) ([]byte, error)
}

// Assemble loads every canonical book present in the source index, in canon
// order, and returns the slug-keyed corpus for this run.
//
// Failure policy (deliberately asymmetric, applied consistently): a
// canonical name absent from the index is recoverable — one warning, book
// omitted, build continues. A fetch failure or malformed blob is fatal for
// the whole build, since the site cannot be partially correct without
// silently omitting scripture. Index names outside the canon are ignored.
func Assemble(cn canon.Canon, index map[string]bool, f Fetcher) (Corpus, error) {
	result := make(Corpus, cn.Len())
	slugOwner := make(map[string]string, cn.Len())

	for _, name := range cn.Names() {
		slug := canon.Slug(name)
		if first, taken := slugOwner[slug]; taken {
			return nil, &SlugCollisionError{Slug: slug, First: first, Second: name}
		}
		slugOwner[slug] = name

		if !index[name] {
			slog.Warn("book missing from source index, skipping", "book", name)
			continue
		}

		raw, err := f.FetchBook(canon.SourceFilename(name))
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", name, err)
		}
		book, err := Normalize(name, raw)
		if err != nil {
			return nil, err
		}
		result[slug] = book
	}
	return result, nil
}
