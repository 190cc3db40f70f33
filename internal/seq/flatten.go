// Package seq produces the single global ordering of every verse reference
// across the canon and derives prev/next navigation from it. Flattening the
// whole corpus up front turns cross-chapter and cross-book pagination into
// plain array adjacency.
package seq

import (
	"versepages/internal/canon"
	"versepages/internal/corpus"
)

// VerseRef is one position in the flattened sequence. Text is copied out of
// the Book model, so the sequence owns its data independently of the corpus.
type VerseRef struct {
	BookName string
	BookSlug string
	Chapter  int
	Verse    int
	Text     string
}

// RefID is the projection of a reference used for navigation links.
type RefID struct {
	BookSlug string
	Chapter  int
	Verse    int
}

// ID returns the navigation projection of the reference.
func (r VerseRef) ID() RefID {
	return RefID{BookSlug: r.BookSlug, Chapter: r.Chapter, Verse: r.Verse}
}

// Flatten walks the corpus in canonical order — books per the canon table,
// chapters ascending numerically, verses densely 1..VerseCount — and returns
// the global verse sequence. Books absent from the corpus or without
// chapters contribute nothing; verses missing from a chapter's map yield an
// empty-text slot rather than a gap, keeping the sequence contiguous for
// pager and sitemap math.
func Flatten(cn canon.Canon, books corpus.Corpus) []VerseRef {
	var refs []VerseRef
	for _, name := range cn.Names() {
		slug := canon.Slug(name)
		book := books[slug]
		if book == nil {
			continue
		}
		for _, chNum := range book.ChapterNumbers() {
			ch := book.Chapters[chNum]
			for v := 1; v <= ch.VerseCount; v++ {
				refs = append(refs, VerseRef{
					BookName: book.Name,
					BookSlug: slug,
					Chapter:  chNum,
					Verse:    v,
					Text:     ch.Verse(v),
				})
			}
		}
	}
	return refs
}
