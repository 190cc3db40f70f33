// Package sitemap partitions the site's URL set into one sitemap per book
// plus a main sitemap and an index, and serializes them as gzip-compressed
// XML sitemap-protocol files.
package sitemap

import (
	"fmt"
	"strings"
	"time"

	"versepages/internal/canon"
	"versepages/internal/corpus"
	"versepages/internal/seq"
)

// Entry is one URL in a sitemap file. All entries of a single build share
// the same LastMod (the build's start time); the source corpus carries no
// per-verse modification timestamps.
type Entry struct {
	Loc     string
	LastMod time.Time
}

// Grouped is the complete, partitioned URL set for one build.
type Grouped struct {
	// Main holds the root-page sitemap entries.
	Main []Entry
	// Books maps a book slug to that book's hub and leaf entries.
	Books map[string][]Entry
	// Index lists one entry per sitemap file: the main file first, then one
	// per book that has at least one URL, in canonical order.
	Index []Entry
}

// Group derives the full URL set: per book one hub entry for /{slug}/, one
// hub entry per chapter present, and one leaf entry per verse reference.
// Entry order within a book's list is not significant, but the set is
// complete: a book with at least one chapter gets exactly one book hub, and
// a chapter with at least one verse gets exactly one chapter hub.
func Group(cn canon.Canon, books corpus.Corpus, refs []seq.VerseRef, baseURL string, buildTime time.Time) Grouped {
	base := strings.TrimRight(baseURL, "/")
	g := Grouped{
		Main:  []Entry{{Loc: base + "/", LastMod: buildTime}},
		Books: make(map[string][]Entry, len(books)),
	}

	for slug, book := range books {
		if len(book.Chapters) == 0 {
			continue
		}
		entries := []Entry{{Loc: fmt.Sprintf("%s/%s/", base, slug), LastMod: buildTime}}
		for _, ch := range book.ChapterNumbers() {
			entries = append(entries, Entry{
				Loc:     fmt.Sprintf("%s/%s/%d/", base, slug, ch),
				LastMod: buildTime,
			})
		}
		g.Books[slug] = entries
	}
	for _, ref := range refs {
		g.Books[ref.BookSlug] = append(g.Books[ref.BookSlug], Entry{
			Loc:     fmt.Sprintf("%s/%s/%d/%d/", base, ref.BookSlug, ref.Chapter, ref.Verse),
			LastMod: buildTime,
		})
	}

	g.Index = append(g.Index, Entry{Loc: base + "/" + mainSitemapFile, LastMod: buildTime})
	for _, name := range cn.Names() {
		slug := canon.Slug(name)
		if len(g.Books[slug]) == 0 {
			continue
		}
		g.Index = append(g.Index, Entry{
			Loc:     fmt.Sprintf("%s/%s", base, bookSitemapFile(slug)),
			LastMod: buildTime,
		})
	}
	return g
}
