package main

import (
	"fmt"
	"log/slog"
	"time"

	"versepages/internal/canon"
	"versepages/internal/config"
	"versepages/internal/corpus"
	"versepages/internal/render"
	"versepages/internal/seq"
	"versepages/internal/sitemap"
	"versepages/internal/source"
)

func loadConfig() (*config.Config, error) {
	return config.Load(CLI.Config)
}

// newProvider builds the provider chain from configuration: local directory
// or mirror list, optionally wrapped in the SQLite blob cache. The returned
// closer releases the cache database, if any.
func newProvider(sc config.SourceConfig) (source.Provider, func(), error) {
	var p source.Provider
	if sc.Dir != "" {
		p = source.Local{Dir: sc.Dir}
	} else {
		m := source.NewMirrors(sc.Mirrors)
		m.Pause = sc.MirrorPause
		p = m
	}
	if sc.CachePath != "" {
		c, err := source.OpenCache(sc.CachePath, p)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	}
	return p, func() {}, nil
}

// buildCanon resolves the canon table for this run, applying the optional
// canon file override and the --book slug filter.
func buildCanon(cfg *config.Config, onlyBook string) (canon.Canon, error) {
	cn := canon.Default()
	if cfg.CanonFile != "" {
		loaded, err := canon.LoadFile(cfg.CanonFile)
		if err != nil {
			return canon.Canon{}, err
		}
		cn = loaded
	}
	if onlyBook == "" {
		return cn, nil
	}
	for _, b := range cn.Books {
		if canon.Slug(b.Name) == onlyBook {
			return canon.Canon{Version: cn.Version, Books: []canon.Book{b}}, nil
		}
	}
	return canon.Canon{}, fmt.Errorf("no canonical book has slug %q", onlyBook)
}

// runBuild executes the pipeline stage by stage; every stage completes fully
// before the next begins.
func runBuild(cmd BuildCmd) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Out != "" {
		cfg.OutputDir = cmd.Out
	}

	cn, err := buildCanon(cfg, cmd.Book)
	if err != nil {
		return err
	}

	provider, closeProvider, err := newProvider(cfg.Source)
	if err != nil {
		return err
	}
	defer closeProvider()

	index, err := source.ListBooks(provider)
	if err != nil {
		return err
	}
	slog.Debug("book index loaded", "names", len(index))

	books, err := corpus.Assemble(cn, index, provider)
	if err != nil {
		return err
	}
	refs := seq.Flatten(cn, books)
	fmt.Printf("Assembled %d books, %d verses.\n", len(books), len(refs))

	pages, err := renderSite(cfg.OutputDir, cn, books, refs)
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %d pages.\n", pages)

	grouped := sitemap.Group(cn, books, refs, cfg.BaseURL, start)
	files, err := sitemap.WriteFiles(cfg.OutputDir, cn, grouped)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d sitemap files.\n", files)

	fmt.Printf("\nBuild finished in %s.\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// renderSite writes every page of the site: home, book hubs, chapter hubs
// and one page per verse. Returns the number of pages written.
func renderSite(outDir string, cn canon.Canon, books corpus.Corpus, refs []seq.VerseRef) (int, error) {
	r, err := render.New(outDir)
	if err != nil {
		return 0, err
	}
	pages := 0

	var home []render.BookLink
	for _, name := range cn.Names() {
		slug := canon.Slug(name)
		book := books[slug]
		if book == nil || len(book.Chapters) == 0 {
			continue
		}
		home = append(home, render.BookLink{Name: book.Name, Slug: slug})

		if err := r.BookHub(render.BookHub{
			BookName: book.Name,
			BookSlug: slug,
			Chapters: book.ChapterNumbers(),
		}); err != nil {
			return pages, err
		}
		pages++

		for _, chNum := range book.ChapterNumbers() {
			if err := r.ChapterHub(render.ChapterHub{
				BookName:   book.Name,
				BookSlug:   slug,
				Chapter:    chNum,
				VerseCount: book.Chapters[chNum].VerseCount,
			}); err != nil {
				return pages, err
			}
			pages++
		}
	}

	for i, ref := range refs {
		prev, next := seq.Neighbors(refs, i)
		if err := r.VersePage(render.VersePage{
			BookName:    ref.BookName,
			BookSlug:    ref.BookSlug,
			Chapter:     ref.Chapter,
			Verse:       ref.Verse,
			Text:        ref.Text,
			TotalVerses: books[ref.BookSlug].Chapters[ref.Chapter].VerseCount,
			Prev:        prev,
			Next:        next,
		}); err != nil {
			return pages, err
		}
		pages++
	}

	if err := r.Home(home); err != nil {
		return pages, err
	}
	pages++
	return pages, nil
}
