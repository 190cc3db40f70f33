package sitemap

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"versepages/internal/canon"
	"versepages/internal/corpus"
	"versepages/internal/seq"
)

func testCanon(names ...string) canon.Canon {
	books := make([]canon.Book, len(names))
	for i, n := range names {
		books[i] = canon.Book{Name: n, Testament: canon.OldTestament}
	}
	return canon.Canon{Version: "test", Books: books}
}

func buildFixture(t *testing.T) (canon.Canon, corpus.Corpus, []seq.VerseRef) {
	t.Helper()
	cn := testCanon("Genesis", "Exodus", "Leviticus")
	books := corpus.Corpus{}
	for slug, name := range map[string]string{"genesis": "Genesis", "exodus": "Exodus"} {
		raw := `{"chapters": {"1": {"1": "a", "2": "b"}, "2": {"1": "c"}}}`
		if slug == "exodus" {
			raw = `{"chapters": {"1": {"1": "d"}}}`
		}
		b, err := corpus.Normalize(name, []byte(raw))
		require.NoError(t, err)
		books[slug] = b
	}
	// Leviticus present but empty: must yield no URLs and no index entry.
	books["leviticus"] = &corpus.Book{Name: "Leviticus", Chapters: map[int]*corpus.Chapter{}}
	return cn, books, seq.Flatten(cn, books)
}

func TestGroup(t *testing.T) {
	cn, books, refs := buildFixture(t)
	buildTime := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	g := Group(cn, books, refs, "https://example.org/", buildTime)

	// genesis: 1 book hub + 2 chapter hubs + 3 leaves.
	require.Len(t, g.Books["genesis"], 6)
	// exodus: 1 book hub + 1 chapter hub + 1 leaf.
	require.Len(t, g.Books["exodus"], 3)
	require.Empty(t, g.Books["leviticus"])

	locs := make(map[string]bool)
	for _, e := range g.Books["genesis"] {
		locs[e.Loc] = true
		require.Equal(t, buildTime, e.LastMod)
	}
	for _, want := range []string{
		"https://example.org/genesis/",
		"https://example.org/genesis/1/",
		"https://example.org/genesis/2/",
		"https://example.org/genesis/1/1/",
		"https://example.org/genesis/1/2/",
		"https://example.org/genesis/2/1/",
	} {
		require.True(t, locs[want], "missing %s", want)
	}

	// Leaf URLs per book equal that book's verse count.
	leafCount := 0
	for _, e := range g.Books["genesis"] {
		if strings.Count(e.Loc, "/") == 6 { // https://host/slug/ch/v/
			leafCount++
		}
	}
	require.Equal(t, books["genesis"].VerseTotal(), leafCount)

	// Index: main + genesis + exodus, in canonical order, no leviticus.
	require.Len(t, g.Index, 3)
	require.Equal(t, "https://example.org/sitemap-main.xml.gz", g.Index[0].Loc)
	require.Equal(t, "https://example.org/sitemap-genesis.xml.gz", g.Index[1].Loc)
	require.Equal(t, "https://example.org/sitemap-exodus.xml.gz", g.Index[2].Loc)

	require.Len(t, g.Main, 1)
	require.Equal(t, "https://example.org/", g.Main[0].Loc)
}

func TestGroupEndToEndScenario(t *testing.T) {
	cn := testCanon("Genesis")
	b, err := corpus.Normalize("Genesis", []byte(`{"chapters": {"1": {"1": "In the beginning...", "2": "And the earth..."}}}`))
	require.NoError(t, err)
	books := corpus.Corpus{"genesis": b}
	refs := seq.Flatten(cn, books)
	require.Len(t, refs, 2)

	g := Group(cn, books, refs, "https://example.org", time.Now())
	require.Len(t, g.Books["genesis"], 4) // book hub, chapter hub, two leaves
}

func readGz(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(data)
}

func TestWriteFiles(t *testing.T) {
	cn, books, refs := buildFixture(t)
	buildTime := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	g := Group(cn, books, refs, "https://example.org", buildTime)

	dir := t.TempDir()
	n, err := WriteFiles(dir, cn, g)
	require.NoError(t, err)
	require.Equal(t, 4, n) // main + genesis + exodus + index

	genesis := readGz(t, filepath.Join(dir, "sitemap-genesis.xml.gz"))
	require.Contains(t, genesis, "<urlset")
	require.Contains(t, genesis, "<loc>https://example.org/genesis/1/2/</loc>")
	require.Contains(t, genesis, "<lastmod>2026-03-14T09:30:00Z</lastmod>")

	idx, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	require.Contains(t, string(idx), "<sitemapindex")
	require.Contains(t, string(idx), "<loc>https://example.org/sitemap-exodus.xml.gz</loc>")
	require.NotContains(t, string(idx), "leviticus")

	_, err = os.Stat(filepath.Join(dir, "sitemap-leviticus.xml.gz"))
	require.True(t, os.IsNotExist(err))
}
