// Package canon defines the fixed canonical ordering of scripture books and
// the identifier derivations (URL slugs, source filenames) shared by the
// whole pipeline.
package canon

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Testament identifies which half of the canon a book belongs to.
type Testament string

const (
	OldTestament Testament = "old"
	NewTestament Testament = "new"
)

// Book is one entry in the canonical table.
type Book struct {
	Name      string    `yaml:"name"`
	Testament Testament `yaml:"testament"`
}

// Canon is an explicit, versioned ordered book table. The pipeline takes a
// Canon value as configuration rather than reading package-level constants,
// so alternate canons (subsets, other orderings) plug in without touching
// pipeline logic.
type Canon struct {
	Version string `yaml:"version"`
	Books   []Book `yaml:"books"`
}

// Default returns the standard 66-book Protestant canon in canonical order.
func Default() Canon {
	books := make([]Book, 0, len(oldTestament)+len(newTestament))
	for _, name := range oldTestament {
		books = append(books, Book{Name: name, Testament: OldTestament})
	}
	for _, name := range newTestament {
		books = append(books, Book{Name: name, Testament: NewTestament})
	}
	return Canon{Version: "protestant-66", Books: books}
}

// Names returns the book display names in canonical order.
func (c Canon) Names() []string {
	names := make([]string, len(c.Books))
	for i, b := range c.Books {
		names[i] = b.Name
	}
	return names
}

// Len returns the number of books in the canon.
func (c Canon) Len() int { return len(c.Books) }

// LoadFile reads a canon table from a YAML file.
func LoadFile(path string) (Canon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Canon{}, fmt.Errorf("reading canon file %s: %w", path, err)
	}
	var c Canon
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Canon{}, fmt.Errorf("parsing canon file %s: %w", path, err)
	}
	if len(c.Books) == 0 {
		return Canon{}, fmt.Errorf("canon file %s lists no books", path)
	}
	return c, nil
}

// Slug derives the URL-safe identifier for a book display name: lowercase,
// non-alphanumeric characters other than whitespace removed, runs of
// whitespace collapsed to single hyphens. Slug is a pure function of the
// name; the 66 canonical names map to pairwise-distinct slugs (enforced at
// assembly time, verified in tests).
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// SourceFilename derives the raw source filename for a book: every
// non-alphanumeric character stripped from the display name, plus the fixed
// .json extension. "Song of Solomon" becomes "SongofSolomon.json".
func SourceFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString(".json")
	return b.String()
}
