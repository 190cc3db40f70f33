// Package render writes the HTML pages of the site: one page per verse,
// hub pages per chapter and book, and the home page. It consumes only the
// projections the pipeline hands it; page structure and styling live in the
// templates here and are no concern of the pipeline.
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"versepages/internal/seq"
)

// VersePage is the data handed to the verse template.
type VersePage struct {
	BookName    string
	BookSlug    string
	Chapter     int
	Verse       int
	Text        string
	TotalVerses int
	Prev        *seq.RefID
	Next        *seq.RefID
}

// ChapterHub is the data for a chapter index page.
type ChapterHub struct {
	BookName   string
	BookSlug   string
	Chapter    int
	VerseCount int
}

// BookHub is the data for a book index page.
type BookHub struct {
	BookName string
	BookSlug string
	Chapters []int
}

// BookLink is one entry on the home page's book list.
type BookLink struct {
	Name string
	Slug string
}

// Renderer writes rendered pages under OutDir.
type Renderer struct {
	OutDir string
	tmpl   *template.Template
}

// New parses the page templates and returns a renderer targeting outDir.
func New(outDir string) (*Renderer, error) {
	tmpl := template.New("site").Funcs(template.FuncMap{
		"refURL": func(id *seq.RefID) string {
			if id == nil {
				return ""
			}
			return fmt.Sprintf("/%s/%d/%d/", id.BookSlug, id.Chapter, id.Verse)
		},
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i + 1
			}
			return s
		},
	})
	tmpl, err := tmpl.Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{OutDir: outDir, tmpl: tmpl}, nil
}

// writePage renders one named template into relDir/index.html.
func (r *Renderer) writePage(relDir, name string, data any) error {
	dir := filepath.Join(r.OutDir, relDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := r.tmpl.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// VersePage writes the page for a single verse.
func (r *Renderer) VersePage(p VersePage) error {
	rel := filepath.Join(p.BookSlug, fmt.Sprint(p.Chapter), fmt.Sprint(p.Verse))
	return r.writePage(rel, "verse", p)
}

// ChapterHub writes a chapter's index page.
func (r *Renderer) ChapterHub(h ChapterHub) error {
	return r.writePage(filepath.Join(h.BookSlug, fmt.Sprint(h.Chapter)), "chapter", h)
}

// BookHub writes a book's index page.
func (r *Renderer) BookHub(h BookHub) error {
	return r.writePage(h.BookSlug, "book", h)
}

// Home writes the root page listing every book in canonical order.
func (r *Renderer) Home(books []BookLink) error {
	return r.writePage(".", "home", books)
}
