package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"versepages/internal/canon"
)

const (
	sitemapXMLNS    = "http://www.sitemaps.org/schemas/sitemap/0.9"
	mainSitemapFile = "sitemap-main.xml.gz"
	indexFile       = "sitemap.xml"
)

func bookSitemapFile(slug string) string {
	return fmt.Sprintf("sitemap-%s.xml.gz", slug)
}

type xmlURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemap struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []xmlSitemap `xml:"sitemap"`
}

func lastModString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toXMLURLs(entries []Entry) []xmlURL {
	urls := make([]xmlURL, len(entries))
	for i, e := range entries {
		urls[i] = xmlURL{Loc: e.Loc, LastMod: lastModString(e.LastMod)}
	}
	return urls
}

// writeGzXML writes an XML document gzip-compressed, with the XML header.
func writeGzXML(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	gw, _ := gzip.NewWriterLevel(f, gzip.BestSpeed)
	if _, err := gw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(gw)
	enc.Indent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return gw.Close()
}

func writeXML(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFiles serializes the grouped URL set under dir: the main sitemap, one
// gzipped sitemap per book, and the uncompressed sitemap.xml index pointing
// at all of them. Returns the number of files written.
func WriteFiles(dir string, cn canon.Canon, g Grouped) (int, error) {
	written := 0

	if err := writeGzXML(filepath.Join(dir, mainSitemapFile), urlSet{XMLNS: sitemapXMLNS, URLs: toXMLURLs(g.Main)}); err != nil {
		return written, fmt.Errorf("writing main sitemap: %w", err)
	}
	written++

	for _, name := range cn.Names() {
		slug := canon.Slug(name)
		entries := g.Books[slug]
		if len(entries) == 0 {
			continue
		}
		path := filepath.Join(dir, bookSitemapFile(slug))
		if err := writeGzXML(path, urlSet{XMLNS: sitemapXMLNS, URLs: toXMLURLs(entries)}); err != nil {
			return written, fmt.Errorf("writing sitemap for %s: %w", slug, err)
		}
		written++
	}

	idx := sitemapIndex{XMLNS: sitemapXMLNS}
	for _, e := range g.Index {
		idx.Sitemaps = append(idx.Sitemaps, xmlSitemap{Loc: e.Loc, LastMod: lastModString(e.LastMod)})
	}
	if err := writeXML(filepath.Join(dir, indexFile), idx); err != nil {
		return written, fmt.Errorf("writing sitemap index: %w", err)
	}
	written++
	return written, nil
}
