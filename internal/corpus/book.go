// Package corpus builds the canonical in-memory book model from raw source
// JSON. It reconciles the several incompatible source shapes into one Book
// representation and assembles the per-run corpus in canonical order.
package corpus

import (
	"sort"
	"strconv"
)

// Chapter holds the verses of one chapter. Verses are keyed by the canonical
// decimal string of the verse number; VerseCount is always derived from the
// number of distinct keys, never taken from the source.
type Chapter struct {
	VerseCount int
	Verses     map[string]string
}

// Verse returns the text for verse n, or the empty string when the source
// had no entry for it. Missing verses never fail: the flattened sequence
// must stay contiguous once VerseCount is established.
func (c *Chapter) Verse(n int) string {
	return c.Verses[strconv.Itoa(n)]
}

// Book is the canonical model for one scripture book. Chapters is a sparse
// map: chapter numbers from the source need not be contiguous.
type Book struct {
	Name     string
	Chapters map[int]*Chapter
}

// ChapterNumbers returns the chapter numbers present, sorted ascending
// numerically. Map iteration order is never exposed to callers.
func (b *Book) ChapterNumbers() []int {
	nums := make([]int, 0, len(b.Chapters))
	for n := range b.Chapters {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// VerseTotal returns the number of verses across all chapters.
func (b *Book) VerseTotal() int {
	total := 0
	for _, ch := range b.Chapters {
		total += ch.VerseCount
	}
	return total
}

// Corpus maps book slugs to normalized books for one build run.
type Corpus map[string]*Book
