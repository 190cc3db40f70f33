package corpus

import (
	"errors"
	"fmt"
)

// Sentinel errors for the assembly stage.
var (
	// ErrMalformedData indicates a raw blob matched none of the recognized
	// source shapes.
	ErrMalformedData = errors.New("malformed book data")
	// ErrSlugCollision indicates two distinct canonical names normalize to
	// the same slug, which would silently merge their URL spaces.
	ErrSlugCollision = errors.New("slug collision")
)

// MalformedDataError names the book whose raw data could not be recognized.
type MalformedDataError struct {
	Book   string
	Reason string
}

func (e *MalformedDataError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed book data for %s: %s", e.Book, e.Reason)
	}
	return fmt.Sprintf("malformed book data for %s", e.Book)
}

func (e *MalformedDataError) Unwrap() error { return ErrMalformedData }

// SlugCollisionError reports two canonical names sharing one slug.
type SlugCollisionError struct {
	Slug   string
	First  string
	Second string
}

func (e *SlugCollisionError) Error() string {
	return fmt.Sprintf("slug collision: %q and %q both map to %q", e.First, e.Second, e.Slug)
}

func (e *SlugCollisionError) Unwrap() error { return ErrSlugCollision }
