package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Mirrors fetches source files over HTTP from a fixed list of mirror base
// URLs, tried sequentially. One fetch at a time is sufficient for this
// pipeline; no concurrency is needed.
type Mirrors struct {
	URLs   []string
	Client *http.Client
	// Pause is the delay before falling over to the next mirror.
	Pause time.Duration
}

// NewMirrors returns a mirror provider with a default HTTP client and pause.
func NewMirrors(urls []string) *Mirrors {
	return &Mirrors{
		URLs:   urls,
		Client: &http.Client{Timeout: 30 * time.Second},
		Pause:  2 * time.Second,
	}
}

// FetchBook tries each mirror in order and returns the first successful
// body. It gives up with ErrSourceUnavailable only once all mirrors have
// failed for this file, or ErrBookNotFound when every mirror answered 404.
func (m *Mirrors) FetchBook(filename string) ([]byte, error) {
	if len(m.URLs) == 0 {
		return nil, fmt.Errorf("%w: no mirrors configured", ErrSourceUnavailable)
	}

	var lastErr error
	notFound := 0
	for i, base := range m.URLs {
		if i > 0 && m.Pause > 0 {
			time.Sleep(m.Pause)
		}
		url := strings.TrimRight(base, "/") + "/" + filename
		data, err := m.fetchOne(url)
		if err == nil {
			return data, nil
		}
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			notFound++
		}
		lastErr = err
		slog.Warn("mirror fetch failed, trying next", "url", url, "error", err)
	}
	if notFound == len(m.URLs) {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, filename)
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, filename, lastErr)
}

type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("status %d", e.code) }

func (m *Mirrors) fetchOne(url string) ([]byte, error) {
	resp, err := m.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
