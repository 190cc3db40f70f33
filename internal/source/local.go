package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// Local serves raw files from a directory on disk.
type Local struct {
	Dir string
}

// FetchBook reads one source file from the directory.
func (l Local) FetchBook(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, filename))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, filename, err)
	}
	return data, nil
}
