package media

import (
	"fmt"
	"os"
)

// WithTempFile writes data to a new temporary file in dir, calls fn with its
// path and removes the file afterwards, whatever fn returns.
func WithTempFile(dir, pattern string, data []byte, fn func(path string) error) error {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return fn(path)
}
