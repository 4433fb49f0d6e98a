// File: pkg/collect/text.go
package collect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a matched file cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// openSource opens a matched entry for reading. Directories are rejected
// here so that no header is written for them.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error opening file %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("error opening file %s: is a directory", path)
	}
	return f, nil
}

// readText reads r as UTF-8 text and translates CRLF and CR line endings to LF.
func readText(path string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error decoding file %s: %w", path, ErrInvalidUTF8)
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
