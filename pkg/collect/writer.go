// File: pkg/collect/writer.go
package collect

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// HeaderPrefix starts the header line of every content block.
const HeaderPrefix = "# Content from: "

// blockWriter appends content blocks to the combined output file.
type blockWriter struct {
	file   *os.File
	writer *bufio.Writer
}

// createBlockWriter opens the output file in truncate-write mode.
func createBlockWriter(path string) (*blockWriter, error) {
	outFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &blockWriter{
		file:   outFile,
		writer: bufio.NewWriter(outFile),
	}, nil
}

// WriteHeader starts a block for source.
func (w *blockWriter) WriteHeader(source string) error {
	if _, err := fmt.Fprintf(w.writer, "\n%s%s\n\n", HeaderPrefix, source); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", source, err)
	}
	return nil
}

// WriteBody finishes the current block with text and a blank line.
func (w *blockWriter) WriteBody(text string) error {
	if _, err := w.writer.WriteString(text); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if _, err := w.writer.WriteString("\n\n"); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

// Close flushes buffered output and releases the file handle.
func (w *blockWriter) Close() error {
	return errors.Join(w.writer.Flush(), w.file.Close())
}
