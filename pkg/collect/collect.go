// Package collect concatenates the matching files of a single directory
// into one combined text file.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run writes a content block for every direct entry of args.Directory whose
// name ends with one of args.Extensions. The output file is truncated before
// the directory is listed, so it exists even when the run fails afterwards.
// Any read or decode error aborts the run. Everything written before the
// failure is flushed, including the header of a file that fails to decode.
func Run(args Arguments, logger *zap.Logger) (res Result, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	res.Output = args.Output
	logger.Info("Starting collection",
		zap.String("directory", args.Directory),
		zap.String("output", args.Output),
		zap.Strings("extensions", args.Extensions))

	out, err := createBlockWriter(args.Output)
	if err != nil {
		return res, err
	}
	defer func() {
		closeErr := out.Close()
		if closeErr == nil {
			return
		}
		if err == nil {
			err = fmt.Errorf("failed to finalize output file: %w", closeErr)
			return
		}
		// The run failure stays the returned error.
		logger.Warn("Failed to finalize output file", zap.String("file", args.Output), zap.Error(closeErr))
	}()

	entries, err := os.ReadDir(args.Directory)
	if err != nil {
		return res, fmt.Errorf("failed to list directory %s: %w", args.Directory, err)
	}
	logger.Debug("Listed directory", zap.String("directory", args.Directory), zap.Int("entries", len(entries)))

	if isGuarded(args.Directory) {
		logger.Warn("Directory path contains guard substring, no files will be collected",
			zap.String("directory", args.Directory),
			zap.String("guard", guardSubstring))
		res.Guarded = true
		return res, nil
	}

	for _, entry := range entries {
		if !hasExtension(entry.Name(), args.Extensions) {
			logger.Debug("Skipping entry without matching extension", zap.String("name", entry.Name()))
			continue
		}

		filePath := filepath.Join(args.Directory, entry.Name())
		text, err := copyBlock(out, filePath)
		if err != nil {
			return res, err
		}

		res.Files = append(res.Files, filePath)
		logger.Debug("Wrote content block", zap.String("filePath", filePath), zap.Int("contentSizeBytes", len(text)))
	}

	logger.Info("Collection completed",
		zap.String("outputFile", args.Output),
		zap.Int("totalFiles", len(res.Files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}

// copyBlock writes the header for filePath once the file is open, then its
// text. A decode failure leaves the header in the output.
func copyBlock(out *blockWriter, filePath string) (string, error) {
	src, err := openSource(filePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := out.WriteHeader(filePath); err != nil {
		return "", err
	}
	text, err := readText(filePath, src)
	if err != nil {
		return "", err
	}
	return text, out.WriteBody(text)
}
