package main

import (
	"log"
	"os"
	"strings"

	"printcode/cmd"
	"printcode/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if logging.Logger == nil {
			// Configuration failed before the logger was built.
			log.Fatalf("printcode execution failed: %v", err)
		}
		logging.Logger.Fatal("printcode execution failed", zap.Error(err))
	}
	syncLogger(logging.Logger)
}

// syncLogger flushes the logger when stderr can be synced.
func syncLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
