// File: pkg/collect/matcher.go
package collect

import (
	"strings"
)

// guardSubstring disables matching for any root directory path containing it.
const guardSubstring = "venv"

// isGuarded reports whether the root directory path contains the guard substring.
// Only the root path is checked, never the names of its entries.
func isGuarded(root string) bool {
	return strings.Contains(root, guardSubstring)
}

// hasExtension reports whether name ends with one of the given suffixes.
// Matching is case-sensitive.
func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
