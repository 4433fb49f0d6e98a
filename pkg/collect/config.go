// File: pkg/collect/config.go
package collect

// Arguments holds the configuration options for a single collection run.
type Arguments struct {
	Directory  string   // Root directory whose direct entries are scanned.
	Output     string   // Destination path for the combined output file.
	Extensions []string // Filename suffixes eligible for inclusion.
}

// Result describes what a collection run wrote.
type Result struct {
	Output  string   // Path of the combined output file.
	Files   []string // Source paths written, in listing order.
	Guarded bool     // True when the root path contains "venv" and nothing was matched.
}
