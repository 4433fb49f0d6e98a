// Package config resolves the parameters of a printcode run from defaults,
// an optional YAML file and PRINTCODE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig     = "PRINTCODE_CONFIG"
	EnvDirectory  = "PRINTCODE_DIR"
	EnvOutput     = "PRINTCODE_OUTPUT"
	EnvExtensions = "PRINTCODE_EXTENSIONS"
	EnvDebug      = "PRINTCODE_DEBUG"
)

// DefaultOutput is written relative to the working directory.
const DefaultOutput = "combined_code.txt"

// DefaultExtensions returns the suffixes collected when none are configured.
func DefaultExtensions() []string {
	return []string{".py", ".html", ".js", ".css"}
}

// Config holds the resolved run parameters.
type Config struct {
	Directory  string   `yaml:"directory"`
	Output     string   `yaml:"output"`
	Extensions []string `yaml:"extensions"`
	Debug      bool     `yaml:"debug"`
}

// Default returns the built-in configuration. Directory is the directory
// holding the running binary.
func Default() *Config {
	return &Config{
		Directory:  executableDir(),
		Output:     DefaultOutput,
		Extensions: DefaultExtensions(),
	}
}

// Load reads the YAML file at path (or the file named by PRINTCODE_CONFIG when
// path is empty) over the defaults, then applies environment overrides. A .env
// file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromYAML reads a configuration file on top of the built-in defaults.
func LoadFromYAML(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeYAML(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDirectory)); v != "" {
		c.Directory = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.Output = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExtensions)); v != "" {
		c.Extensions = strings.Split(v, ",")
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
}

// Normalize trims the extension list, prefixes a dot where one is missing and
// drops empty entries. It fails when no directory, output or extension remains.
func (c *Config) Normalize() error {
	c.Extensions = NormalizeExtensions(c.Extensions)

	var errs []error
	if strings.TrimSpace(c.Directory) == "" {
		errs = append(errs, errors.New("directory is empty"))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if len(c.Extensions) == 0 {
		errs = append(errs, errors.New("no file extensions configured"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// NormalizeExtensions returns exts with surrounding spaces removed, a leading
// dot ensured and empty entries dropped. Order is preserved.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return filepath.Dir(exe)
	}
	return filepath.Dir(abs)
}
