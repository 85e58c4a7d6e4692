// Package config loads the user’s settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Color     string `yaml:"color"`      // auto, always or never
	Prompt    string `yaml:"prompt"`     // Prompt shown by the REPL
	DumpAST   bool   `yaml:"dump_ast"`   // Dump parsed statements to stderr
	KeepGoing bool   `yaml:"keep_going"` // Let the REPL carry on after errors
}

func Default() Config {
	return Config{
		Color:     "auto",
		Prompt:    "> ",
		KeepGoing: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/calc/config.yaml, falling back to the
// platform’s configuration directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// Load reads the settings at path on top of the defaults.  A missing file is
// not an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return c, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return Default(), fmt.Errorf("%s: invalid color mode ‘%s’", path, c.Color)
	}
	return c, nil
}
