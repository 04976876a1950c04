// Package config loads rosa.toml, the optional project file that sets
// defaults for the CLI (entry file, VM stack size, color mode) so
// invocations in a project directory don't need to repeat flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Color selects when diagnostic output is colorized.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the parsed contents of rosa.toml. Rosa has no module or
// package system, so this file carries only build defaults, never
// dependency or path-resolution information.
type Config struct {
	Entry struct {
		File string `toml:"file"`
	} `toml:"entry"`

	VM struct {
		StackBytes int `toml:"stack_bytes"`
	} `toml:"vm"`

	Output struct {
		Color   Color `toml:"color"`
		Context int   `toml:"context_lines"`
	} `toml:"output"`

	Trace struct {
		Level string `toml:"level"`
	} `toml:"trace"`
}

// Default returns a Config with the values the CLI falls back to when no
// rosa.toml is present.
func Default() Config {
	var c Config
	c.Entry.File = "main.rosa"
	c.VM.StackBytes = 4096
	c.Output.Color = ColorAuto
	c.Output.Context = 1
	c.Trace.Level = "off"
	return c
}

// Load reads and parses path, overlaying it onto Default(). A missing
// file is not an error; it just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Write serializes cfg as rosa.toml to path, used by "rosa init".
func Write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
