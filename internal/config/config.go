// Package config loads the small JSON configuration document the nesgo
// front end reads at startup, following the same encoding/json-tagged
// struct pattern used for configuration elsewhere in this project's
// lineage, trimmed to the fields this emulator core actually has.
package config

import (
	"encoding/json"
	"os"

	"github.com/golang/glog"
)

// Config holds the settings the cmd/nesgo front end needs.
type Config struct {
	Window WindowConfig `json:"window"`
	LogDir string       `json:"log_dir"`
}

// WindowConfig controls the display front end's window.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	Scale  int    `json:"scale"`
}

// Default returns the built-in configuration used when no file is given
// or the file can't be read.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 256, Height: 240, Title: "nesgo", Scale: 3},
	}
}

// Load reads a JSON config file at path, falling back to Default (with a
// logged warning) if it can't be read or parsed.
func Load(path string) *Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		glog.Warningf("config: could not read %s, using defaults: %v", path, err)
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		glog.Warningf("config: could not parse %s, using defaults: %v", path, err)
		return Default()
	}
	return cfg
}
