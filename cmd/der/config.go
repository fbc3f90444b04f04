package main

import (
	"errors"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional der.toml profile. Every field is optional;
// fields absent from the file leave the corresponding flag value untouched.
type fileConfig struct {
	Mode  string `toml:"mode"`
	Path  string `toml:"path"`
	Basic bool   `toml:"basic"`
}

type loadedConfig struct {
	raw  fileConfig
	meta toml.MetaData
}

// loadFileConfig reads path as a TOML profile. A missing file is not an
// error: der.toml is an optional convenience, not a required manifest.
func loadFileConfig(path string) (loadedConfig, error) {
	if path == "" {
		return loadedConfig{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return loadedConfig{}, nil
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return loadedConfig{}, err
	}
	return loadedConfig{raw: raw, meta: meta}, nil
}

// applyFlags overlays cfg's defined fields onto opts wherever the
// corresponding flag still holds its default value ("dump" for mode, empty
// for path, false for basic). A flag set to anything else wins over the
// config file; a flag set explicitly to its default value does not.
func (cfg loadedConfig) applyFlags(opts *options) {
	if cfg.meta.IsDefined("mode") && opts.mode == "dump" {
		opts.mode = strings.TrimSpace(cfg.raw.Mode)
	}
	if cfg.meta.IsDefined("path") && opts.path == "" {
		opts.path = strings.TrimSpace(cfg.raw.Path)
	}
	if cfg.meta.IsDefined("basic") && !opts.basic {
		opts.basic = cfg.raw.Basic
	}
}
