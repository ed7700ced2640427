package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/lattice-substrate/jsontree/jsonparse"
	"github.com/lattice-substrate/jsontree/jsonser"
)

// fileConfig is the optional YAML config file shape accepted by
// `--config`. It is a CLI-only convenience layer over the library's
// Options structs, which remain the source of truth and carry no YAML
// tags of their own.
type fileConfig struct {
	ParseStackInitialBytes      int `yaml:"parseStackInitialBytes"`
	StringifyStackInitialBytes int `yaml:"stringifyStackInitialBytes"`
	Indent                     int `yaml:"indent"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) parseOptions() *jsonparse.Options {
	return &jsonparse.Options{ParseStackInitialBytes: c.ParseStackInitialBytes}
}

func (c fileConfig) serializeOptions() *jsonser.Options {
	return &jsonser.Options{StringifyStackInitialBytes: c.StringifyStackInitialBytes}
}
