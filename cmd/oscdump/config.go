package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// oscdump config.toml key mapping.
type fileConfig struct {
	Hex      bool   `toml:"hex"`
	LogLevel string `toml:"log_level"`
}

type dumpConfig struct {
	Hex      bool
	LogLevel string
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{Hex: false, LogLevel: ""}
}

// oscdump loader for TOML config with default overlay.
func loadDumpConfig(path string) (dumpConfig, error) {
	cfg := defaultDumpConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load oscdump config: %w", err)
	}

	if meta.IsDefined("hex") {
		cfg.Hex = raw.Hex
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}
