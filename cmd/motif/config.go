package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Config holds the generation settings for a run.
type Config struct {
	Orders    []int  `json:"orders"`     // chain orders to analyze
	Length    int    `json:"length"`     // symbols per generated melody
	Count     int    `json:"count"`      // melodies generated per order
	OutputDir string `json:"output_dir"` // where .mid files land
	LogLevel  string `json:"log_level"`
}

// DefaultConfig mirrors the defaults of the interactive demo: orders 1
// through 3, two 40-note melodies each.
func DefaultConfig() *Config {
	return &Config{
		Orders:    []int{1, 2, 3},
		Length:    40,
		Count:     2,
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// LoadConfig reads the configuration from a JSON file at the given
// path. If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The run can still proceed on defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

func (c *Config) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
