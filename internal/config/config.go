// Package config loads command-line defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/gopix/identicon"
)

// Config carries the CLI defaults that may come from the environment.
// Flags override these values.
type Config struct {
	Size   int    // IDENTICON_SIZE: output edge length in pixels
	Dir    string // IDENTICON_DIR: output directory
	Format string // IDENTICON_FORMAT: png or bmp
	Addr   string // IDENTICON_ADDR: listen address for serve mode
}

// Load reads defaults from a .env file (when present) and the process
// environment. Unset variables fall back to built-in defaults.
func Load() (*Config, error) {
	// Missing .env files are fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Size:   identicon.CanvasSize,
		Dir:    ".",
		Format: "png",
		Addr:   ":8080",
	}

	if v := os.Getenv("IDENTICON_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: IDENTICON_SIZE %q is not a positive integer", v)
		}
		cfg.Size = n
	}
	if v := os.Getenv("IDENTICON_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("IDENTICON_FORMAT"); v != "" {
		if v != "png" && v != "bmp" {
			return nil, fmt.Errorf("config: IDENTICON_FORMAT %q is not png or bmp", v)
		}
		cfg.Format = v
	}
	if v := os.Getenv("IDENTICON_ADDR"); v != "" {
		cfg.Addr = v
	}

	return cfg, nil
}
