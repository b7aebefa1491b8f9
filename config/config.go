// Package config handles loading and managing application configuration
// from YAML files, .env files and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values. QR encoding
// parameters are fixed and deliberately absent here.
type Config struct {
	Port      int    `yaml:"port"`
	Path      string `yaml:"path"`
	Output    string `yaml:"output"`
	ProbeAddr string `yaml:"probe_addr"`
	Terminal  bool   `yaml:"terminal"`
	LogLevel  string `yaml:"log_level"`
}

// Defaults returns a Config populated with the default values.
func Defaults() *Config {
	return &Config{
		Port:      8080,
		Path:      "/index.html",
		Output:    "qrcode.png",
		ProbeAddr: "8.8.8.8:80",
		Terminal:  false,
		LogLevel:  "warn",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. Environment variables with the
// LANQR_ prefix override any file or default values.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables that are already set are left untouched.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// applyEnvOverrides applies LANQR_* environment variable overrides to cfg.
// Unprefixed variables such as PORT are never read.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LANQR_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("LANQR_PATH"); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv("LANQR_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LANQR_PROBE_ADDR"); v != "" {
		cfg.ProbeAddr = v
	}
	if v := os.Getenv("LANQR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LANQR_TERMINAL"); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			cfg.Terminal = true
		case "false", "0", "no":
			cfg.Terminal = false
		}
	}
}
