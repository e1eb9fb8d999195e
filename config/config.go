// Package config reads pure-clang settings from a YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/amikos-tech/pure-clang/search"
)

// Config holds file-level overrides. Zero values leave the environment and
// autodetection in charge.
type Config struct {
	LibraryPath       string `yaml:"library_path" toml:"library_path"`
	StaticLibraryPath string `yaml:"static_library_path" toml:"static_library_path"`
	LLVMConfigPath    string `yaml:"llvm_config_path" toml:"llvm_config_path"`
	TargetVersion     int    `yaml:"target_version" toml:"target_version"`
	ABIEnvironment    string `yaml:"abi_environment" toml:"abi_environment"`
	Libcxx            bool   `yaml:"libcxx" toml:"libcxx"`
}

// FileNames are probed, in order, in the working directory and in the user
// configuration directory.
var FileNames = []string{"pure-clang.yaml", "pure-clang.yml", "pure-clang.toml"}

// Load reads the file at path. An empty path probes the default locations;
// finding nothing there yields an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		found, ok := discover()
		if !ok {
			return &Config{}, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}

	if cfg.TargetVersion < 0 {
		return nil, fmt.Errorf("config %s: target_version must be >= 0, got %d", path, cfg.TargetVersion)
	}
	return &cfg, nil
}

func discover() (string, bool) {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "pure-clang"))
	}
	for _, dir := range dirs {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}
	return "", false
}

// SearchOptions turns the non-zero fields into search options. Options
// passed after these take precedence.
func (c *Config) SearchOptions() []search.Option {
	if c == nil {
		return nil
	}
	var opts []search.Option
	if c.LibraryPath != "" {
		opts = append(opts, search.WithLibraryPath(c.LibraryPath))
	}
	if c.StaticLibraryPath != "" {
		opts = append(opts, search.WithStaticLibraryPath(c.StaticLibraryPath))
	}
	if c.LLVMConfigPath != "" {
		opts = append(opts, search.WithLLVMConfigPath(c.LLVMConfigPath))
	}
	if c.TargetVersion > 0 {
		opts = append(opts, search.WithTargetVersion(c.TargetVersion))
	}
	if c.ABIEnvironment != "" {
		opts = append(opts, search.WithABIEnvironment(c.ABIEnvironment))
	}
	if c.Libcxx {
		opts = append(opts, search.WithLibcxx(true))
	}
	return opts
}
