package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags. Flags override anything set here.
type Config struct {
	Input struct {
		Path      string `json:"path" toml:"path" yaml:"path"`
		Encoding  string `json:"encoding" toml:"encoding" yaml:"encoding"`
		Delimiter string `json:"delimiter" toml:"delimiter" yaml:"delimiter"`
	} `json:"input" toml:"input" yaml:"input"`
	Output struct {
		Path      string `json:"path" toml:"path" yaml:"path"`
		Format    string `json:"format" toml:"format" yaml:"format"` // csv|parquet
		Delimiter string `json:"delimiter" toml:"delimiter" yaml:"delimiter"`
	} `json:"output" toml:"output" yaml:"output"`
	Check struct {
		BaseDir string `json:"base_dir" toml:"base_dir" yaml:"base_dir"`
	} `json:"check" toml:"check" yaml:"check"`
	Report struct {
		MissingPath string `json:"missing_path" toml:"missing_path" yaml:"missing_path"`
		Summary     bool   `json:"summary" toml:"summary" yaml:"summary"`
	} `json:"report" toml:"report" yaml:"report"`
}

// delimiterRune decodes the first rune of a configured delimiter; empty
// means the format default.
func delimiterRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// loadConfig decodes a config file by extension: .json, .toml, or .yaml/.yml.
func loadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return cfg, err
}
