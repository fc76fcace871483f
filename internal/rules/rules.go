package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Built-in filter values; a rules file or env override replaces them.
const (
	DefaultApplicationName = "Microsoft JDBC Driver for SQL Server"
	DefaultTextContains    = "declare"
)

// Rules holds the two filter predicates: which application a trace event
// must come from, and which substring its TextData must contain.
type Rules struct {
	ApplicationName string `json:"application_name" yaml:"application_name"`
	TextContains    string `json:"text_contains" yaml:"text_contains"`
}

func Defaults() *Rules {
	return &Rules{
		ApplicationName: DefaultApplicationName,
		TextContains:    DefaultTextContains,
	}
}

// Load reads rules from a JSON or YAML file. If path == "", or loading
// fails, it falls back to defaults (the error tells the caller to warn).
func Load(path string) (*Rules, error) {
	if path == "" {
		return Defaults(), nil
	}
	r, err := loadFromFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("rules: %w (fallback to defaults)", err)
	}
	return r, nil
}

func loadFromFile(path string) (*Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	r := Defaults()
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, r); err != nil {
			return nil, err
		}
	case ".json":
		if err := sonic.Unmarshal(b, r); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unsupported rules file format (use .json or .yaml/.yml)")
	}
	if r.ApplicationName == "" {
		return nil, errors.New("rules file has empty application_name")
	}
	return r, nil
}
