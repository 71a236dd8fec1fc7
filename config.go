package lisp

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config holds settings for an interpreter session and its REPL, typically
// loaded from a YAML file:
//
//	max_depth: 5000
//	prompt: "lisp> "
//	continue_prompt: "....> "
//	history: ~/.lisp_history
//	preload:
//	  - prelude.lisp
type Config struct {
	// MaxDepth limits evaluation nesting. Zero selects the default.
	MaxDepth int `yaml:"max_depth"`
	// Prompt is shown when the REPL waits for a new form.
	Prompt string `yaml:"prompt"`
	// ContinuePrompt is shown while a form is incomplete.
	ContinuePrompt string `yaml:"continue_prompt"`
	// History is the REPL history file. Empty disables history.
	History string `yaml:"history"`
	// Preload lists source files evaluated before the REPL starts.
	Preload []string `yaml:"preload"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt:         "lisp> ",
		ContinuePrompt: "....> ",
	}
}

// LoadConfig reads a YAML configuration. Settings missing from the document
// keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("lisp: could not read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("lisp: could not parse config: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("lisp: max_depth must not be negative, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// Options returns the VM options the configuration selects.
func (c Config) Options() []Option {
	var opts []Option
	if c.MaxDepth > 0 {
		opts = append(opts, WithMaxDepth(c.MaxDepth))
	}
	return opts
}
