package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// applyEnv layers environment overrides on top of file values. A local
// .env file is loaded first so an API key can live next to the project
// instead of in the config file.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("BCKL_API_KEY")); v != "" {
		c.LLM.APIKey = v
	} else if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("BCKL_MODEL")); v != "" {
		c.LLM.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("BCKL_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
}

// normalize expands user paths and fills empty fields with defaults so the
// rest of the program never re-checks them.
func (c *Config) normalize() error {
	defaults := Default()

	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaults.LLM.BaseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = defaults.LLM.Model
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaults.LLM.TimeoutSeconds
	}
	if c.LLM.RetryAttempts <= 0 {
		c.LLM.RetryAttempts = defaults.LLM.RetryAttempts
	}
	if c.LLM.RetryBaseDelayMilli <= 0 {
		c.LLM.RetryBaseDelayMilli = defaults.LLM.RetryBaseDelayMilli
	}
	if c.LLM.RetryMaxDelayMilli <= 0 {
		c.LLM.RetryMaxDelayMilli = defaults.LLM.RetryMaxDelayMilli
	}
	if c.LLM.RetryMaxDelayMilli < c.LLM.RetryBaseDelayMilli {
		c.LLM.RetryMaxDelayMilli = c.LLM.RetryBaseDelayMilli
	}

	c.Store.Path = strings.TrimSpace(c.Store.Path)
	if c.Store.Path == "" {
		c.Store.Path = defaults.Store.Path
	}
	expanded, err := ExpandPath(c.Store.Path)
	if err != nil {
		return err
	}
	c.Store.Path = expanded

	if c.Dictation.MaxBytes <= 0 {
		c.Dictation.MaxBytes = defaults.Dictation.MaxBytes
	}
	if c.Dictation.PromptFile != "" {
		expanded, err := ExpandPath(c.Dictation.PromptFile)
		if err != nil {
			return err
		}
		c.Dictation.PromptFile = expanded
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Logging.Dir != "" {
		expanded, err := ExpandPath(c.Logging.Dir)
		if err != nil {
			return err
		}
		c.Logging.Dir = expanded
	}

	return nil
}

// ExpandPath resolves a leading ~ against the current user's home
// directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
