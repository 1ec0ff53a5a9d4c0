package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the configuration for contract violations. A bad config
// fails loudly before any work is attempted.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.LLM,
		validation.Field(&c.LLM.BaseURL, validation.Required),
		validation.Field(&c.LLM.Model, validation.Required),
		validation.Field(&c.LLM.TimeoutSeconds, validation.Min(1)),
		validation.Field(&c.LLM.RetryAttempts, validation.Min(1), validation.Max(10)),
		validation.Field(&c.LLM.RetryBaseDelayMilli, validation.Min(1)),
		validation.Field(&c.LLM.RetryMaxDelayMilli, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("llm config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Store,
		validation.Field(&c.Store.Path, validation.Required),
	); err != nil {
		return fmt.Errorf("store config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Dictation,
		validation.Field(&c.Dictation.MaxBytes, validation.Min(256)),
	); err != nil {
		return fmt.Errorf("dictation config: %w", err)
	}

	if err := validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Logging.Format, validation.In("console", "json")),
	); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}
