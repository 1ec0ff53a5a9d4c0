package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"bckl/internal/config"
	"bckl/internal/logging"
	"bckl/internal/services/llm"
	"bckl/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureLogDir(); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// client builds the completion client from config, assembling the system
// prompt from the optional prompt-file override and the working
// directory's README context.
func (c *commandContext) client() (*llm.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	promptFile := cfg.Dictation.PromptFile
	if promptFile == "" {
		if _, statErr := os.Stat("prompt.txt"); statErr == nil {
			promptFile = "prompt.txt"
		}
	}
	cwd, _ := os.Getwd()

	return llm.NewClient(llm.Config{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		SystemPrompt:      llm.BuildSystemPrompt(promptFile, cwd),
		TimeoutSeconds:    cfg.LLM.TimeoutSeconds,
		MaxDictationBytes: cfg.Dictation.MaxBytes,
	},
		llm.WithRetryMaxAttempts(cfg.LLM.RetryAttempts),
		llm.WithRetryBackoff(
			time.Duration(cfg.LLM.RetryBaseDelayMilli)*time.Millisecond,
			time.Duration(cfg.LLM.RetryMaxDelayMilli)*time.Millisecond,
		),
	), nil
}

func (c *commandContext) store() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.New(cfg.Store.Path), nil
}
