package config

const (
	defaultBaseURL           = "https://api.openai.com/v1/chat/completions"
	defaultModel             = "gpt-4o-mini"
	defaultTimeoutSeconds    = 15
	defaultRetryAttempts     = 3
	defaultRetryBaseDelayMS  = 1000
	defaultRetryMaxDelayMS   = 10000
	defaultStorePath         = "backlog.csv"
	defaultDictationMaxBytes = 2048
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
	defaultLogDir            = "~/.bckl"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LLM: LLM{
			BaseURL:             defaultBaseURL,
			Model:               defaultModel,
			TimeoutSeconds:      defaultTimeoutSeconds,
			RetryAttempts:       defaultRetryAttempts,
			RetryBaseDelayMilli: defaultRetryBaseDelayMS,
			RetryMaxDelayMilli:  defaultRetryMaxDelayMS,
		},
		Store: Store{
			Path: defaultStorePath,
		},
		Dictation: Dictation{
			MaxBytes: defaultDictationMaxBytes,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Dir:    defaultLogDir,
		},
	}
}
