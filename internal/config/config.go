package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	VapiAPIKey        string
	VapiBaseURL       string
	VapiAssistantID   string
	VapiPhoneNumberID string
	VapiServerURL     string

	WebhookURL       string
	WebhookAuthToken string

	OpenAIAPIKey      string
	OpenAIModel       string
	GeminiAPIKey      string
	GeminiModel       string
	AnthropicAPIKey   string
	AnthropicModel    string
	AnalysisProvider  string
	AuthoringProvider string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioPhoneNumber  string
	FollowUpSMSEnabled bool

	StripeAPIKeyLive   string
	StripeAPIKeyTest   string
	PaymentRedirectURL string

	DatabasePath string
	ScenarioFile string

	HTTPTimeout         time.Duration
	LLMTimeout          time.Duration
	LivePollInterval    time.Duration
	CORSAllowedOrigins  []string
	TracingEnabled      bool
	MaxTranscriptTokens int
}

var llmProviders = map[string]bool{"openai": true, "gemini": true, "anthropic": true}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		VapiAPIKey:        getEnv("VAPI_API_KEY", ""),
		VapiBaseURL:       getEnv("VAPI_BASE_URL", "https://api.vapi.ai"),
		VapiAssistantID:   getEnv("VAPI_ASSISTANT_ID", ""),
		VapiPhoneNumberID: getEnv("VAPI_PHONE_NUMBER_ID", ""),
		VapiServerURL:     getEnv("VAPI_SERVER_URL", ""),

		WebhookURL:       getEnv("WEBHOOK_URL", ""),
		WebhookAuthToken: getEnv("WEBHOOK_AUTH_TOKEN", ""),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:    getEnv("ANTHROPIC_MODEL", ""),
		AnalysisProvider:  strings.ToLower(getEnv("ANALYSIS_PROVIDER", "openai")),
		AuthoringProvider: strings.ToLower(getEnv("AUTHORING_PROVIDER", "gemini")),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),

		StripeAPIKeyLive:   getEnv("STRIPE_API_KEY_LIVE", ""),
		StripeAPIKeyTest:   getEnv("STRIPE_API_KEY_TEST", ""),
		PaymentRedirectURL: getEnv("PAYMENT_REDIRECT_URL", ""),

		DatabasePath: getEnv("DATABASE_PATH", "data/reports.db"),
		ScenarioFile: getEnv("SCENARIO_FILE", "data/scenarios.json"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.FollowUpSMSEnabled, err = parseBool("FOLLOWUP_SMS_ENABLED", "false"); err != nil {
		return nil, err
	}
	if cfg.TracingEnabled, err = parseBool("TRACING_ENABLED", "false"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", "20s"); err != nil {
		return nil, err
	}
	if cfg.LLMTimeout, err = parseDuration("LLM_TIMEOUT", "60s"); err != nil {
		return nil, err
	}
	if cfg.LivePollInterval, err = parseDuration("LIVE_POLL_INTERVAL", "5s"); err != nil {
		return nil, err
	}
	if cfg.MaxTranscriptTokens, err = strconv.Atoi(getEnv("MAX_TRANSCRIPT_TOKENS", "12000")); err != nil {
		return nil, fmt.Errorf("invalid MAX_TRANSCRIPT_TOKENS: %w", err)
	}

	// Validate server-level settings. Provider credentials are checked
	// when an operation needs them.
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.LivePollInterval <= 0 {
		return fmt.Errorf("LIVE_POLL_INTERVAL must be positive")
	}
	if !llmProviders[c.AnalysisProvider] {
		return fmt.Errorf("unknown ANALYSIS_PROVIDER %q", c.AnalysisProvider)
	}
	if !llmProviders[c.AuthoringProvider] {
		return fmt.Errorf("unknown AUTHORING_PROVIDER %q", c.AuthoringProvider)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseBool(key, fallback string) (bool, error) {
	v, err := strconv.ParseBool(getEnv(key, fallback))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
