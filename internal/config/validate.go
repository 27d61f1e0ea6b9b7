package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Analysis.CacheTTL <= 0 {
		return fmt.Errorf("analysis.cache_ttl must be > 0 (got %v)", c.Analysis.CacheTTL)
	}
	if c.Analysis.DefaultPeriodDays < 1 {
		return fmt.Errorf("analysis.default_period_days must be >= 1 (got %d)", c.Analysis.DefaultPeriodDays)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	return nil
}

func (a *AIConfig) validate() error {
	if a.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be >= 1 (got %d)", a.MaxTokens)
	}
	if a.ClassifyTemperature < 0 || a.ClassifyTemperature > 1 {
		return fmt.Errorf("classify_temperature must be in [0, 1] (got %v)", a.ClassifyTemperature)
	}
	if a.SummaryTemperature < 0 || a.SummaryTemperature > 1 {
		return fmt.Errorf("summary_temperature must be in [0, 1] (got %v)", a.SummaryTemperature)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	return nil
}
