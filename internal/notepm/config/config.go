package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "NOTEPM"

	// APIHost is the NotePM API host suffix
	APIHost = "notepm.jp"

	// DefaultMaxBodyLength is the default truncation threshold for
	// page bodies in search results
	DefaultMaxBodyLength = 200
)

const defaultSearchDescription = `Searches NotePM pages for the given query.
Search words are combined with AND; natural language queries are not supported.
Results are returned as JSON. Long page bodies may be truncated.
Use notepm_page_detail to fetch the full content of a page.`

const defaultPageDetailDescription = "Fetches the full content of the NotePM page identified by the given page code."

// Config holds the application configuration. It is loaded once at
// startup and treated as immutable afterwards.
type Config struct {
	Team                  string
	APIToken              string
	APIBase               string
	MaxBodyLength         int
	SearchDescription     string
	PageDetailDescription string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("max_body_length", DefaultMaxBodyLength)
	v.SetDefault("search_description", defaultSearchDescription)
	v.SetDefault("page_detail_description", defaultPageDetailDescription)

	cfg := &Config{
		Team:                  v.GetString("team"),
		APIToken:              v.GetString("api_token"),
		MaxBodyLength:         v.GetInt("max_body_length"),
		SearchDescription:     v.GetString("search_description"),
		PageDetailDescription: v.GetString("page_detail_description"),
	}

	// Unparsable or non-positive values fall back to the default
	if cfg.MaxBodyLength <= 0 {
		cfg.MaxBodyLength = DefaultMaxBodyLength
	}

	cfg.APIBase = fmt.Sprintf("https://%s.%s/api/v1/pages", cfg.Team, APIHost)

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Team == "" {
		return fmt.Errorf("team is required. Set the NOTEPM_TEAM environment variable")
	}
	if c.APIToken == "" {
		return fmt.Errorf("api token is required. Set the NOTEPM_API_TOKEN environment variable")
	}
	return nil
}
