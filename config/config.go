package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultMaxPosts = 500
	DefaultCount    = 50
)

var ErrMissingBearerToken = errors.New("[Config] missing TW_BEARER_TOKEN")

// Config represents the complete application configuration
type Config struct {
	Twitter TwitterConfig `mapstructure:"twitter"`
	Reddit  RedditConfig  `mapstructure:"reddit"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Output  OutputConfig  `mapstructure:"output"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type TwitterConfig struct {
	BearerToken string        `mapstructure:"bearer_token"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxPosts    int           `mapstructure:"max_posts"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type RedditConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OpenAIConfig is optional; an empty APIKey disables the narrative step.
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	ChartPath string `mapstructure:"chart_path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load builds the configuration from defaults, an optional config file and
// the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("[Config] failed to read config file: %w", err)
		}
	}

	// TW_MAX_TWEETS is user supplied; garbage falls back to the default
	if n, err := strconv.Atoi(v.GetString("twitter.max_posts")); err != nil || n < 1 {
		slog.Warn("[Config] Invalid max posts value, using default",
			slog.String("value", v.GetString("twitter.max_posts")),
			slog.Int("default", DefaultMaxPosts))
		v.Set("twitter.max_posts", DefaultMaxPosts)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("[Config] failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("twitter.base_url", "https://api.twitter.com/2")
	v.SetDefault("twitter.max_posts", DefaultMaxPosts)
	v.SetDefault("twitter.timeout", "30s")

	v.SetDefault("reddit.base_url", "https://api.pullpush.io")
	v.SetDefault("reddit.timeout", "10s")

	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout", "60s")

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.chart_path", "static/chart.png")

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("twitter.bearer_token", "TW_BEARER_TOKEN")
	_ = v.BindEnv("twitter.max_posts", "TW_MAX_TWEETS")
	_ = v.BindEnv("twitter.base_url", "TW_BASE_URL")
	_ = v.BindEnv("reddit.base_url", "REDDIT_SEARCH_URL")
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("openai.model", "OPENAI_MODEL")
	_ = v.BindEnv("output.dir", "OUTPUT_DIR")
	_ = v.BindEnv("output.chart_path", "CHART_PATH")
	_ = v.BindEnv("server.addr", "SERVER_ADDR")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}

// Validate checks the values the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Twitter.BearerToken == "" {
		return ErrMissingBearerToken
	}
	if c.Twitter.MaxPosts < 1 {
		return fmt.Errorf("[Config] twitter.max_posts must be at least 1")
	}
	if c.Twitter.BaseURL == "" {
		return fmt.Errorf("[Config] twitter.base_url is required")
	}
	if c.Reddit.BaseURL == "" {
		return fmt.Errorf("[Config] reddit.base_url is required")
	}
	if c.Output.ChartPath == "" {
		return fmt.Errorf("[Config] output.chart_path is required")
	}
	return nil
}

// ClampCount normalizes a requested post count: non-positive counts become
// 10 and anything above the ceiling is cut to it.
func (c *Config) ClampCount(n int) int {
	if n <= 0 {
		n = 10
	}
	if n > c.Twitter.MaxPosts {
		n = c.Twitter.MaxPosts
	}
	return n
}
