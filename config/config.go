package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Chat
	Chat    ChatConfig
	Backend BackendConfig
	Router  RouterConfig

	// Debug endpoints
	TestEndpoints TestEndpointsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// ChatConfig controls the reply envelope.
type ChatConfig struct {
	ModelTag    string
	ServiceName string
}

// BackendConfig tunes outbound calls. The base URL itself always comes from the caller.
type BackendConfig struct {
	Timeout time.Duration
}

// RouterConfig points at an optional lexicon override. Empty means the embedded lexicon.
type RouterConfig struct {
	LexiconPath string
}

type TestEndpointsConfig struct {
	Enabled bool
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// viper does not split comma separated env values into slices
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Chat
	cfg.Chat.ModelTag = viper.GetString("chat.model_tag")
	cfg.Chat.ServiceName = viper.GetString("chat.service_name")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Router.LexiconPath = viper.GetString("router.lexicon_path")

	cfg.TestEndpoints.Enabled = cfg.Environment.Name != EnvironmentProduction
	if viper.IsSet("test_endpoints.enabled") {
		cfg.TestEndpoints.Enabled = viper.GetBool("test_endpoints.enabled")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnvironmentProduction is the environment name that hardens defaults.
const EnvironmentProduction = "production"

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("chat.model_tag", "omnixius-ai-v0")
	viper.SetDefault("chat.service_name", "omnixius-ai")
	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("router.lexicon_path", "")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	if cfg.Backend.Timeout <= 0 {
		return errors.New("backend.timeout must be positive")
	}
	if strings.TrimSpace(cfg.Chat.ModelTag) == "" {
		return errors.New("chat.model_tag is required")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
