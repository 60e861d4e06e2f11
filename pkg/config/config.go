// Package config loads the settings shared by the rasp binaries. Values are
// read, lowest precedence first, from defaults, an optional YAML file, a .env
// file, the process environment and finally explicit overrides (CLI flags).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/travigo/rasp/pkg/rasp"
	"github.com/travigo/rasp/pkg/rasp/enums"
	"github.com/travigo/rasp/pkg/util"
)

const (
	EnvPrefix = "RASP_"

	envAPIKey         = EnvPrefix + "API_KEY"
	envBaseURL        = EnvPrefix + "BASE_URL"
	envLanguage       = EnvPrefix + "LANGUAGE"
	envTimeoutSeconds = EnvPrefix + "TIMEOUT_SECONDS"
	envUserAgent      = EnvPrefix + "USER_AGENT"

	DefaultTimeoutSeconds = 30
)

type Config struct {
	APIKey         string `yaml:"api_key" validate:"required"`
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	Language       string `yaml:"language"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
	UserAgent      string `yaml:"user_agent"`
}

type LoadOptions struct {
	// ConfigFile is an optional YAML file. When set it must exist.
	ConfigFile string
	// EnvFile is loaded into the environment if it exists. Variables that
	// are already set keep their value.
	EnvFile string

	APIKey  string
	BaseURL string
}

func Default() Config {
	return Config{
		BaseURL:        rasp.DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		UserAgent:      rasp.DefaultUserAgent,
	}
}

func Load(options LoadOptions) (*Config, error) {
	cfg := Default()

	if options.ConfigFile != "" {
		data, err := os.ReadFile(options.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", options.ConfigFile, err)
		}
	}

	if options.EnvFile != "" {
		err := godotenv.Load(options.EnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", options.EnvFile, err)
		}
		if err == nil {
			log.Debug().Str("file", options.EnvFile).Msg("Loaded env file")
		}
	}

	if err := cfg.applyEnvironment(util.GetEnvironmentVariables(EnvPrefix)); err != nil {
		return nil, err
	}

	if options.APIKey != "" {
		cfg.APIKey = options.APIKey
	}
	if options.BaseURL != "" {
		cfg.BaseURL = options.BaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	if value := env[envAPIKey]; value != "" {
		c.APIKey = value
	}
	if value := env[envBaseURL]; value != "" {
		c.BaseURL = value
	}
	if value := env[envLanguage]; value != "" {
		c.Language = value
	}
	if value := env[envUserAgent]; value != "" {
		c.UserAgent = value
	}
	if value := env[envTimeoutSeconds]; value != "" {
		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a whole number of seconds: %w", envTimeoutSeconds, err)
		}
		c.TimeoutSeconds = timeout
	}
	return nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Language != "" {
		if _, err := enums.ParseLanguage(c.Language); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// LanguageOption returns the configured language and whether one was set.
func (c Config) LanguageOption() (enums.Language, bool) {
	if c.Language == "" {
		return "", false
	}
	language, err := enums.ParseLanguage(c.Language)
	return language, err == nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewClient builds a rasp client with a logging transport and the configured
// timeout. A zero timeout means no timeout.
func (c Config) NewClient() *rasp.Client {
	httpClient := &http.Client{
		Timeout:   c.Timeout(),
		Transport: rasp.NewLoggingTransport(http.DefaultTransport, log.Logger),
	}

	opts := []rasp.Option{
		rasp.WithHTTPClient(httpClient),
		rasp.WithBaseURL(c.BaseURL),
	}
	if c.UserAgent != "" {
		opts = append(opts, rasp.WithUserAgent(c.UserAgent))
	}

	return rasp.NewClient(c.APIKey, opts...)
}

const (
	FlagConfig  = "config"
	FlagEnvFile = "env-file"
	FlagAPIKey  = "api-key"
	FlagBaseURL = "base-url"
)

// Flags are the global flags every command loads its config from.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagConfig,
			Usage: "path to a YAML config file",
		},
		&cli.StringFlag{
			Name:  FlagEnvFile,
			Value: ".env",
			Usage: "env file to load if present",
		},
		&cli.StringFlag{
			Name:  FlagAPIKey,
			Usage: "Rasp API key, overrides " + envAPIKey,
		},
		&cli.StringFlag{
			Name:  FlagBaseURL,
			Usage: "Rasp API base URL, overrides " + envBaseURL,
		},
	}
}

func FromCLI(c *cli.Context) (*Config, error) {
	return Load(LoadOptions{
		ConfigFile: c.String(FlagConfig),
		EnvFile:    c.String(FlagEnvFile),
		APIKey:     c.String(FlagAPIKey),
		BaseURL:    c.String(FlagBaseURL),
	})
}
