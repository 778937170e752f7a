package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

const (
	EnvAccessToken = "ACCESS_TOKEN"
	EnvPlaylistID  = "PLAYLIST_ID"
	EnvBaseURL     = "SPOTIFY_BASE_URL"

	DefaultBaseURL = "https://api.spotify.com/v1"
)

// Config represents the application configuration loaded from a TOML file and the environment.
//
// A Config is built once at startup and passed to every component that needs it.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Client  ClientConfig  `toml:"client"`
	Log     LogConfig     `toml:"log"`
}

// SpotifyConfig contains the static bearer token and the playlist being edited.
type SpotifyConfig struct {
	AccessToken string `toml:"access_token"`
	PlaylistID  string `toml:"playlist_id"`
	BaseURL     string `toml:"base_url"`
}

// ClientConfig contains HTTP client settings.
type ClientConfig struct {
	RateLimit float64 `toml:"rate_limit"` // requests per second, 0 = unlimited
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Resolve builds the runtime configuration.
//
// The TOML file at path is optional; a missing file falls back to [DefaultConfig].
// The process environment, then envFile (if it exists), override the file.
func Resolve(path, envFile string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := LoadConfig(path)
			if err != nil {
				return nil, err
			}
			config = loaded
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to load %s: %v", ErrInvalidConfig, envFile, err)
		}
		if values != nil {
			dotenv = values
		}
	}

	config.ApplyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	return config, nil
}

// ApplyEnv overrides Spotify settings with non-empty values returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAccessToken); ok && v != "" {
		c.Spotify.AccessToken = v
	}
	if v, ok := lookup(EnvPlaylistID); ok && v != "" {
		c.Spotify.PlaylistID = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.Spotify.BaseURL = v
	}
}

// Validate reports the first setting that prevents the CLI from talking to Spotify.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Spotify.AccessToken) == "" {
		return fmt.Errorf("%w: set %s or spotify.access_token", ErrMissingCredentials, EnvAccessToken)
	}
	if strings.TrimSpace(c.Spotify.PlaylistID) == "" {
		return fmt.Errorf("%w: set %s or spotify.playlist_id", ErrMissingConfig, EnvPlaylistID)
	}
	if c.Client.RateLimit < 0 {
		return fmt.Errorf("%w: client.rate_limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LogLevel parses the configured level, falling back to [log.InfoLevel].
func (c *Config) LogLevel() log.Level {
	if c.Log.Level == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// BaseURL returns the configured API root or [DefaultBaseURL].
func (c *Config) BaseURL() string {
	if c.Spotify.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(c.Spotify.BaseURL, "/")
}
