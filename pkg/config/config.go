package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment overrides, e.g. YTX_DATABASE_PATH.
		viper.SetEnvPrefix("YTX")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// A missing config file is fine; defaults and env vars apply.
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		viper.Set("database.path", "transcripts.db")
	}

	if len(viper.GetStringSlice("youtube.default_languages")) == 0 {
		viper.Set("youtube.default_languages", []string{"en"})
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		c.Database.Path = "transcripts.db"
	}
	if len(c.YouTube.DefaultLanguages) == 0 {
		c.YouTube.DefaultLanguages = []string{"en"}
	}
	return nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Store defaults
	viper.SetDefault("database.path", "transcripts.db")
	viper.SetDefault("database.verbose", false)

	// Fetch defaults
	viper.SetDefault("youtube.default_languages", []string{"en"})
	viper.SetDefault("youtube.timeout", 15*time.Second)
	viper.SetDefault("youtube.user_agent", "Mozilla/5.0 (compatible; transcript-api/1.0)")

	// Output defaults
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetDefault("output.base_dir", filepath.Join(home, "Documents", "yt-transcripts"))
}
