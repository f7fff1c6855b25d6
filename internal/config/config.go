package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"texttv/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	StartPage int            `toml:"start_page"`
	LogFile   string         `toml:"log_file"`
	Source    SourceSettings `toml:"source"`
	UI        UISettings     `toml:"ui"`
}

// SourceSettings configures where pages come from
type SourceSettings struct {
	BaseURL         string `toml:"base_url"`
	Charset         string `toml:"charset"`
	UserAgent       string `toml:"user_agent"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	CacheSize       int    `toml:"cache_size"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
	PagesDir        string `toml:"pages_dir"` // read pages from disk instead of the web
}

// UISettings represents UI-related configuration
type UISettings struct {
	SplashSeconds int  `toml:"splash_seconds"`
	HistoryLimit  int  `toml:"history_limit"`
	ShowClock     bool `toml:"show_clock"`
}

// Timeout returns the request timeout
func (s SourceSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long a fetched page is reused
func (s SourceSettings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

// SplashDuration returns how long the welcome box stays up
func (u UISettings) SplashDuration() time.Duration {
	return time.Duration(u.SplashSeconds) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	fs       afero.Fs
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/texttv/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "texttv", "config.toml")
}

// NewConfigService creates a config service on the OS filesystem
func NewConfigService(path string) ConfigService {
	return NewConfigServiceWithFs(afero.NewOsFs(), path, nil)
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return NewConfigServiceWithFs(afero.NewOsFs(), path, bus)
}

// NewConfigServiceWithFs creates a config service on fsys; bus may be nil
func NewConfigServiceWithFs(fsys afero.Fs, path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{fs: fsys, bus: bus, filePath: path}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file. A missing file yields the defaults, which
// are written back so the user has a file to edit.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if saveErr := cs.Save(cfg); saveErr != nil {
			return cfg, fmt.Errorf("write default config: %w", saveErr)
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      cs.filePath,
			StartPage: cfg.StartPage,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := afero.ReadFile(cs.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := cs.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(cs.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		StartPage: 100,
		LogFile:   defaultLogFile(),
		Source: SourceSettings{
			BaseURL:         "http://svt.se/texttv/%d.html",
			Charset:         "iso-8859-1",
			UserAgent:       "texttv",
			TimeoutSeconds:  10,
			CacheSize:       128,
			CacheTTLSeconds: 60,
		},
		UI: UISettings{
			SplashSeconds: 3,
			HistoryLimit:  10,
			ShowClock:     true,
		},
	}
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.StartPage < 100 || c.StartPage > 999 {
		c.StartPage = def.StartPage
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = def.Source.BaseURL
	}
	if c.Source.TimeoutSeconds <= 0 {
		c.Source.TimeoutSeconds = def.Source.TimeoutSeconds
	}
	if c.Source.CacheSize < 0 {
		c.Source.CacheSize = 0
	}
	if c.UI.HistoryLimit <= 0 {
		c.UI.HistoryLimit = def.UI.HistoryLimit
	}
	if c.UI.SplashSeconds < 0 {
		c.UI.SplashSeconds = 0
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "texttv", "texttv.log")
}
