package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"hnstories/internal/domain"
	"hnstories/internal/eventbus"
	"hnstories/internal/hn"
	"hnstories/internal/store"
)

// Source kinds
const (
	SourceAlgolia = "algolia"
	SourceStatic  = "static"
)

// Config represents the application configuration
type Config struct {
	Version      int            `toml:"version"`
	DefaultQuery string         `toml:"default_query"`
	Welcome      domain.Welcome `toml:"welcome"`
	Source       SourceSettings `toml:"source"`
	Store        StoreSettings  `toml:"store"`
	Log          LogSettings    `toml:"log"`
	UISettings   UISettings     `toml:"ui"`
	Sample       []domain.Item  `toml:"sample"`
}

// SourceSettings selects where stories come from
type SourceSettings struct {
	Kind              string   `toml:"kind"`
	Endpoint          string   `toml:"endpoint"`
	HitsPerPage       int      `toml:"hits_per_page"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Timeout           Duration `toml:"timeout"`
	// Latency delays answers of the static source
	Latency Duration `toml:"latency"`
}

// StoreSettings selects where the last search term is kept
type StoreSettings struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowMeta bool `toml:"show_meta"`
}

// Duration is a time.Duration written as a string such as "15s"
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

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
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the directory holding config and state files
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hnstories")
}

// NewConfigService creates a config service reading path. An empty path
// means config.toml in Dir().
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that announces saves on bus
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration file. A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		err = nil
	}
	if err != nil {
		return nil, err
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

// LoadFromPath loads configuration from a specific path. Fields missing from
// the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	// [[sample]] replaces the defaults rather than appending to them
	cfg.Sample = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Sample == nil {
		cfg.Sample = DefaultSample()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	cfg.ResolvePaths(filepath.Dir(path))
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write config file")
	}
	return nil
}

// Validate rejects settings no component can run with
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceAlgolia, SourceStatic:
	default:
		return errors.Newf("unknown source kind %q", c.Source.Kind)
	}
	switch c.Store.Backend {
	case store.BackendFile, store.BackendBadger, store.BackendMemory:
	default:
		return errors.Newf("unknown store backend %q", c.Store.Backend)
	}
	if c.Source.HitsPerPage < 0 {
		return errors.Newf("hits_per_page must not be negative, got %d", c.Source.HitsPerPage)
	}
	if c.Source.RequestsPerSecond < 0 {
		return errors.Newf("requests_per_second must not be negative, got %v", c.Source.RequestsPerSecond)
	}
	if c.Source.Timeout < 0 || c.Source.Latency < 0 {
		return errors.New("durations must not be negative")
	}
	if c.Store.Backend != store.BackendMemory && c.Store.Path == "" {
		return errors.Newf("store backend %q needs a path", c.Store.Backend)
	}

	seen := make(map[string]struct{}, len(c.Sample))
	for _, item := range c.Sample {
		if item.ID == "" {
			return errors.Newf("sample %q has no id", item.Title)
		}
		if _, dup := seen[item.ID]; dup {
			return errors.Newf("duplicate sample id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// ResolvePaths makes relative store and log paths relative to baseDir
func (c *Config) ResolvePaths(baseDir string) {
	if c.Store.Path != "" && !filepath.IsAbs(c.Store.Path) {
		c.Store.Path = filepath.Join(baseDir, c.Store.Path)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(baseDir, c.Log.File)
	}
}

// ClientConfig returns the HTTP source settings
func (c *Config) ClientConfig() hn.ClientConfig {
	return hn.ClientConfig{
		Endpoint:          c.Source.Endpoint,
		HitsPerPage:       c.Source.HitsPerPage,
		RequestsPerSecond: c.Source.RequestsPerSecond,
		Timeout:           c.Source.Timeout.Std(),
	}
}

// StoreOptions returns the persistence settings
func (c *Config) StoreOptions() store.Options {
	return store.Options{Backend: c.Store.Backend, Path: c.Store.Path}
}

// DefaultSample is the offline story list
func DefaultSample() []domain.Item {
	return []domain.Item{
		{
			ID:          "0",
			Title:       "React",
			URL:         "https://react.js.org/",
			Author:      "Jordan Walke",
			NumComments: 3,
			Points:      4,
		},
		{
			ID:          "1",
			Title:       "Redux",
			URL:         "https://redux.js.org/",
			Author:      "Dan Abramov, Andrew Clark",
			NumComments: 2,
			Points:      5,
		},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version:      1,
		DefaultQuery: "React",
		Welcome: domain.Welcome{
			Greeting: "Hey",
			Title:    "React",
		},
		Source: SourceSettings{
			Kind:              SourceAlgolia,
			Endpoint:          hn.DefaultEndpoint,
			HitsPerPage:       20,
			RequestsPerSecond: 5,
			Timeout:           Duration(15 * time.Second),
		},
		Store: StoreSettings{
			Backend: store.BackendFile,
			Path:    filepath.Join(dir, "state.toml"),
		},
		Log: LogSettings{
			File:  filepath.Join(dir, "hnstories.log"),
			Level: "info",
		},
		UISettings: UISettings{
			ShowMeta: true,
		},
		Sample: DefaultSample(),
	}
}
