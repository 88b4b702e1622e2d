package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"staffgrip/internal/eventbus"
	"staffgrip/internal/windowing"
)

// DefaultSampleSize is the size of the generated roster when no file is given
const DefaultSampleSize = 1000

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	RosterPath string     `toml:"roster_path"` // CSV file, empty means generated sample
	SampleSize int        `toml:"sample_size"` // rows in the generated sample roster
	List       ListConfig `toml:"list"`
	UISettings UISettings `toml:"ui"`
}

// ListConfig holds the windowing geometry knobs
type ListConfig struct {
	ItemHeight float64 `toml:"item_height"`
	Overscan   int     `toml:"overscan"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDepartment bool `toml:"show_department"`
	ShowLocation   bool `toml:"show_location"`
}

// Geometry builds the windowing geometry for the given viewport height.
// Validation happens at engine construction, per the fail-fast policy for
// configuration errors.
func (c *Config) Geometry(containerHeight float64) windowing.Geometry {
	return windowing.Geometry{
		ItemHeight:      c.List.ItemHeight,
		ContainerHeight: containerHeight,
		Overscan:        c.List.Overscan,
	}
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		SampleSize: DefaultSampleSize,
		List: ListConfig{
			ItemHeight: 1, // one terminal row per employee
			Overscan:   windowing.DefaultOverscan,
		},
		UISettings: UISettings{
			ShowDepartment: true,
			ShowLocation:   true,
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	staffgripDir := filepath.Join(configDir, "staffgrip")
	os.MkdirAll(staffgripDir, 0755)

	return &configService{
		filePath: filepath.Join(staffgripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from an explicit file path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Backfill anything an older or hand-edited file leaves unset
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultSampleSize
	}
	if cfg.List.ItemHeight == 0 {
		cfg.List.ItemHeight = 1
	}

	cs.publishLoaded(path)
	return &cfg, nil
}

// SaveToPath saves the configuration to an explicit file path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}
