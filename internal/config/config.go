package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"rangebar/internal/domain"
	"rangebar/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int                    `toml:"version"`
	Bar        BarSettings            `toml:"bar"`
	Sliders    map[string]SliderRange `toml:"sliders"` // parameter name -> slider range
	UISettings UISettings             `toml:"ui"`
	Restore    RestoreSettings        `toml:"restore"`
}

// BarSettings holds the initial widget parameters and selection
type BarSettings struct {
	TickCount            int     `toml:"tick_count"`
	TickHeight           float64 `toml:"tick_height"`
	BarWeight            float64 `toml:"bar_weight"`
	ConnectingLineWeight float64 `toml:"connecting_line_weight"`
	ThumbRadius          float64 `toml:"thumb_radius"` // -1 means auto
	LeftIndex            int     `toml:"left_index"`
	RightIndex           int     `toml:"right_index"`
}

// SliderRange bounds a parameter slider
type SliderRange struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
	ShowRejections bool `toml:"show_rejections"`
	Mouse          bool `toml:"mouse"`
}

// RestoreSettings controls what a lifecycle restore republishes
type RestoreSettings struct {
	ResyncParams bool `toml:"resync_params"`
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
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
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
	return filepath.Join(configDir, "rangebar", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty
// path selects DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file
// does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
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

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill slider ranges the file did not mention
	for name, r := range defaultSliders() {
		if _, ok := cfg.Sliders[name]; !ok {
			cfg.Sliders[name] = r
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the initial bar settings and slider ranges
func (c *Config) Validate() error {
	var errs []error

	if c.Bar.TickCount < 2 || c.Bar.TickCount > domain.MaxTickCount {
		errs = append(errs, fmt.Errorf("bar.tick_count must be within 2..%d, got %d", domain.MaxTickCount, c.Bar.TickCount))
	} else {
		sel := domain.Indices{Left: c.Bar.LeftIndex, Right: c.Bar.RightIndex}
		if !sel.Within(c.Bar.TickCount) {
			errs = append(errs, fmt.Errorf("bar selection %s outside 0..%d", sel, c.Bar.TickCount-1))
		}
	}

	for name, r := range c.Sliders {
		if !finite(r.Min) || !finite(r.Max) || !finite(r.Step) {
			errs = append(errs, fmt.Errorf("sliders.%s: min, max and step must be finite", name))
			continue
		}
		if name == string(domain.ParamTickCount) && r.Max > domain.MaxTickCount {
			errs = append(errs, fmt.Errorf("sliders.%s: max %g above %d", name, r.Max, domain.MaxTickCount))
		}
		if r.Max < r.Min {
			errs = append(errs, fmt.Errorf("sliders.%s: max %g below min %g", name, r.Max, r.Min))
		}
		if r.Step <= 0 {
			errs = append(errs, fmt.Errorf("sliders.%s: step must be positive", name))
		}
	}

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Slider returns the slider range for a parameter, falling back to defaults
func (c *Config) Slider(name domain.ParamName) SliderRange {
	if r, ok := c.Sliders[string(name)]; ok {
		return r
	}
	return defaultSliders()[string(name)]
}

// InitialParams returns the [bar] parameter values keyed by parameter name
func (c *Config) InitialParams() map[domain.ParamName]float64 {
	return map[domain.ParamName]float64{
		domain.ParamTickCount:            float64(c.Bar.TickCount),
		domain.ParamTickHeight:           c.Bar.TickHeight,
		domain.ParamBarWeight:            c.Bar.BarWeight,
		domain.ParamConnectingLineWeight: c.Bar.ConnectingLineWeight,
		domain.ParamThumbRadius:          c.Bar.ThumbRadius,
	}
}

// ApplySnapshot copies live parameter values and the selection into [bar]
func (c *Config) ApplySnapshot(values map[domain.ParamName]float64, sel domain.Indices) {
	if v, ok := values[domain.ParamTickCount]; ok {
		c.Bar.TickCount = int(v)
	}
	if v, ok := values[domain.ParamTickHeight]; ok {
		c.Bar.TickHeight = v
	}
	if v, ok := values[domain.ParamBarWeight]; ok {
		c.Bar.BarWeight = v
	}
	if v, ok := values[domain.ParamConnectingLineWeight]; ok {
		c.Bar.ConnectingLineWeight = v
	}
	if v, ok := values[domain.ParamThumbRadius]; ok {
		c.Bar.ThumbRadius = v
	}
	c.Bar.LeftIndex = sel.Left
	c.Bar.RightIndex = sel.Right
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Bar: BarSettings{
			TickCount:            domain.DefaultTickCount,
			TickHeight:           domain.DefaultTickHeight,
			BarWeight:            domain.DefaultBarWeight,
			ConnectingLineWeight: domain.DefaultConnectingLineWeight,
			ThumbRadius:          domain.DefaultThumbRadius,
			LeftIndex:            0,
			RightIndex:           domain.DefaultTickCount - 1,
		},
		Sliders: defaultSliders(),
		UISettings: UISettings{
			AutosaveOnExit: true,
			Mouse:          true,
		},
	}
}

func defaultSliders() map[string]SliderRange {
	return map[string]SliderRange{
		string(domain.ParamTickCount):            {Min: 0, Max: 20, Step: 1},
		string(domain.ParamTickHeight):           {Min: 0, Max: 50, Step: 1},
		string(domain.ParamBarWeight):            {Min: 0, Max: 20, Step: 1},
		string(domain.ParamConnectingLineWeight): {Min: 0, Max: 20, Step: 1},
		string(domain.ParamThumbRadius):          {Min: 0, Max: 20, Step: 1},
	}
}
