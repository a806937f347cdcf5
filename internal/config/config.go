// Package config loads kanview settings.
//
// Settings are read from ~/.config/kanview/config.yaml (or
// $XDG_CONFIG_HOME/kanview/config.yaml), then $KANVIEW_API_URL, then the
// command line flags, each overriding the previous.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Kavantix/kanview/internal/api"
	"github.com/Kavantix/kanview/internal/board"
	"github.com/Kavantix/kanview/internal/flags"
	"github.com/Kavantix/kanview/internal/theme"
	"github.com/Kavantix/kanview/internal/view"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "kanview"

	// URLEnv overrides the api_url setting.
	URLEnv = "KANVIEW_API_URL"
)

var ErrNoURL = errors.New("no ticket API url configured")

type ViewConfig struct {
	Grouping string `yaml:"grouping,omitempty"`
	Sorting  string `yaml:"sorting,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
}

type Config struct {
	APIURL  string        `yaml:"api_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Locale  string        `yaml:"locale,omitempty"`
	View    ViewConfig    `yaml:"view,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Timeout: api.DefaultTimeout,
		Locale:  "en",
		View: ViewConfig{
			Grouping: "status",
			Sorting:  "priority",
			Theme:    "light",
		},
	}
}

// Dir returns the XDG config directory for kanview.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the full path to config.yaml.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// LoadFrom reads config from path on top of the defaults.
// A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Load resolves the configuration from the config file, the environment
// and the command line.
func Load(f *flags.Context) (Config, error) {
	path := f.ConfigPath()
	if path == "" {
		path = Path()
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	cfg.applyFlags(f)
	return cfg, nil
}

func (c *Config) applyEnv() {
	if url := os.Getenv(URLEnv); url != "" {
		c.APIURL = url
	}
}

func (c *Config) applyFlags(f *flags.Context) {
	if f.URL() != "" {
		c.APIURL = f.URL()
	}
	if f.Grouping() != "" {
		c.View.Grouping = f.Grouping()
	}
	if f.Sorting() != "" {
		c.View.Sorting = f.Sorting()
	}
	if f.Theme() != "" {
		c.View.Theme = f.Theme()
	}
	if f.Locale() != "" {
		c.Locale = f.Locale()
	}
	if f.Changed("timeout") {
		c.Timeout = f.Timeout()
	}
}

// ViewState parses the initial view state.
func (c Config) ViewState() (view.State, error) {
	state := view.Default()
	if c.View.Grouping != "" {
		grouping, err := board.ParseGrouping(c.View.Grouping)
		if err != nil {
			return state, fmt.Errorf("invalid view.grouping: %w", err)
		}
		state = state.WithGrouping(grouping)
	}
	if c.View.Sorting != "" {
		sorting, err := board.ParseSorting(c.View.Sorting)
		if err != nil {
			return state, fmt.Errorf("invalid view.sorting: %w", err)
		}
		state = state.WithSorting(sorting)
	}
	if c.View.Theme != "" {
		name, err := theme.ParseName(c.View.Theme)
		if err != nil {
			return state, fmt.Errorf("invalid view.theme: %w", err)
		}
		state = state.WithTheme(name)
	}
	return state, nil
}

func (c Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Validate reports the first setting that would keep the viewer from
// starting.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: set api_url in %s, $%s or --url", ErrNoURL, Path(), URLEnv)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s", c.Timeout)
	}
	if _, err := c.ViewState(); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}
