// Package config provides configuration loading from resumate.toml files.
// It implements the usecases.ConfigLoader interface for reading and
// writing renderer/service configuration, with flags > env > project file
// > global XDG file > built-in defaults precedence enforced by callers in
// cmd/ via viper; this package owns only the TOML file layer.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/pelletier/go-toml/v2"
)

// Loader implements the ConfigLoader interface for TOML configuration files.
type Loader struct {
	globalConfigPath string // Path to global config (~/.config/resumate/resumate.toml)
}

// NewLoader creates a new config loader. A custom global path may be
// supplied (e.g. from an XDGPathResolver); nil resolves the default.
func NewLoader(resolver *XDGPathResolver) *Loader {
	globalPath := ""
	if resolver != nil {
		globalPath = resolver.ConfigFile()
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalPath = filepath.Join(home, ".config", appName, "resumate.toml")
	}
	return &Loader{globalConfigPath: globalPath}
}

// tomlConfig represents the structure of resumate.toml.
type tomlConfig struct {
	Render renderSection `toml:"render"`
	Fonts  fontsSection  `toml:"fonts"`
	Cache  cacheSection  `toml:"cache"`
	Server serverSection `toml:"server"`
}

type renderSection struct {
	DefaultTemplate string   `toml:"default_template"`
	MarginPoints    *float64 `toml:"margin_points"`
	BaseFontSize    *float64 `toml:"base_font_size"`
}

type fontsSection struct {
	ExtraDir string `toml:"extra_dir"`
}

type cacheSection struct {
	MaxEntries *int `toml:"max_entries"`
}

type serverSection struct {
	Port      *int  `toml:"port"`
	HotReload *bool `toml:"hot_reload"`
}

// LoadConfig reads resumate.toml and applies defaults. It reads both the
// global (~/.config/resumate/resumate.toml) and project-local
// (./resumate.toml) configs, with project-local overriding global settings.
func (l *Loader) LoadConfig(ctx context.Context, projectRoot string) (*entities.RenderConfig, error) {
	config := entities.DefaultRenderConfig()

	if l.globalConfigPath != "" {
		if _, err := os.Stat(l.globalConfigPath); err == nil {
			if err := l.loadFromFile(l.globalConfigPath, config); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	projectConfigPath := filepath.Join(projectRoot, "resumate.toml")
	if _, err := os.Stat(projectConfigPath); err == nil {
		if err := l.loadFromFile(projectConfigPath, config); err != nil {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return config, nil
}

// loadFromFile loads configuration from a TOML file into config.
func (l *Loader) loadFromFile(path string, config *entities.RenderConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if tc.Render.DefaultTemplate != "" {
		config.DefaultTemplate = tc.Render.DefaultTemplate
	}
	if tc.Render.MarginPoints != nil {
		config.MarginPoints = entities.ClampMargin(*tc.Render.MarginPoints)
	}
	if tc.Render.BaseFontSize != nil {
		config.BaseFontSize = *tc.Render.BaseFontSize
	}
	if tc.Fonts.ExtraDir != "" {
		config.ExtraFontDir = tc.Fonts.ExtraDir
	}
	if tc.Cache.MaxEntries != nil {
		config.CacheMaxEntries = *tc.Cache.MaxEntries
	}
	if tc.Server.Port != nil {
		config.ServePort = *tc.Server.Port
	}
	if tc.Server.HotReload != nil {
		config.HotReload = *tc.Server.HotReload
	}

	return nil
}

// SaveConfig persists configuration to resumate.toml in projectRoot.
func (l *Loader) SaveConfig(ctx context.Context, projectRoot string, config *entities.RenderConfig) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	tc := tomlConfig{
		Render: renderSection{
			DefaultTemplate: config.DefaultTemplate,
			MarginPoints:    &config.MarginPoints,
			BaseFontSize:    &config.BaseFontSize,
		},
		Fonts: fontsSection{
			ExtraDir: config.ExtraFontDir,
		},
		Cache: cacheSection{
			MaxEntries: &config.CacheMaxEntries,
		},
		Server: serverSection{
			Port:      &config.ServePort,
			HotReload: &config.HotReload,
		},
	}

	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	configPath := filepath.Join(projectRoot, "resumate.toml")
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	f.WriteString("# resumate configuration\n\n")

	data, err := toml.Marshal(tc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
