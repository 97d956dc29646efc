package entities

import "path/filepath"

// XDGPaths holds resolved XDG-compliant paths for resumate application
// data. Path resolution is performed by the config adapter; this entity
// stores the results as a value object.
type XDGPaths struct {
	// ConfigHome is the resolved configuration directory.
	// Typically ~/.config/resumate/ or overridden by RESUMATE_CONFIG_HOME/XDG_CONFIG_HOME.
	ConfigHome string

	// DataHome is the resolved data directory.
	// Typically ~/.local/share/resumate/ or overridden by XDG_DATA_HOME.
	DataHome string

	// CacheHome is the resolved cache directory.
	// Typically ~/.cache/resumate/ or overridden by XDG_CACHE_HOME. Holds
	// the rendered-thumbnail cache.
	CacheHome string
}

// ConfigFile returns the path to the global config file (resumate.toml).
func (p XDGPaths) ConfigFile() string {
	return filepath.Join(p.ConfigHome, "resumate.toml")
}

// FontsDir returns the path to the user font directory override.
func (p XDGPaths) FontsDir() string {
	return filepath.Join(p.DataHome, "fonts")
}

// CacheDir returns the cache directory path (same as CacheHome).
func (p XDGPaths) CacheDir() string {
	return p.CacheHome
}

// Validate checks that all required paths are set and absolute.
func (p XDGPaths) Validate() error {
	if p.ConfigHome == "" {
		return NewValidationError("ConfigHome", "config home path is required", nil)
	}
	if !filepath.IsAbs(p.ConfigHome) {
		return NewValidationError("ConfigHome", "config home path must be absolute", nil)
	}
	if p.DataHome == "" {
		return NewValidationError("DataHome", "data home path is required", nil)
	}
	if !filepath.IsAbs(p.DataHome) {
		return NewValidationError("DataHome", "data home path must be absolute", nil)
	}
	if p.CacheHome == "" {
		return NewValidationError("CacheHome", "cache home path is required", nil)
	}
	if !filepath.IsAbs(p.CacheHome) {
		return NewValidationError("CacheHome", "cache home path must be absolute", nil)
	}
	return nil
}
