package entities

// RenderConfig holds renderer and service defaults loaded from the global
// and project resumate.toml files. Only the config adapter reads and
// writes it: the engine, the thumbnail cache and the CLI commands do not
// consult a RenderConfig. Zero value is never used directly; callers start
// from DefaultRenderConfig.
type RenderConfig struct {
	// DefaultTemplate is a catalogue slug (render.default_template). The
	// engine's own fallback for an unknown slug is templates.Default, not
	// this value.
	DefaultTemplate string

	// MarginPoints is a page margin in points (render.margin_points),
	// clamped to [0, 144] on load.
	MarginPoints float64

	// BaseFontSize is the default body text size in points.
	BaseFontSize float64

	// ExtraFontDir names an additional font directory (fonts.extra_dir).
	// The font catalogue does not read this value.
	ExtraFontDir string

	// CacheMaxEntries is read from cache.max_entries. The thumbnail cache
	// is an unbounded map with no eviction and does not read this value.
	CacheMaxEntries int

	// ServePort is the HTTP service's listen port (server.port), default
	// 3000. `resumate serve` takes its port from its flag, PORT and viper,
	// not from this field.
	ServePort int

	// HotReload is read from server.hot_reload; no command acts on it.
	HotReload bool
}

// DefaultRenderConfig returns resumate's built-in defaults, matching
// spec.md's stated margin/font-size ranges.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		DefaultTemplate: "onyx",
		MarginPoints:    36,
		BaseFontSize:    10.5,
		CacheMaxEntries: 0,
		ServePort:       3000,
		HotReload:       false,
	}
}
