// Package usecases declares the ports the core document pipeline depends
// on: logging, configuration loading, XDG path resolution, and file
// watching. Concrete implementations live under internal/adapters;
// usecases itself only describes the contracts so the core stays decoupled
// from any one of them. The format adapters and the typesetting renderer
// are called directly and have no port here.
package usecases

import (
	"context"

	"github.com/foliotype/resumate/internal/core/entities"
)

// Logger is the structured logging contract injected into every use case.
// Implementations write one JSON object per call; WithFields/WithContext
// return a derived logger rather than mutating the receiver.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, err error, keysAndValues ...any)
	WithFields(keysAndValues ...any) Logger
	WithContext(ctx context.Context) Logger
}

// NoopLogger discards everything. It is the default injected into core
// packages so the library surface stays side-effect free without an
// explicit logger.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...any)                 {}
func (NoopLogger) Info(string, ...any)                  {}
func (NoopLogger) Warn(string, ...any)                  {}
func (NoopLogger) Error(string, error, ...any)          {}
func (n NoopLogger) WithFields(...any) Logger           { return n }
func (n NoopLogger) WithContext(context.Context) Logger { return n }

// FileChangeEvent reports a single debounced filesystem change, relative to
// the watched root, normalized to forward slashes.
type FileChangeEvent struct {
	Path string
	Op   string // "create", "write", "remove", "rename", "chmod"
}

// FileWatcher watches a directory tree of résumé input files (JSON, ZIP,
// CSV) and reports debounced change events until Stop is called.
type FileWatcher interface {
	Watch(ctx context.Context, rootPath string) (<-chan FileChangeEvent, error)
	Stop() error
}

// PathResolver resolves the XDG-style directories resumate reads
// configuration, fonts, and cache state from.
type PathResolver interface {
	ConfigDir() string
	DataDir() string
	CacheDir() string
	ConfigFile() string
	FontsDir() string
	EnsureDir(path string) error
}

// ConfigLoader reads and writes renderer/service configuration.
type ConfigLoader interface {
	LoadConfig(ctx context.Context, projectRoot string) (*entities.RenderConfig, error)
	SaveConfig(ctx context.Context, projectRoot string, config *entities.RenderConfig) error
}
