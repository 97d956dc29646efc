// Package filesystem provides file system implementations of the core ports.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/foliotype/resumate/internal/core/usecases"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher monitors the file system for changes to résumé input files
// (.json, .zip, .csv) so `resumate render --watch` and `resumate preview
// --watch` can re-run the pipeline on edit. It filters out unwanted directories and
// debounces rapid events.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan usecases.FileChangeEvent
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// NewFileWatcher creates a new file system watcher.
func NewFileWatcher() (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher: w,
		events:  make(chan usecases.FileChangeEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Watch starts monitoring a directory for changes.
// Returns a read-only channel of FileChangeEvent; returns error if setup fails.
// The channel is closed when Stop() is called.
func (fw *FileWatcher) Watch(ctx context.Context, rootPath string) (<-chan usecases.FileChangeEvent, error) {
	fw.mu.Lock()
	if fw.stopped {
		fw.mu.Unlock()
		return nil, fmt.Errorf("watcher already stopped")
	}
	fw.mu.Unlock()

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory")
	}

	if err := fw.addRecursive(rootPath); err != nil {
		return nil, fmt.Errorf("failed to add watch paths: %w", err)
	}

	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		fw.processEvents(ctx, rootPath)
	}()

	return fw.events, nil
}

// Stop halts file watching and closes all channels.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if fw.stopped {
		fw.mu.Unlock()
		return nil
	}
	fw.stopped = true
	fw.mu.Unlock()

	close(fw.done)
	err := fw.watcher.Close()
	fw.wg.Wait()
	close(fw.events)

	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	return nil
}

// addRecursive adds the root path and all subdirectories to the watcher.
func (fw *FileWatcher) addRecursive(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if fw.shouldIgnoreDir(path, rootPath) {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			return nil
		}
		return nil
	})
}

// shouldIgnoreDir returns true if the directory should not be watched.
func (fw *FileWatcher) shouldIgnoreDir(path, rootPath string) bool {
	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)

	ignoredDirs := map[string]bool{
		"dist":         true,
		".git":         true,
		".resumate":    true,
		"node_modules": true,
		"build":        true,
		"target":       true,
	}

	parts := strings.Split(rel, "/")
	for _, part := range parts {
		if ignoredDirs[part] {
			return true
		}
	}

	return false
}

// shouldProcessFile returns true if the file should trigger a change
// event: the three résumé input envelopes this watcher cares about.
func (fw *FileWatcher) shouldProcessFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".zip" || ext == ".csv"
}

// processEvents reads from fsnotify and sends debounced events.
func (fw *FileWatcher) processEvents(ctx context.Context, rootPath string) {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C

	pendingEvents := make(map[string]usecases.FileChangeEvent)
	var mu sync.Mutex

	for {
		select {
		case <-fw.done:
			return

		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !fw.shouldIgnoreDir(event.Name, rootPath) {
						_ = fw.watcher.Add(event.Name)
					}
				}
			}

			if !fw.shouldProcessFile(event.Name) {
				continue
			}

			relPath, err := filepath.Rel(rootPath, event.Name)
			if err != nil {
				continue
			}
			relPath = filepath.ToSlash(relPath)

			op := fw.mapOperation(event.Op)

			mu.Lock()
			pendingEvents[relPath] = usecases.FileChangeEvent{
				Path: relPath,
				Op:   op,
			}
			mu.Unlock()

			debounceTimer.Reset(100 * time.Millisecond)

		case <-debounceTimer.C:
			mu.Lock()
			for _, evt := range pendingEvents {
				select {
				case fw.events <- evt:
				case <-fw.done:
					mu.Unlock()
					return
				case <-ctx.Done():
					mu.Unlock()
					return
				}
			}
			pendingEvents = make(map[string]usecases.FileChangeEvent)
			mu.Unlock()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			_ = err
		}
	}
}

// mapOperation converts fsnotify.Op to FileChangeEvent operation string.
func (fw *FileWatcher) mapOperation(op fsnotify.Op) string {
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return "create"
	case op&fsnotify.Write == fsnotify.Write:
		return "write"
	case op&fsnotify.Remove == fsnotify.Remove:
		return "remove"
	case op&fsnotify.Rename == fsnotify.Rename:
		return "rename"
	case op&fsnotify.Chmod == fsnotify.Chmod:
		return "chmod"
	default:
		return "write"
	}
}
