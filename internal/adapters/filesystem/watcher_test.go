package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// stopWatcher is a helper to properly close a watcher in tests.
func stopWatcher(t *testing.T, fw *FileWatcher) {
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestNewFileWatcher(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if fw == nil {
		t.Error("NewFileWatcher returned nil")
	}
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestWatchInvalidPath(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer func() {
		if err := fw.Stop(); err != nil {
			t.Errorf("Stop failed: %v", err)
		}
	}()

	ctx := context.Background()
	_, err = fw.Watch(ctx, "/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for nonexistent path, got nil")
	}
}

func TestWatchStoppedWatcher(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	if err := fw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	ctx := context.Background()
	tmpDir := t.TempDir()
	_, watchErr := fw.Watch(ctx, tmpDir)
	if watchErr == nil {
		t.Error("expected error when watching after stop, got nil")
	}
}

// TestWatchJSONFile tests detecting changes to a canonical-document JSON file.
func TestWatchJSONFile(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(tmpDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		if evt.Path != "resume.json" {
			t.Errorf("expected path 'resume.json', got '%s'", evt.Path)
		}
		if evt.Op != "create" && evt.Op != "write" {
			t.Errorf("expected 'create' or 'write', got '%s'", evt.Op)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

// TestWatchZIPExport tests detecting changes to a LinkedIn-style ZIP export.
func TestWatchZIPExport(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	zipFile := filepath.Join(tmpDir, "export.zip")
	if err := os.WriteFile(zipFile, []byte("PK"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		if evt.Path != "export.zip" {
			t.Errorf("expected path 'export.zip', got '%s'", evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	txtFile := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(txtFile, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		t.Errorf("unexpected event for unrelated file: %v", evt)
	case <-time.After(500 * time.Millisecond):
		// Expected: no event
	}
}

func TestWatchIgnoresGitDirectory(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	gitDir := filepath.Join(tmpDir, ".git")
	if err := os.MkdirAll(gitDir, 0755); err != nil {
		t.Fatalf("failed to create .git directory: %v", err)
	}

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(gitDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		t.Errorf("unexpected event from .git directory: %v", evt)
	case <-time.After(500 * time.Millisecond):
		// Expected: no event
	}
}

func TestWatchIgnoresDistDirectory(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	distDir := filepath.Join(tmpDir, "dist")
	if err := os.MkdirAll(distDir, 0755); err != nil {
		t.Fatalf("failed to create dist directory: %v", err)
	}

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(distDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		t.Errorf("unexpected event from dist directory: %v", evt)
	case <-time.After(500 * time.Millisecond):
		// Expected: no event
	}
}

func TestWatchSubdirectory(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	subDir := filepath.Join(tmpDir, "profiles", "jane")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(subDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		expectedPath := filepath.ToSlash(filepath.Join("profiles", "jane", "resume.json"))
		if evt.Path != expectedPath {
			t.Errorf("expected path '%s', got '%s'", expectedPath, evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

func TestWatchDebouncing(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(tmpDir, "resume.json")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(jsonFile, []byte("{\"n\":"+string(rune('0'+i))+"}"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	eventCount := 0
	timeout := time.After(500 * time.Millisecond)
loop:
	for {
		select {
		case <-events:
			eventCount++
		case <-timeout:
			break loop
		}
	}

	if eventCount > 3 {
		t.Errorf("expected debounced events (<=3), got %d", eventCount)
	}
}

func TestWatchContextCancellation(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	cancel()

	jsonFile := filepath.Join(tmpDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case <-events:
		t.Error("unexpected event after context cancellation")
	case <-time.After(500 * time.Millisecond):
		// Expected: no event
	}
}

// TestWatchPreservesCase verifies filenames are not case-folded, since
// résumé document ids can be case-sensitive.
func TestWatchPreservesCase(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(tmpDir, "Resume-v2.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		if evt.Path != "Resume-v2.json" {
			t.Errorf("expected case-preserved path 'Resume-v2.json', got '%s'", evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

func TestWatchFileRemoval(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(tmpDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case <-events:
		// Got creation event
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for creation event")
		return
	}

	if err := os.Remove(jsonFile); err != nil {
		t.Fatalf("failed to remove test file: %v", err)
	}

	select {
	case evt := <-events:
		if evt.Op != "remove" {
			t.Errorf("expected 'remove' operation, got '%s'", evt.Op)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for removal event")
	}
}

func TestStopClosesChannel(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := fw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected channel to be closed")
		}
	case <-time.After(500 * time.Millisecond):
		t.Error("timeout waiting for channel close")
	}
}

func TestStopIdempotent(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	tmpDir := t.TempDir()
	ctx := context.Background()

	_, err = fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := fw.Stop(); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}

	if err := fw.Stop(); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}

func TestWatchNewDirectoryCreation(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	newDir := filepath.Join(tmpDir, "newprofiles")
	if err := os.MkdirAll(newDir, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	jsonFile := filepath.Join(newDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		expectedPath := filepath.ToSlash(filepath.Join("newprofiles", "resume.json"))
		if evt.Path != expectedPath {
			t.Errorf("expected path '%s', got '%s'", expectedPath, evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

func TestWatchForwardSlashes(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	nestedDir := filepath.Join(tmpDir, "profiles", "jane", "exports")
	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatalf("failed to create nested directory: %v", err)
	}

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	jsonFile := filepath.Join(nestedDir, "resume.json")
	if err := os.WriteFile(jsonFile, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	select {
	case evt := <-events:
		if !containsOnlyForwardSlashes(evt.Path) {
			t.Errorf("path contains backslashes: %s", evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for event")
	}
}

func containsOnlyForwardSlashes(path string) bool {
	for _, ch := range path {
		if ch == '\\' {
			return false
		}
	}
	return true
}

func TestWatchMultipleFiles(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	tmpDir := t.TempDir()
	ctx := context.Background()

	events, err := fw.Watch(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	files := []string{"file1.json", "file2.zip", "file3.csv"}
	for _, file := range files {
		filePath := filepath.Join(tmpDir, file)
		if err := os.WriteFile(filePath, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	receivedPaths := make(map[string]bool)
	timeout := time.After(2 * time.Second)
loop:
	for {
		select {
		case evt := <-events:
			receivedPaths[evt.Path] = true
		case <-timeout:
			break loop
		}
	}

	for _, file := range files {
		if !receivedPaths[file] {
			t.Errorf("did not receive event for file: %s", file)
		}
	}
}
