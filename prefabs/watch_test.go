package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func writeSpec(t *testing.T, path string, gravity float64) {
	t.Helper()
	spec, err := LoadDasherSpec("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	spec.Physics.Gravity = gravity
	data, err := spec.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWatcherReloadsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeSpec(t, path, 4000)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	writeSpec(t, path, 4500)

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload: %v", r.Err)
		}
		if r.File != "tuning.yaml" || r.Spec.Physics.Gravity != 4500 {
			t.Fatalf("unexpected reload %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeSpec(t, path, 4000)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	writeSpec(t, path, -1)

	select {
	case r := <-w.Reloads:
		if r.Err == nil || r.Spec != nil {
			t.Fatalf("expected validation error, got %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}

func TestWatcherCloseClosesReloads(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "tuning.yaml"))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := <-w.Reloads; ok {
		t.Fatalf("expected Reloads to be closed")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestWatcherMatches(t *testing.T) {
	w := &Watcher{target: "dasher.yaml"}
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "prefabs/dasher.yaml", Op: fsnotify.Write}, true},
		{"rename", fsnotify.Event{Name: "prefabs/dasher.yaml", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "prefabs/dasher.yaml", Op: fsnotify.Chmod}, false},
		{"other_file", fsnotify.Event{Name: "prefabs/other.yaml", Op: fsnotify.Write}, false},
		{"swap_file", fsnotify.Event{Name: "prefabs/dasher.yaml~", Op: fsnotify.Create}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.matches(tc.event); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWatcherDefaultOutsideRepo(t *testing.T) {
	t.Chdir(t.TempDir())

	w, err := NewWatcher("")
	if !errors.Is(err, ErrNoPrefabDir) {
		t.Fatalf("expected ErrNoPrefabDir, got %v", err)
	}
	if w != nil {
		t.Fatalf("expected no watcher")
	}
}

func TestWatcherDefaultInRepo(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(dir)

	w, err := NewWatcher("")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
