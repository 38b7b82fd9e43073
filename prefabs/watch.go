package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoPrefabDir means the default prefab directory is not present under the
// working directory, so only the embedded copy is in use.
var ErrNoPrefabDir = errors.New("prefabs: no prefabs/ directory in working directory (run from the repo root or pass --config)")

// settleDelay coalesces the burst of events an editor produces on save.
const settleDelay = 100 * time.Millisecond

// Reload is the result of re-reading the tuning prefab after it changed.
type Reload struct {
	File string
	Spec *DasherSpec
	Err  error
}

// Watcher re-loads the tuning prefab whenever its file is saved. The parent
// directory is watched so rename-on-save editors are seen too.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	target  string
	Reloads chan Reload

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches path, or prefabs/dasher.yaml when path is empty. The
// default is relative to the working directory; outside the repo there is
// nothing on disk to watch and ErrNoPrefabDir is returned.
func NewWatcher(path string) (*Watcher, error) {
	dir, target := "prefabs", DasherFile
	if path != "" {
		dir, target = filepath.Dir(path), filepath.Base(path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		if path == "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoPrefabDir, dir, err)
		}
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fw,
		path:    path,
		target:  target,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine. Reloads is closed
// afterwards.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Reloads)

	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.matches(event) {
				settle = time.After(settleDelay)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.send(Reload{File: w.target, Err: err}) {
				return
			}
		case <-settle:
			settle = nil
			spec, err := LoadDasherSpec(w.path)
			if !w.send(Reload{File: w.target, Spec: spec, Err: err}) {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == w.target
}

func (w *Watcher) send(r Reload) bool {
	select {
	case w.Reloads <- r:
		return true
	case <-w.closeCh:
		return false
	}
}
