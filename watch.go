package touchmap

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a file must stay quiet before its change is
// reported. Editors commonly emit several writes per save.
const watchDebounce = 100 * time.Millisecond

// TriggerWatcher reports trigger script files that changed on disk.
//
// Events and Errors are fed from a background goroutine. Drain them from the
// game loop with a non-blocking select so triggers are only ever touched on
// the game thread.
type TriggerWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewTriggerWatcher watches the given directories for script changes.
func NewTriggerWatcher(dirs ...string) (*TriggerWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &TriggerWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors.
func (w *TriggerWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *TriggerWatcher) run() {
	defer close(w.done)
	pending := map[string]*time.Timer{}
	settled := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isScriptFile(event.Name) {
				continue
			}
			name := filepath.Clean(event.Name)
			if t, ok := pending[name]; ok {
				t.Reset(watchDebounce)
				continue
			}
			pending[name] = time.AfterFunc(watchDebounce, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// ReloadChanged recompiles every trigger in s loaded from path and swaps
// the new programs in. On a compile error the old program stays active and
// the error is returned.
func (s *Scene) ReloadChanged(path string) (int, error) {
	path = filepath.Clean(path)
	var n int
	for _, t := range s.triggers.ByPath(path) {
		if _, err := s.LoadTrigger(t.Name, t.EventID, path); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
