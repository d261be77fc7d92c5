package app

import (
	"path/filepath"
	"time"

	"github.com/chmouel/commitview/internal/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce is the debounce window for watcher events.
const watchDebounce = 600 * time.Millisecond

// watchService watches the repository's git directory and coalesces change
// bursts into single refresh events.
type watchService struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
}

// startWatch begins watching gitDir (HEAD, refs and logs) and returns the
// running service, or nil when the watcher cannot be set up.
func startWatch(gitDir string) *watchService {
	if gitDir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("watch: %v", err)
		return nil
	}

	w := &watchService{
		watcher: watcher,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	for _, dir := range []string{gitDir, filepath.Join(gitDir, "refs", "heads"), filepath.Join(gitDir, "logs")} {
		if err := watcher.Add(dir); err != nil {
			log.Printf("watch: %s: %v", dir, err)
		}
	}

	go w.run()
	return w
}

func (w *watchService) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		case <-fire:
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		}
	}
}

// Close tears down the watcher.
func (w *watchService) Close() {
	close(w.done)
	_ = w.watcher.Close()
}
