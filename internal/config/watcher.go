// internal/config/watcher.go
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the settings file when it changes on disk and delivers the
// new settings on Changes. Only the latest reload is kept if the consumer is
// slow.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	changes  chan Settings

	mu      sync.Mutex
	running bool
	doneCh  chan struct{}
}

// NewWatcher watches the directory holding path, so files replaced by editors
// are picked up too.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}
	return &Watcher{
		path:     abs,
		watcher:  fw,
		logger:   logger,
		debounce: 200 * time.Millisecond,
		changes:  make(chan Settings, 1),
		doneCh:   make(chan struct{}),
	}, nil
}

// Changes delivers reloaded settings.
func (w *Watcher) Changes() <-chan Settings {
	return w.changes
}

// Start runs the watch loop in a goroutine until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Склеиваем серию событий от одного сохранения
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous settings", zap.Error(err))
		return
	}
	w.logger.Info("config reloaded", zap.String("path", w.path), zap.String("color_mode", string(s.ColorMode)))

	select {
	case w.changes <- s:
	default:
		// выкидываем устаревшее значение
		select {
		case <-w.changes:
		default:
		}
		w.changes <- s
	}
}

// Close stops the watcher and waits for the loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if running {
		<-w.doneCh
	}
	return err
}
