package watcher

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Reloader reloads a file whenever it changes and hands the result to a
// single consumer. Only the latest value is kept when the consumer falls
// behind. Close closes the updates channel.
type Reloader[T any] struct {
	fw      *FileWatcher
	load    func(string) (T, error)
	updates chan T

	mu     sync.Mutex
	closed bool
}

// NewReloader watches path and parses it with load after every change
func NewReloader[T any](path string, debounce time.Duration, load func(string) (T, error)) (*Reloader[T], error) {
	fw, err := NewFileWatcher(debounce)
	if err != nil {
		return nil, err
	}
	r := &Reloader[T]{
		fw:      fw,
		load:    load,
		updates: make(chan T, 1),
	}
	if err := fw.Watch([]string{path}, r.reload); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start()
	return r, nil
}

func (r *Reloader[T]) reload(path string) {
	v, err := r.load(path)
	if err != nil {
		slog.Warn("reload failed, keeping previous value", "path", path, "error", err)
		return
	}
	slog.Info("file reloaded", "path", path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	// drop a value the consumer has not taken yet
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- v:
	default:
	}
}

// Updates delivers reloaded values until Close
func (r *Reloader[T]) Updates() <-chan T {
	return r.updates
}

// Poll returns the pending value, if any, without blocking
func (r *Reloader[T]) Poll() (T, bool) {
	select {
	case v, ok := <-r.updates:
		return v, ok
	default:
		var zero T
		return zero, false
	}
}

func (r *Reloader[T]) Close() error {
	err := r.fw.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.closed = true
		close(r.updates)
	}
	return err
}
