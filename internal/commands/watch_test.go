package commands

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceCoalescesBursts(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	fired := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- debounce(ctx, events, errs, 20*time.Millisecond, func(fsnotify.Event) {}, func() {
			calls.Add(1)
			fired <- struct{}{}
		}, func(error) {})
	}()

	for i := 0; i < 5; i++ {
		events <- fsnotify.Event{Name: "src/app.js", Op: fsnotify.Write}
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never ran")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestDebounceIgnoresChmod(t *testing.T) {
	events := make(chan fsnotify.Event, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	events <- fsnotify.Event{Name: "src/app.js", Op: fsnotify.Chmod}

	var calls atomic.Int32
	seen := 0
	err := debounce(ctx, events, nil, 10*time.Millisecond, func(fsnotify.Event) { seen++ }, func() { calls.Add(1) }, func(error) {})
	require.NoError(t, err)
	assert.Zero(t, calls.Load())
	assert.Zero(t, seen)
}

func TestDebounceReportsWatcherErrors(t *testing.T) {
	errs := make(chan error, 1)
	errs <- errors.New("queue overflow")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got error
	err := debounce(ctx, make(chan fsnotify.Event), errs, time.Millisecond, func(fsnotify.Event) {}, func() {}, func(err error) {
		got = err
		cancel()
	})
	require.NoError(t, err)
	assert.EqualError(t, got, "queue overflow")
}

func TestDebounceStopsWhenEventsClose(t *testing.T) {
	events := make(chan fsnotify.Event)
	close(events)
	require.NoError(t, debounce(context.Background(), events, nil, time.Millisecond, func(fsnotify.Event) {}, func() {}, func(error) {}))
}

func TestDebouncePassesEventsToSeen(t *testing.T) {
	events := make(chan fsnotify.Event, 2)
	events <- fsnotify.Event{Name: "src/new", Op: fsnotify.Create}
	events <- fsnotify.Event{Name: "src/app.js", Op: fsnotify.Write}
	close(events)

	var got []string
	err := debounce(context.Background(), events, nil, time.Hour, func(ev fsnotify.Event) {
		got = append(got, ev.Name)
	}, func() {}, func(error) {})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/new", "src/app.js"}, got)
}

type recordingWatcher struct {
	added []string
}

func (w *recordingWatcher) Add(name string) error {
	w.added = append(w.added, name)
	return nil
}

func TestTrackAddsCreatedDirectories(t *testing.T) {
	fsys := filesystem.NewMem()
	for _, p := range []string{
		"/app/src/widgets/button/button.js",
		"/app/src/widgets/.tmp/x",
		"/app/src/.cache/y",
		"/app/src/main.js",
	} {
		require.NoError(t, fsys.WriteFile(p, ""))
	}
	c := &RunCommand{deps: Deps{FS: fsys}}

	w := &recordingWatcher{}
	require.NoError(t, c.track(w, fsnotify.Event{Name: "/app/src/widgets", Op: fsnotify.Create}))
	assert.Equal(t, []string{"/app/src/widgets", "/app/src/widgets/button"}, w.added)

	w = &recordingWatcher{}
	require.NoError(t, c.track(w, fsnotify.Event{Name: "/app/src/main.js", Op: fsnotify.Create}))
	require.NoError(t, c.track(w, fsnotify.Event{Name: "/app/src/.cache", Op: fsnotify.Create}))
	require.NoError(t, c.track(w, fsnotify.Event{Name: "/app/src/widgets", Op: fsnotify.Write}))
	assert.Empty(t, w.added)
}
