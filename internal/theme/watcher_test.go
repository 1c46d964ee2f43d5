package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	fired := make(chan struct{}, 8)
	w.SetChangeCallback(func() { fired <- struct{}{} })

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsRunning())

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire")
	}

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
	assert.NoError(t, w.Stop(), "stopping twice is a no-op")
}

func TestWatcher_StopsWithContext(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "theme.toml"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	done := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := NewWatcher("/nonexistent/dir/theme.toml", nil)
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	assert.False(t, w.IsRunning())
}
