package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-backdrop/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherDeliversReloadedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color_mode: primary-on-dark\n"), 0o644))

	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("color_mode: accent-on-light\n"), 0o644))

	select {
	case s := <-w.Changes():
		require.Equal(t, config.AccentOnLight, s.ColorMode)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	require.NoError(t, w.Close())
}

func TestWatcherIgnoresInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backdrop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color_mode: primary-on-dark\n"), 0o644))

	w, err := config.NewWatcher(path, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("color_mode: neon\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case s := <-w.Changes():
		t.Fatalf("unexpected reload: %+v", s)
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	require.NoError(t, w.Close())
}
