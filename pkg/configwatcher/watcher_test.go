package configwatcher

import (
	"context"
	"fmt"
	"olympus_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
server:
  mode: debug
database:
  driver: sqlite
  dsn: ":memory:"
storage:
  type: minio
log:
  level: %s
`

func writeConfig(t *testing.T, dir, level string) {
	t.Helper()
	body := []byte(fmt.Sprintf(baseConfig, level))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o644))
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "info")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, dir, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, dir, "warn")
	// writes to other files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "warn", cfg.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
