package glossary

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/starford/globelex/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_WriteTriggersOnChange(t *testing.T) {
	path := testutil.WriteDataset(t, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go Watch(ctx, path, quietLogger(), func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(path, []byte("v2"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return calls.Load() > 0
	}, "write did not trigger onChange")
}

func TestWatcher_BurstIsDebounced(t *testing.T) {
	path := testutil.WriteDataset(t, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go Watch(ctx, path, quietLogger(), func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		_ = os.WriteFile(path, []byte{byte('a' + i)}, 0o644)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return calls.Load() > 0
	}, "burst did not trigger onChange")
	time.Sleep(2 * reloadDebounce)
	if n := calls.Load(); n != 1 {
		t.Errorf("onChange calls = %d, want 1", n)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path := testutil.WriteDataset(t, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go Watch(ctx, path, quietLogger(), func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(filepath.Dir(path), "notes.txt"), []byte("x"), 0o644)
	time.Sleep(3 * reloadDebounce)
	if n := calls.Load(); n != 0 {
		t.Errorf("onChange calls = %d, want 0", n)
	}
}

func TestWatcher_RenameOverReloads(t *testing.T) {
	path := testutil.WriteDataset(t, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go Watch(ctx, path, quietLogger(), func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	tmp := filepath.Join(filepath.Dir(path), ".globeLexicon.tmp")
	_ = os.WriteFile(tmp, []byte("v2"), 0o644)
	_ = os.Rename(tmp, path)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return calls.Load() > 0
	}, "rename over dataset did not trigger onChange")
}
