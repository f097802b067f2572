package content

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/omegapc/omegacms/internal/backend"
	"github.com/omegapc/omegacms/internal/models"
	"github.com/omegapc/omegacms/internal/store"
)

func TestWatchRefreshesOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}

	cache := NewCache(backend.NewLocal(fs, "", 0), nil, nil)
	cache.Refresh(context.Background())
	if len(cache.Services()) != 12 {
		t.Fatalf("seed services = %d", len(cache.Services()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = Watch(ctx, cache, fs.Root(), slog.Default())
		close(done)
	}()

	// Give the watcher a moment to register, then rewrite the slot from a
	// second store handle, as another process would.
	time.Sleep(100 * time.Millisecond)
	other, err := store.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	external := []models.ServiceItem{{ID: "only-one", Title: "External edit"}}
	if err := store.Save(other, store.KeyServices, external); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if got := cache.Services(); len(got) == 1 && got[0].ID == "only-one" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("cache never picked up external write: %d services", len(cache.Services()))
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
