package storage_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/vibast-solutions/ms-go-tasks/app/storage"
)

func TestMemoryRegistry_GetMissingKey(t *testing.T) {
	registry := storage.NewMemoryRegistry()

	value, err := registry.Get(context.Background(), "17")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for missing key, got %q", value)
	}
}

func TestMemoryRegistry_SetOverwrites(t *testing.T) {
	registry := storage.NewMemoryRegistry()
	ctx := context.Background()

	if err := registry.Set(ctx, "17", "first-token"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := registry.Set(ctx, "17", "second-token"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := registry.Get(ctx, "17")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != "second-token" {
		t.Errorf("expected last write to win, got %q", value)
	}
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry := storage.NewMemoryRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("%d", n%5)
			_ = registry.Set(ctx, key, fmt.Sprintf("token-%d", n))
			_, _ = registry.Get(ctx, key)
		}(i)
	}
	wg.Wait()
}
