package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xvierd/vessel-cli/internal/domain"
)

func TestNewMemory(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	if storage == nil {
		t.Error("NewMemory() returned nil storage")
	}
}

func TestSettings_SetAndGet(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := storage.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrSettingNotFound) {
			t.Errorf("Get() error = %v, want ErrSettingNotFound", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := storage.Set(ctx, domain.KeyTheme, "plant"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := storage.Get(ctx, domain.KeyTheme)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "plant" {
			t.Errorf("Get() = %q, want plant", got)
		}
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		if err := storage.Set(ctx, domain.KeyTheme, "water"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, _ := storage.Get(ctx, domain.KeyTheme)
		if got != "water" {
			t.Errorf("Get() = %q, want water", got)
		}
	})

	t.Run("all", func(t *testing.T) {
		if err := storage.Set(ctx, domain.KeyFocusMinutes, "40"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		all, err := storage.All(ctx)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(all) != 2 || all[domain.KeyFocusMinutes] != "40" || all[domain.KeyTheme] != "water" {
			t.Errorf("All() = %v", all)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := storage.Delete(ctx, domain.KeyTheme); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if err := storage.Delete(ctx, domain.KeyTheme); err != nil {
			t.Errorf("Delete() of missing key error = %v", err)
		}
		if _, err := storage.Get(ctx, domain.KeyTheme); !errors.Is(err, domain.ErrSettingNotFound) {
			t.Errorf("Get() after delete error = %v", err)
		}
	})
}

func TestSettings_PersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vessel.db")
	ctx := context.Background()

	first, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := first.Set(ctx, domain.KeyBreakMinutes, "10"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = second.Close() }()

	got, err := second.Get(ctx, domain.KeyBreakMinutes)
	if err != nil || got != "10" {
		t.Errorf("Get() = %q, %v; want 10", got, err)
	}
}
