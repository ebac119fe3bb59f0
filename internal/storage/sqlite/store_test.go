package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/leterax/portfolio/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "portfolio.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	// Reopening the same file keeps the schema
	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer again.Close()
}

func TestAddAndListSubscribers(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	for _, email := range []string{"ada@example.com", "grace@example.org"} {
		if err := store.AddSubscriber(ctx, email); err != nil {
			t.Fatalf("add %s: %v", email, err)
		}
	}

	subs, err := store.ListSubscribers(ctx)
	if err != nil {
		t.Fatalf("list subscribers: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("subscribers = %d, want 2", len(subs))
	}
	if subs[0].Email != "ada@example.com" || subs[1].Email != "grace@example.org" {
		t.Fatalf("subscribers = %+v, want insertion order", subs)
	}
	if subs[0].ID >= subs[1].ID {
		t.Fatalf("ids = %d, %d, want increasing", subs[0].ID, subs[1].ID)
	}
	if !subs[0].CreatedAt.Equal(fixed) {
		t.Fatalf("CreatedAt = %v, want %v", subs[0].CreatedAt, fixed)
	}
}

func TestAddSubscriberDuplicate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.AddSubscriber(ctx, "ada@example.com"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := store.AddSubscriber(ctx, "ada@example.com")
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate add error = %v, want ErrAlreadyExists", err)
	}

	subs, err := store.ListSubscribers(ctx)
	if err != nil {
		t.Fatalf("list subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("subscribers = %d, want 1", len(subs))
	}
}

func TestAddSubscriberValidation(t *testing.T) {
	store := openTestStore(t)

	if err := store.AddSubscriber(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty email")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.AddSubscriber(ctx, "ada@example.com"); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled add error = %v, want context.Canceled", err)
	}
	if _, err := store.ListSubscribers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled list error = %v, want context.Canceled", err)
	}
}

func TestNilStore(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("Close() on nil store = %v", err)
	}
	if err := store.AddSubscriber(context.Background(), "ada@example.com"); err == nil {
		t.Fatal("expected error from nil store")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if isUniqueViolation(nil) {
		t.Fatal("nil error is not a unique violation")
	}
	if !isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: emails.email (2067)")) {
		t.Fatal("expected message fallback to detect unique violation")
	}
	if isUniqueViolation(errors.New("disk I/O error")) {
		t.Fatal("unexpected unique violation")
	}
}
