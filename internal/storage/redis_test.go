package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/hustleworks/nashville-hustle/pkg/leaderboard"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store := NewRedisStore(mr.Addr(), logger)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return store, mr
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	scores := []leaderboard.HighScore{
		{Name: "Bartender", Score: 4500, Date: "2026-08-01"},
		{Name: "Mechanic", Score: 12000, Date: "2026-08-02"},
	}
	if err := store.Save(ctx, scores); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d scores, want 2", len(loaded))
	}
	if loaded[0].Name != "Mechanic" || loaded[0].Score != 12000 {
		t.Errorf("top score = %+v, want Mechanic/12000", loaded[0])
	}
}

func TestRedisStore_SaveTruncatesToTopTen(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	var scores []leaderboard.HighScore
	for i := 0; i < 25; i++ {
		scores = append(scores, leaderboard.HighScore{Name: "Run", Score: i})
	}
	if err := store.Save(ctx, scores); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != leaderboard.MaxEntries {
		t.Errorf("loaded %d scores, want %d", len(loaded), leaderboard.MaxEntries)
	}
	if loaded[0].Score != 24 {
		t.Errorf("top score = %d, want 24", loaded[0].Score)
	}
}

func TestRedisStore_MissingKeyIsEmpty(t *testing.T) {
	store, _ := setupTestRedis(t)

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty list, got %+v", loaded)
	}
}

// Corrupt payloads are a fact of life for best-effort local storage; they
// must read back as an empty list, never an error.
func TestRedisStore_MalformedDataIsEmpty(t *testing.T) {
	store, mr := setupTestRedis(t)

	mr.Set("hustle:highscores", "{definitely not json")

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load with corrupt data: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty list, got %+v", loaded)
	}
}
