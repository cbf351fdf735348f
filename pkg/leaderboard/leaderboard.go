// Package leaderboard holds the local best-effort high-score list: the top
// ten runs by score, persisted under a single key. Storage is best-effort
// by contract; missing or corrupt data reads back as an empty list.
package leaderboard

import (
	"context"
	"sort"
	"time"
)

// MaxEntries is the number of scores kept.
const MaxEntries = 10

// HighScore is one finished run.
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// NewHighScore records a run finished today.
func NewHighScore(name string, score int) HighScore {
	return HighScore{
		Name:  name,
		Score: score,
		Date:  time.Now().Format("2006-01-02"),
	}
}

// Store persists the high-score list.
type Store interface {
	// Ping checks the backing store is reachable.
	Ping(ctx context.Context) error
	// Load returns the list sorted descending by score. Missing or
	// malformed data yields an empty list, not an error.
	Load(ctx context.Context) ([]HighScore, error)
	// Save replaces the list. Implementations sort and truncate to
	// MaxEntries before writing.
	Save(ctx context.Context, scores []HighScore) error
	Close() error
}

// Trim sorts descending by score and truncates to MaxEntries.
func Trim(scores []HighScore) []HighScore {
	out := make([]HighScore, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
