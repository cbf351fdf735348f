package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hustleworks/nashville-hustle/internal/config"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/internal/logger"
	"github.com/hustleworks/nashville-hustle/internal/storage"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
	"github.com/hustleworks/nashville-hustle/pkg/game"
	"github.com/hustleworks/nashville-hustle/pkg/leaderboard"
)

const logFileName = "hustle.log"

func main() {
	if err := catalog.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Corrupt domain tables: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()

	// The terminal belongs to the UI, so logs go to a file. Losing them is
	// acceptable; losing the screen is not.
	logOut := io.Writer(io.Discard)
	if f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		logOut = f
		defer func() {
			_ = f.Close() // Ignore error in defer
		}()
	}
	log := logger.Setup(cfg, logOut)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store := openStore(cfg, log)
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	g := game.New(log, rng)

	p := tea.NewProgram(NewUI(g, store, bellPlayer{}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openStore connects to Redis for the high-score list, falling back to the
// in-memory store when it is unreachable. The leaderboard is best-effort;
// the game never refuses to start over it.
func openStore(cfg *config.Config, log *slog.Logger) leaderboard.Store {
	rs := storage.NewRedisStore(cfg.RedisAddr, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rs.Ping(ctx); err != nil {
		log.Warn("redis unavailable, high scores will not persist", "addr", cfg.RedisAddr, "error", err)
		_ = rs.Close()
		return leaderboard.NewMockStore()
	}
	log.Info("leaderboard store connected", "addr", cfg.RedisAddr)
	return rs
}

// bellPlayer maps cues onto the one effect a terminal reliably has.
type bellPlayer struct{}

var _ cue.Player = bellPlayer{}

func (bellPlayer) Play(c cue.Cue) {
	switch c {
	case cue.Siren, cue.Cash, cue.Success:
		fmt.Print("\a")
	}
}
