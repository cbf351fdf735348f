package leaderboard

import (
	"context"
	"sync"
)

// MockStore is an in-memory Store for tests and for playing without Redis.
type MockStore struct {
	mu        sync.RWMutex
	scores    []HighScore
	pingError error
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStore) Load(ctx context.Context) ([]HighScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]HighScore, len(m.scores))
	copy(out, m.scores)
	return out, nil
}

func (m *MockStore) Save(ctx context.Context, scores []HighScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = Trim(scores)
	return nil
}

func (m *MockStore) Close() error {
	return nil
}
