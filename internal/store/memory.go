// internal/store/memory.go
//
// In-memory record of finished rounds for the current session.
// Feeds the win/loss tally shown in the terminal header.
//
// Characteristics:
//   - Results are keyed by round ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.
//   - Errors are returned for missing round IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/termlink/internal/game"
)

var ErrNotFound = errors.New("store: round not found")

// Result summarizes one finished round.
type Result struct {
	RoundID  string
	Password string
	State    game.State
	Guesses  int
	Attempts int // attempts left when the round ended
	Aborted  bool
	Finished time.Time
}

// ResultFrom summarizes r as it stands now.
func ResultFrom(r *game.Round) Result {
	return Result{
		RoundID:  r.ID,
		Password: r.Password(),
		State:    r.State,
		Guesses:  r.Guesses,
		Attempts: r.Attempts,
		Aborted:  r.Exit && !r.State.Terminal(),
		Finished: time.Now().UTC(),
	}
}

// Tally counts session outcomes.
type Tally struct {
	Played  int
	Won     int
	Lost    int
	Aborted int
	Streak  int // consecutive wins ending with the latest round
}

// Store defines the session record interface.
type Store interface {
	// Save records or replaces a round result.
	Save(ctx context.Context, res Result) error

	// Get retrieves a result by round ID.
	// Returns ErrNotFound if the round was never saved.
	Get(ctx context.Context, id string) (Result, error)

	// Tally summarizes every saved result.
	Tally(ctx context.Context) (Tally, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards results and order
	results map[string]Result // keyed by Result.RoundID
	order   []string          // round IDs in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{results: make(map[string]Result)}
}

func (m *memory) Save(ctx context.Context, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.results[res.RoundID]; !ok {
		m.order = append(m.order, res.RoundID)
	}
	m.results[res.RoundID] = res
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if res, ok := m.results[id]; ok {
		return res, nil
	}
	return Result{}, ErrNotFound
}

func (m *memory) Tally(ctx context.Context) (Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var t Tally
	for _, id := range m.order {
		res := m.results[id]
		t.Played++
		switch {
		case res.State == game.StateWon:
			t.Won++
			t.Streak++
		case res.State == game.StateLost:
			t.Lost++
			t.Streak = 0
		default:
			t.Aborted++
			t.Streak = 0
		}
	}
	return t, nil
}
