// internal/game/engine.go
//
// Round engine for a single puzzle session.
// Responsibilities:
//   - Build a round: scramble the buffer, hide words, scan for duds and pick
//     the password.
//   - Route player intents to the cursor or to guess evaluation.
//   - Score word guesses by positional likeness and apply dud side effects.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Randomness comes from the *rand.Rand handed to NewRound so a seeded
//     source reproduces a board exactly.
//   - The engine never ends the process; Exit only tells the caller the round
//     is over (win, loss or abort).
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultSpan        = 12
	DefaultLimit       = 17
	DefaultMaxAttempts = 4
	DefaultResetOdds   = 20
)

var ErrBadConfig = errors.New("game: invalid round config")

// Config describes a round's board and rules.
type Config struct {
	Geometry    Geometry
	MaxWords    int
	MaxAttempts int
	// Powerups enables dud scanning. Without it no duds ever appear.
	Powerups bool
	// ResetOdds is N in the 1-in-N chance that picking a dud replenishes
	// attempts instead of removing a decoy.
	ResetOdds int
	Brackets  Brackets
}

// DefaultConfig returns the classic two 12x17 panels, nine words and four attempts.
func DefaultConfig() Config {
	return Config{
		Geometry:    Geometry{Span: DefaultSpan, Limit: DefaultLimit},
		MaxWords:    DefaultMaxWords,
		MaxAttempts: DefaultMaxAttempts,
		Powerups:    true,
		ResetOdds:   DefaultResetOdds,
		Brackets:    DefaultBrackets,
	}
}

func (c Config) validate() error {
	switch {
	case !c.Geometry.Valid():
		return fmt.Errorf("%w: geometry %dx%d", ErrBadConfig, c.Geometry.Span, c.Geometry.Limit)
	case c.MaxWords <= 0:
		return fmt.Errorf("%w: max words %d", ErrBadConfig, c.MaxWords)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: max attempts %d", ErrBadConfig, c.MaxAttempts)
	case c.Powerups && c.ResetOdds <= 0:
		return fmt.Errorf("%w: reset odds %d", ErrBadConfig, c.ResetOdds)
	}
	return nil
}

// Round owns the board, cursor and turn state of one play session.
type Round struct {
	ID       string
	Board    *Board
	Cursor   *Cursor
	Words    []string // placed words; Words[i] carries WordCell(i+1)
	Attempts int
	State    State
	Exit     bool
	Duds     int // duds found at round start
	Guesses  int // word guesses submitted

	cfg      Config
	rng      *rand.Rand
	password int
	address  int
	history  []string
}

// NewRound builds a round from a word set of equal-length words.
func NewRound(cfg Config, words []string, rng *rand.Rand) (*Round, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	board := NewBoard(cfg.Geometry)
	board.Scramble(rng)
	placed, err := Place(board, words, cfg.MaxWords, rng)
	if err != nil {
		return nil, err
	}

	r := &Round{
		ID:       randomID(),
		Board:    board,
		Cursor:   NewCursor(cfg.Geometry),
		Words:    placed,
		Attempts: cfg.MaxAttempts,
		State:    StatePlaying,
		cfg:      cfg,
		rng:      rng,
		password: rng.IntN(len(placed)),
		address:  randomAddress(rng),
	}
	if cfg.Powerups {
		brackets := cfg.Brackets
		if brackets == nil {
			brackets = DefaultBrackets
		}
		r.Duds = ScanDuds(board, brackets)
	}
	return r, nil
}

// Password returns the secret word.
func (r *Round) Password() string { return r.Words[r.password] }

// PasswordCell returns the tag carried by the password's cells.
func (r *Round) PasswordCell() Cell { return WordCell(r.password + 1) }

// MaxAttempts returns the per-round attempt allowance.
func (r *Round) MaxAttempts() int { return r.cfg.MaxAttempts }

// Status returns the most recent status line, or "" before any action.
func (r *Round) Status() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// History returns the retained status lines, oldest first.
func (r *Round) History() []string {
	return append([]string(nil), r.history...)
}

// Apply processes one intent. It returns false when the intent had no
// effect (blocked move, submit on plain filler, or a finished round), which
// callers signal with a bell.
func (r *Round) Apply(in Intent) bool {
	switch in {
	case MoveUp:
		return r.Cursor.AdvanceUp()
	case MoveDown:
		return r.Cursor.AdvanceDown()
	case MoveLeft:
		return r.Cursor.AdvanceLeft()
	case MoveRight:
		return r.Cursor.AdvanceRight()
	case Submit:
		return r.submit()
	case Abort:
		r.Exit = true
		return true
	}
	return false
}

func (r *Round) submit() bool {
	if r.State.Terminal() {
		return false
	}
	pos := r.Cursor.Position()
	run, ok := r.Board.Run(pos)
	if !ok {
		return false
	}
	switch r.Board.Cells[pos].Kind {
	case KindWord:
		r.guessWord(run)
	case KindDud:
		r.pickDud(run)
	}
	return true
}

// guessWord compares the run text against the password. A miss turns the
// word into inert filler and costs one attempt.
func (r *Round) guessWord(run Range) {
	guess := string(r.Board.Text[run.Start:run.End])
	r.Guesses++
	r.note(">" + guess)

	if guess == r.Password() {
		r.State = StateWon
		r.Exit = true
		r.note(">Exact match!", ">Please wait", ">while system", ">is accessed.")
		return
	}

	r.Board.Tag(run, plainCell)
	r.Attempts--
	r.note(">Entry denied.", fmt.Sprintf(">Likeness=%d", Likeness(guess, r.Password())))
	if r.Attempts <= 0 {
		r.Attempts = 0
		r.State = StateLost
		r.Exit = true
		r.note(">Lockout in", ">progress.")
	}
}

// pickDud removes the dud and either replenishes attempts or removes one
// remaining decoy word. The password is never removed.
func (r *Round) pickDud(run Range) {
	r.note(">" + string(r.Board.Text[run.Start:run.End]))
	r.Board.Blank(run)

	if r.rng.IntN(r.cfg.ResetOdds) == 0 {
		r.replenish()
		return
	}
	decoys := lo.Filter(r.Board.Present(KindWord), func(c Cell, _ int) bool {
		return c != r.PasswordCell()
	})
	if len(decoys) == 0 {
		r.replenish()
		return
	}
	victim, _ := r.Board.Find(decoys[r.rng.IntN(len(decoys))])
	r.Board.Blank(victim)
	r.note(">Dud removed.")
}

func (r *Round) replenish() {
	r.Attempts = r.cfg.MaxAttempts
	r.note(">Allowance", ">replenished.")
}

// note appends status lines, keeping at most one panel height of history.
func (r *Round) note(lines ...string) {
	r.history = append(r.history, lines...)
	if keep := r.cfg.Geometry.Limit; len(r.history) > keep {
		r.history = r.history[len(r.history)-keep:]
	}
}

// Likeness counts positions where a and b hold the same character,
// comparing up to the shorter length.
func Likeness(a, b string) int {
	n := min(len(a), len(b))
	like := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			like++
		}
	}
	return like
}

// randomAddress returns a 16-bit base address whose last nibble is 0 or 8.
func randomAddress(rng *rand.Rand) int {
	addr := 0
	for i := 0; i < 4; i++ {
		addr <<= 4
		if i == 3 {
			addr |= rng.IntN(2) * 8
		} else {
			addr |= rng.IntN(0xF)
		}
	}
	return addr
}

// randomID returns a unique round identifier.
func randomID() string {
	return uuid.NewString()
}
