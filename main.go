package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/termlink/internal/daily"
	"github.com/robalobadob/termlink/internal/display"
	"github.com/robalobadob/termlink/internal/game"
	"github.com/robalobadob/termlink/internal/sound"
	"github.com/robalobadob/termlink/internal/store"
	"github.com/robalobadob/termlink/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	bank, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if cfg.WordCheck {
		if err := bank.Dump(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("dump word list")
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal().Msg("termlink needs an interactive terminal")
	}

	if err := run(cfg, bank, newRNG(cfg, time.Now())); err != nil {
		log.Fatal().Err(err).Msg("session ended with error")
	}
}

// setupLogging applies LOG_LEVEL and routes logs to LOG_FILE when set,
// otherwise to a console writer on stderr. The returned file, if any, must be
// closed by the caller.
func setupLogging(cfg Config) (io.Closer, error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

func loadWords(cfg Config) (*words.Bank, error) {
	if cfg.WordFile != "" {
		return words.LoadFile(cfg.WordFile)
	}
	return words.LoadDefault()
}

// newRNG returns the session's single random source: today's board in daily
// mode, a fixed board for an explicit seed, otherwise a fresh random one.
func newRNG(cfg Config, now time.Time) *rand.Rand {
	switch {
	case cfg.Daily:
		log.Info().Str("date", daily.DateKey(now)).Msg("daily board")
		return daily.Source(now, cfg.DailySalt)
	case cfg.Seed != 0:
		return seededRNG(cfg.Seed)
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func seededRNG(seed int64) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}

// run owns the terminal for the whole session.
func run(cfg Config, bank *words.Bank, rng *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// console logs would draw over the screen
	if cfg.LogFile == "" {
		prev := log.Logger
		log.Logger = zerolog.Nop()
		defer func() { log.Logger = prev }()
	}

	player := &sound.Player{}
	if cfg.Sound {
		if err := player.Init(); err != nil {
			// non-fatal, the terminal bell still works
			log.Warn().Err(err).Msg("audio initialization failed")
		}
		defer player.Close()
	}

	s := &session{
		cfg:   cfg,
		bank:  bank,
		rng:   rng,
		term:  display.New(screen, cfg.Company, player),
		store: store.NewMemoryStore(),
	}
	return s.loop(context.Background())
}

// session drives rounds until the player quits.
type session struct {
	cfg   Config
	bank  *words.Bank
	rng   *rand.Rand
	term  *display.Terminal
	store store.Store
}

func (s *session) roundConfig() game.Config {
	gc := game.DefaultConfig()
	gc.Powerups = s.cfg.Powerups
	return gc
}

func (s *session) loop(ctx context.Context) error {
	for {
		r, err := s.newRound()
		if err != nil {
			return err
		}
		s.play(ctx, r)

		res := store.ResultFrom(r)
		if err := s.store.Save(ctx, res); err != nil {
			log.Warn().Err(err).Str("round", r.ID).Msg("save result")
		}
		log.Info().
			Str("round", r.ID).
			Str("state", r.State.String()).
			Int("guesses", r.Guesses).
			Bool("aborted", res.Aborted).
			Msg("round finished")

		if res.Aborted || s.cfg.Once {
			return nil
		}
		if !s.term.AskReplay(s.roundConfig().Geometry) {
			return nil
		}
	}
}

func (s *session) newRound() (*game.Round, error) {
	set, err := s.bank.SelectTier(s.cfg.Difficulty, s.rng)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}
	r, err := game.NewRound(s.roundConfig(), set, s.rng)
	if err != nil {
		return nil, fmt.Errorf("set up round: %w", err)
	}
	log.Info().
		Str("round", r.ID).
		Int("length", len(r.Words[0])).
		Int("words", len(r.Words)).
		Int("duds", r.Duds).
		Msg("round started")
	return r, nil
}

// play processes one intent at a time until the round exits, redrawing after each.
func (s *session) play(ctx context.Context, r *game.Round) {
	tally := s.tally(ctx)
	s.term.Draw(r.Snapshot(), tally)
	for !r.Exit {
		in, ok := s.term.Poll()
		if !ok {
			s.term.Ring()
			continue
		}
		if in != game.IntentNone && !r.Apply(in) {
			s.term.Ring()
		}
		log.Debug().Str("round", r.ID).Stringer("intent", in).Int("cursor", r.Cursor.Position()).Msg("intent")
		s.term.Draw(r.Snapshot(), tally)
	}
	if r.State == game.StateWon {
		s.term.Celebrate()
	}
}

func (s *session) tally(ctx context.Context) store.Tally {
	t, err := s.store.Tally(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session tally")
	}
	return t
}
