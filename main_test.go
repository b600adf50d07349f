package main

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/termlink/internal/display"
	"github.com/robalobadob/termlink/internal/game"
	"github.com/robalobadob/termlink/internal/store"
	"github.com/robalobadob/termlink/internal/words"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"TERMLINK_COMPANY", "WORDS_FILE", "DIFFICULTY", "POWERUPS", "SOUND", "DAILY", "SEED"} {
		t.Setenv(k, "")
	}
	cfg, err := loadConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Company != "RED ROCKET GARAGE" || cfg.Difficulty != 0 || !cfg.Powerups || cfg.Sound || cfg.Daily {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("TERMLINK_COMPANY", "VAULT-TEC")
	t.Setenv("DIFFICULTY", "2")
	t.Setenv("POWERUPS", "false")
	t.Setenv("SEED", "77")

	cfg, err := loadConfig([]string{"-difficulty", "3", "-once"}, io.Discard)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Company != "VAULT-TEC" || cfg.Difficulty != 3 || cfg.Powerups || cfg.Seed != 77 || !cfg.Once {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := loadConfig([]string{"-difficulty", "4"}, io.Discard); err == nil {
		t.Fatalf("expected out of range difficulty to fail")
	}
	if _, err := loadConfig([]string{"-nope"}, io.Discard); err == nil {
		t.Fatalf("expected unknown flag to fail")
	}
}

func TestNewRNGSeeded(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	a := newRNG(Config{Seed: 5}, now)
	b := newRNG(Config{Seed: 5}, now)
	c := newRNG(Config{Daily: true, DailySalt: "x"}, now)
	d := newRNG(Config{Daily: true, DailySalt: "x"}, now.Add(time.Hour))
	for i := 0; i < 10; i++ {
		if a.IntN(1<<20) != b.IntN(1<<20) {
			t.Fatalf("seeded sources diverged")
		}
		if c.IntN(1<<20) != d.IntN(1<<20) {
			t.Fatalf("daily sources diverged within one day")
		}
	}
}

func newTestSession(t *testing.T) (*session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	bank, err := words.LoadDefault()
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	return &session{
		cfg:   Config{Company: "TEST", Powerups: true},
		bank:  bank,
		rng:   rand.New(rand.NewPCG(1, 2)),
		term:  display.New(screen, "TEST", nil),
		store: store.NewMemoryStore(),
	}, screen
}

func TestPlayWinsOnPassword(t *testing.T) {
	s, screen := newTestSession(t)
	r, err := s.newRound()
	if err != nil {
		t.Fatalf("new round: %v", err)
	}
	run, _ := r.Board.Find(r.PasswordCell())
	r.Cursor.SetPosition(run.Start)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone) // rings, ignored
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.play(context.Background(), r)

	if r.State != game.StateWon {
		t.Fatalf("expected won, got %v", r.State)
	}
}

func TestLoopStopsOnAbort(t *testing.T) {
	s, screen := newTestSession(t)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := s.loop(context.Background()); err != nil {
		t.Fatalf("loop: %v", err)
	}
	tally, err := s.store.Tally(context.Background())
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if tally.Played != 1 || tally.Aborted != 1 {
		t.Fatalf("expected one aborted round, got %+v", tally)
	}
}

func TestLoopBadDifficultySurfacesError(t *testing.T) {
	s, _ := newTestSession(t)
	s.cfg.Difficulty = 9
	if err := s.loop(context.Background()); err == nil {
		t.Fatalf("expected setup error")
	}
}
