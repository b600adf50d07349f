// config.go
//
// Runtime configuration.
// Values come from the environment (optionally via a .env file loaded in
// main) and may be overridden on the command line.
//
// Environment variables:
//   TERMLINK_COMPANY  company name in the header (default RED ROCKET GARAGE)
//   WORDS_FILE        word list; the embedded dictionary is used when unset
//   DIFFICULTY        0 = random tier per round, 1..3 = easy/medium/hard
//   POWERUPS          enable duds (default true)
//   SOUND             play tones through the speaker (default false)
//   DAILY             seed the board from today's date (default false)
//   DAILY_SALT        salt mixed into the daily seed
//   SEED              fixed seed for reproducible boards (0 = random)
//   LOG_LEVEL         zerolog level (default info)
//   LOG_FILE          log destination while the UI owns the terminal

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Config holds the resolved runtime options.
type Config struct {
	Company    string
	WordFile   string
	WordCheck  bool
	Difficulty int
	Powerups   bool
	Sound      bool
	Daily      bool
	DailySalt  string
	Seed       int64
	Once       bool
	LogLevel   string
	LogFile    string
}

// loadConfig reads the environment and then applies command-line overrides.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{
		Company:    getEnv("TERMLINK_COMPANY", "RED ROCKET GARAGE"),
		WordFile:   getEnv("WORDS_FILE", ""),
		Difficulty: getEnvInt("DIFFICULTY", 0),
		Powerups:   getEnvBool("POWERUPS", true),
		Sound:      getEnvBool("SOUND", false),
		Daily:      getEnvBool("DAILY", false),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		Seed:       int64(getEnvInt("SEED", 0)),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
	}

	fs := flag.NewFlagSet("termlink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "termlink - terminal password hacking mini-game.\n\nUsage of termlink:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Company, "company", cfg.Company, "company name shown in the terminal header")
	fs.StringVar(&cfg.WordFile, "wordfile", cfg.WordFile, "word file (whitespace separated words)")
	fs.BoolVar(&cfg.WordCheck, "wordcheck", false, "load the word file, display its contents and exit")
	fs.BoolVar(&cfg.Powerups, "boosts", cfg.Powerups, "include duds (attempt reset / decoy removal)")
	fs.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty: 0 = random, 1 = easy, 2 = medium, 3 = hard")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play feedback tones through the speaker")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play today's board")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "fixed random seed (0 = random)")
	fs.BoolVar(&cfg.Once, "once", false, "play a single round without the replay prompt")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Difficulty < 0 || cfg.Difficulty > 3 {
		return Config{}, fmt.Errorf("difficulty must be between 0 and 3, got %d", cfg.Difficulty)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(getEnv(k, "")); err == nil {
		return n
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if b, err := strconv.ParseBool(getEnv(k, "")); err == nil {
		return b
	}
	return def
}
