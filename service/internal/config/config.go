// Package config loads session settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jason-s-yu/minicheckers/engine"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys read by Load.
const (
	EnvDifficulty  = "MINICHECKERS_DIFFICULTY"
	EnvCutoffDepth = "MINICHECKERS_CUTOFF_DEPTH"
	EnvFirstMover  = "MINICHECKERS_FIRST"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
)

// Config holds everything needed to start a session and its logger.
type Config struct {
	Difficulty  engine.Difficulty
	CutoffDepth int
	FirstMover  engine.Side
	LogLevel    logrus.Level
	LogFormat   string // "text" or "json"
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	r := engine.DefaultRules()
	return Config{
		Difficulty:  r.Difficulty,
		CutoffDepth: r.CutoffDepth,
		FirstMover:  r.FirstMover,
		LogLevel:    logrus.InfoLevel,
		LogFormat:   "text",
	}
}

// Load reads the given .env files (or ./.env if none are given and it exists)
// and overlays the process environment, which always wins. The process
// environment itself is never modified.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}
	fileVals := map[string]string{}
	if len(files) > 0 {
		vals, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("read env files: %w", err)
		}
		fileVals = vals
	}
	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}

	cfg := Default()
	if v := get(EnvDifficulty); v != "" {
		d, err := engine.ParseDifficulty(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		cfg.Difficulty = d
	}
	if v := get(EnvCutoffDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s: want a positive integer, got %q", EnvCutoffDepth, v)
		}
		cfg.CutoffDepth = n
	}
	if v := get(EnvFirstMover); v != "" {
		s, err := ParseFirstMover(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFirstMover, err)
		}
		cfg.FirstMover = s
	}
	if v := get(EnvLogLevel); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v := get(EnvLogFormat); v != "" {
		switch f := strings.ToLower(v); f {
		case "text", "json":
			cfg.LogFormat = f
		default:
			return Config{}, fmt.Errorf("%s: unknown format %q", EnvLogFormat, v)
		}
	}
	return cfg, nil
}

// ParseFirstMover maps "human"/"opponent" and "machine"/"computer" to a side.
func ParseFirstMover(s string) (engine.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "opponent":
		return engine.Opponent, nil
	case "machine", "computer":
		return engine.Machine, nil
	}
	return engine.Opponent, fmt.Errorf("unknown first mover %q", s)
}

// Rules returns the engine rules described by c.
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		Difficulty:  c.Difficulty,
		CutoffDepth: c.CutoffDepth,
		FirstMover:  c.FirstMover,
	}
}

// NewLogger builds a logrus logger writing to w with c's level and format.
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
