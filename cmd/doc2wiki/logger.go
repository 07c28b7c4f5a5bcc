package main

import (
	"io"
	"log/slog"

	"github.com/dgallion1/doc2wiki/internal/config"
)

// newLogger builds the process logger from validated configuration.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
