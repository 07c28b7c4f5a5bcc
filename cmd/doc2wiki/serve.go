package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/doc2wiki/internal/api"
	"github.com/dgallion1/doc2wiki/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [wiki]",
		Short: "Serve a converted wiki directory as HTML for preview.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if len(args) > 0 {
		cfg.Wiki = args[0]
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid configuration:", err)
		return err
	}
	log := newLogger(cfg, os.Stderr)

	if info, err := os.Stat(cfg.Wiki); err != nil || !info.IsDir() {
		err = fmt.Errorf("invalid path to wiki repository: '%s'", cfg.Wiki)
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewServer(cfg.Wiki, log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("serving wiki preview", "addr", cfg.Addr, "wiki", cfg.Wiki)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
