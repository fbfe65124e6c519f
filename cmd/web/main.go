package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/cribbage/config"
	"github.com/minaorangina/cribbage/server"
	"github.com/minaorangina/cribbage/table"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := table.TableOpts{Logger: logger}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	tbl := table.New(opts)

	s := server.NewServer(server.ServerOpts{
		Addr:           cfg.Addr,
		Table:          tbl,
		Logger:         logger,
		AccessLog:      os.Stdout,
		AllowedOrigins: cfg.Origins(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Shutdown(shutdownCtx)
		s.Close()
	}()

	logger.Info("listening", "addr", cfg.Addr, "table", tbl.ID)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
