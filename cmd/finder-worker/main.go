package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/sheets"
	"github.com/pavel-marchuk/order-finder/internal/telegram"
	"github.com/pavel-marchuk/order-finder/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("config invalid", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, log)
	if err != nil {
		log.Error("opening DB failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		log.Error("DB health failed", "error", err)
		os.Exit(1)
	}

	source := sheets.NewExcelSource(cfg.Sheet.Path, log)
	lookup := sheets.NewLookup(source, sheets.Config{
		SearchSheet:  cfg.Sheet.SearchSheet,
		AnswerSheet:  cfg.Sheet.AnswerSheet,
		TemplatesTTL: cfg.Worker.TemplatesTTL,
		AnswersTTL:   cfg.Worker.AnswersTTL,
		OrdersTTL:    cfg.Worker.OrdersTTL,
	}, log)
	notifier := telegram.NewClient(cfg.Telegram.APIBase, cfg.Telegram.Token, cfg.Telegram.Timeout, log)
	repo := repository.NewWorkItemRepository(entc, log)

	w := worker.New(repo, lookup, notifier, cfg.Worker.PollInterval, log)
	log.Info("worker starting", "poll_interval", cfg.Worker.PollInterval.String())

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("worker stopped", "error", err)
		os.Exit(1)
	}
	log.Info("worker stopped")
}
