package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	finderv1 "github.com/pavel-marchuk/order-finder/gen/proto/finder/v1"
	"github.com/pavel-marchuk/order-finder/internal/common"
	"github.com/pavel-marchuk/order-finder/internal/export"
	"github.com/pavel-marchuk/order-finder/internal/orders"
	"github.com/pavel-marchuk/order-finder/internal/repository"
	"github.com/pavel-marchuk/order-finder/internal/server"
	"github.com/pavel-marchuk/order-finder/internal/telegram"
	"github.com/pavel-marchuk/order-finder/internal/webhook"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	zlog := logger.Sugar()
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, log)
	if err != nil {
		zlog.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		zlog.Fatalf("DB health failed: %v", err)
	}
	zlog.Infow("DB health OK")

	// Collaborators
	notifier := telegram.NewClient(cfg.Telegram.APIBase, cfg.Telegram.Token, cfg.Telegram.Timeout, log)
	repo := repository.NewWorkItemRepository(entc, log)
	ordersSvc := orders.NewService(repo, notifier, log)

	// Webhook HTTP server
	mux := http.NewServeMux()
	mux.Handle("/webhook", webhook.NewHandler(ordersSvc, notifier, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	exportSvc := export.NewService(repo, log)
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		data, err := exportSvc.ExportWorkItemsXLSX(r.Context(), 500)
		if err != nil {
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="work-items.xlsx"`)
		_, _ = w.Write(data)
	})
	httpServer := &http.Server{Addr: cfg.Server.HTTPAddr, Handler: mux}

	go func() {
		zlog.Infof("webhook serving on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalf("http serve: %v", err)
		}
	}()

	// gRPC ops server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	finderv1.RegisterFinderServiceServer(grpcServer, server.NewFinderService(ordersSvc, repo, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatalf("listen: %v", err)
	}
	go func() {
		zlog.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Warnf("http shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	zlog.Info("stopped.")
}
