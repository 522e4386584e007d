// Package main запускает HTTP-сервер панели реселлера AccountBot.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/accountbot/internal/config"
	"github.com/mmeshcher/accountbot/internal/generator"
	"github.com/mmeshcher/accountbot/internal/genai"
	"github.com/mmeshcher/accountbot/internal/handler"
	"github.com/mmeshcher/accountbot/internal/metrics"
	"github.com/mmeshcher/accountbot/internal/middleware"
	"github.com/mmeshcher/accountbot/internal/repository"
	"github.com/mmeshcher/accountbot/internal/service"
)

const sessionSweepInterval = 10 * time.Minute

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	users, err := newUserDirectory(cfg)
	if err != nil {
		sugar.Fatalw("user directory initialization error", "error", err.Error())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var (
		source generator.CredentialSource
		chat   service.ChatClient
	)
	if cfg.GeminiAPIKey != "" {
		client := genai.NewClient(cfg.GenAIBaseURL, cfg.GeminiAPIKey, cfg.GenAIModel)
		source = client
		chat = client
	} else {
		sugar.Warn("GEMINI_API_KEY is not set, accounts are synthesized locally and support chat is offline")
	}

	gen := generator.New(source, logger, m)

	svc := service.NewService(users, gen, chat, logger, m, service.Options{
		AuthDelay:    cfg.AuthDelay,
		PaymentDelay: cfg.PaymentDelay,
	})
	defer func() {
		if err := svc.Close(); err != nil {
			sugar.Errorw("service close error", "error", err)
		}
	}()

	if cfg.SessionSecret == "" {
		sugar.Warn("SESSION_SECRET is not set, sessions will not survive a restart")
	}
	authMiddleware := middleware.NewAuthMiddleware(cfg.SessionSecret)
	h := handler.NewHandler(svc, logger, authMiddleware, m, reg)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting accountbot server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		svc.RunSweeper(ctx, sessionSweepInterval)
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

// newUserDirectory выбирает справочник пользователей: PostgreSQL, если задан
// DATABASE_URI, иначе таблицу в памяти.
func newUserDirectory(cfg *config.Config) (service.UserDirectory, error) {
	if cfg.DatabaseURI == "" {
		return repository.NewStaticDirectory(repository.DefaultUsers(), repository.FixedPassword), nil
	}

	dir, err := repository.NewPostgresDirectory(cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dir.Seed(ctx, repository.DefaultUsers(), repository.FixedPassword); err != nil {
		dir.Close()
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return dir, nil
}
