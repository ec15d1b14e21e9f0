package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DhavalSuthar-24/livescore/config"
	"github.com/DhavalSuthar-24/livescore/internal/external"
	"github.com/DhavalSuthar-24/livescore/internal/metrics"
	"github.com/DhavalSuthar-24/livescore/internal/notification"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/internal/search"
	"github.com/DhavalSuthar-24/livescore/pkg/logger"
	"github.com/DhavalSuthar-24/livescore/routes"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	hubConfig := realtime.DefaultConfig()
	hubConfig.SendBuffer = cfg.Realtime.SendBuffer
	hubConfig.AllowedOrigins = cfg.Realtime.AllowedOrigins
	hub := realtime.NewHub(hubConfig)

	if cfg.NATS.URL != "" {
		bridge, err := realtime.NewBridge(cfg.NATS.URL, cfg.NATS.Subject, hub)
		if err != nil {
			log.Warn().Err(err).Msg("running without NATS bridge")
		} else if err := bridge.Start(); err != nil {
			log.Warn().Err(err).Msg("running without NATS bridge")
			bridge.Close()
		} else {
			defer bridge.Close()
		}
	}
	go hub.Start(ctx)

	clients := external.NewClients(cfg.Providers)
	cache := external.NewCache()
	poller := external.NewPoller(
		clockwork.NewRealClock(),
		time.Duration(cfg.Providers.PollIntervalSeconds)*time.Second,
		clients.LiveFetchers(cfg.Providers),
		cache,
		hub,
	)
	go poller.Run(ctx)

	router := routes.SetupRoutes(routes.Dependencies{
		DB:      config.DB,
		Config:  cfg,
		Hub:     hub,
		Cache:   cache,
		Clients: clients,
		Search:  search.NewEngine(ctx, cfg.Elastic.URL, cfg.Elastic.Index, config.DB),
		Mirror:  notification.NewMirror(cfg.Telegram.BotToken, cfg.Telegram.ChatID),
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.App.Env).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// bootstrap loads config, configures logging and connects the database.
func bootstrap() (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	cfg := config.GetConfig()
	logger.Setup(cfg.App.Env, cfg.App.LogLevel)
	return cfg, nil
}
