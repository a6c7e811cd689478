package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trader-bot/internal/app"
	"trader-bot/internal/config"
	"trader-bot/utils"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trader, err := app.New(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to start trader", map[string]any{"error": err.Error()})
	}

	srv := &http.Server{
		Addr:              getPort(cfg.Port),
		Handler:           trader.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("starting trader server", map[string]any{"addr": srv.Addr, "store": cfg.StoreKind()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		utils.Info("shutting down trader server", nil)
		err := srv.Shutdown(shutdownCtx)
		return errors.Join(err, trader.Close(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		utils.Error("trader server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("trader server stopped", nil)
}

// getPort turns the configured port into a listen address
func getPort(port string) string {
	return fmt.Sprintf(":%s", port)
}
