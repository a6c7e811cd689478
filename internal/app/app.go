// Package app assembles the store, services and HTTP router from a Config.
package app

import (
	"context"
	"errors"
	"fmt"

	alert "trader-bot/internal/alertService"
	"trader-bot/internal/command"
	"trader-bot/internal/config"
	"trader-bot/internal/fuzzy"
	inventory "trader-bot/internal/inventoryService"
	"trader-bot/internal/models"
	"trader-bot/internal/notify"
	profile "trader-bot/internal/profileService"
	"trader-bot/internal/repository"
	reputation "trader-bot/internal/reputationService"
	"trader-bot/internal/retry"
	"trader-bot/internal/server"
	trade "trader-bot/internal/tradeService"
	"trader-bot/internal/worker"
	"trader-bot/utils"

	"github.com/gin-gonic/gin"
)

// App is a fully wired trader instance
type App struct {
	Router     *gin.Engine
	Dispatcher *command.Dispatcher

	jobs     *worker.Pool
	notifier *notify.Dispatcher
	closers  []func() error
}

type options struct {
	sink  notify.Sink
	store repository.TraderDB
}

// Option customizes New
type Option func(*options)

// WithSink delivers notifications to s instead of the configured sink
func WithSink(s notify.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithStore uses db instead of the configured store
func WithStore(db repository.TraderDB) Option {
	return func(o *options) { o.store = db }
}

// New builds every component described by cfg
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{}

	repo := o.store
	if repo == nil {
		var err error
		repo, err = a.openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	sink := o.sink
	if sink == nil {
		sink = a.openSink(cfg)
	}

	policy := retry.New(cfg.StoreRetryAttempts, cfg.StoreRetryBackoff)
	resolver := fuzzy.NewResolver(cfg.FuzzyThreshold)

	a.notifier = notify.NewDispatcher(worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize), sink)
	a.jobs = worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize)

	alerts := alert.NewAlertService(repo, resolver, a.notifier, a.jobs,
		alert.WithRetry(policy),
		alert.WithQuotas(alert.Quotas{
			models.TierFree: cfg.AlertQuotaFree,
			models.TierPlus: cfg.AlertQuotaPlus,
			models.TierPro:  cfg.AlertQuotaPro,
		}),
	)

	a.Dispatcher = command.NewDispatcher(command.Services{
		Inventory: inventory.NewInventoryService(repo, resolver,
			inventory.WithWatcher(alerts),
			inventory.WithRetry(policy),
			inventory.WithListingLimit(cfg.ListingLimit),
		),
		Alerts: alerts,
		Reputation: reputation.NewReputationService(repo,
			reputation.WithRetry(policy),
			reputation.WithCooldown(cfg.RatingCooldown),
			reputation.WithMinRatings(cfg.LeaderboardMinRatings),
		),
		Trades:   trade.NewTradeService(repo, a.notifier, trade.WithRetry(policy)),
		Profiles: profile.NewProfileService(repo, policy),
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = server.SetupRouter(a.Dispatcher)
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config) (repository.TraderDB, error) {
	if cfg.StoreKind() == "memory" {
		return repository.NewMemoryRepo(), nil
	}

	pool, err := repository.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	repo := repository.NewPostgresRepo(pool)
	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("app: migrate: %w", err)
	}
	a.closers = append(a.closers, func() error {
		repo.Close()
		return nil
	})
	return repo, nil
}

func (a *App) openSink(cfg config.Config) notify.Sink {
	if cfg.SinkKind() == "log" {
		return notify.LogSink{}
	}

	kafka := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	a.closers = append(a.closers, kafka.Close)
	utils.Info("kafka notification sink enabled", map[string]any{
		"brokers": cfg.KafkaBrokers,
		"topic":   cfg.KafkaTopic,
	})
	return notify.FanOut{kafka, notify.LogSink{}}
}

// Close drains background matching and queued notifications, then releases the sink and store
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.jobs.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("app: close jobs: %w", err))
	}
	if err := a.notifier.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("app: close notifier: %w", err))
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, fmt.Errorf("app: close: %w", err))
		}
	}
	return errors.Join(errs...)
}
