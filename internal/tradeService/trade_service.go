package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trader-bot/internal/models"
	"trader-bot/internal/notify"
	"trader-bot/internal/repository"
	"trader-bot/internal/retry"
	"trader-bot/internal/tradererrors"
	"trader-bot/utils"
)

// Store is the persistence the trade service needs
type Store interface {
	repository.ProfileStore
	repository.TradeStore
}

// Notifier accepts notifications without blocking
type Notifier interface {
	Enqueue(n models.Notification) bool
}

// TradeService tracks trades between two members
type TradeService struct {
	repo     Store
	notifier Notifier
	retry    *retry.Policy
	now      func() time.Time
}

// Option configures a TradeService
type Option func(*TradeService)

// WithRetry sets the store retry policy
func WithRetry(p *retry.Policy) Option {
	return func(s *TradeService) { s.retry = p }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *TradeService) { s.now = now }
}

// NewTradeService creates a new TradeService instance
func NewTradeService(repo Store, notifier Notifier, opts ...Option) *TradeService {
	s := &TradeService{
		repo:     repo,
		notifier: notifier,
		retry:    retry.Default(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a trade between the caller and counterpartID over item
func (s *TradeService) Start(ctx context.Context, caller models.Caller, counterpartID, item string) (models.Trade, error) {
	if caller.Anonymous() || counterpartID == "" {
		return models.Trade{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if caller.UserID == counterpartID {
		return models.Trade{}, fmt.Errorf("service: %w", tradererrors.ErrSameParty)
	}
	item = strings.Join(strings.Fields(item), " ")
	if item == "" {
		return models.Trade{}, fmt.Errorf("service: %w", tradererrors.ErrEmptyName)
	}

	for _, id := range []string{caller.UserID, counterpartID} {
		err := s.retry.Do(ctx, func(ctx context.Context) error {
			_, err := s.repo.EnsureProfile(ctx, caller.GuildID, id)
			return err
		})
		if err != nil {
			return models.Trade{}, fmt.Errorf("service: failed to load profile of %s: %w", id, err)
		}
	}

	now := s.now()
	trade := models.Trade{
		ID:        utils.GenerateSortableID(),
		GuildID:   caller.GuildID,
		PartyA:    caller.UserID,
		PartyB:    counterpartID,
		Item:      item,
		State:     models.TradeStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateTrade(ctx, trade)
	})
	if err != nil {
		return models.Trade{}, fmt.Errorf("service: failed to start trade between %s and %s: %w", caller.UserID, counterpartID, err)
	}

	s.announce(trade, caller.UserID)
	return trade, nil
}

// Complete marks a started trade completed and credits both members' response statistics
func (s *TradeService) Complete(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error) {
	trade, err := s.transition(ctx, caller, tradeID, models.TradeCompleted)
	if err != nil {
		return models.Trade{}, err
	}

	score := ResponseScore(trade.ClosedAt.Sub(trade.CreatedAt))
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.RecordResponse(ctx, trade.GuildID, []string{trade.PartyA, trade.PartyB}, score)
	})
	if err != nil {
		// the trade itself is already terminal
		utils.Error("failed to record response score", map[string]any{
			"trade_id": trade.ID,
			"score":    score,
			"error":    err.Error(),
		})
	}
	return trade, nil
}

// Cancel marks a started trade cancelled
func (s *TradeService) Cancel(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error) {
	return s.transition(ctx, caller, tradeID, models.TradeCancelled)
}

// Get returns a trade of the caller's guild
func (s *TradeService) Get(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error) {
	if caller.Anonymous() {
		return models.Trade{}, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}
	if tradeID == "" {
		return models.Trade{}, fmt.Errorf("service: %w - empty trade id", tradererrors.ErrValidation)
	}

	var trade models.Trade
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		trade, err = s.repo.GetTrade(ctx, tradeID)
		return err
	})
	if err != nil {
		return models.Trade{}, fmt.Errorf("service: failed to get trade %s: %w", tradeID, err)
	}
	if trade.GuildID != caller.GuildID {
		return models.Trade{}, fmt.Errorf("service: trade %s: %w", tradeID, tradererrors.ErrTradeNotFound)
	}
	return trade, nil
}

// ListOpen returns the started trades userID takes part in, oldest first
func (s *TradeService) ListOpen(ctx context.Context, guildID, userID string) ([]models.Trade, error) {
	if guildID == "" || userID == "" {
		return nil, fmt.Errorf("service: %w", tradererrors.ErrMissingCaller)
	}

	var trades []models.Trade
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		trades, err = s.repo.ListOpenTrades(ctx, guildID, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list trades of %s: %w", userID, err)
	}
	return trades, nil
}

func (s *TradeService) transition(ctx context.Context, caller models.Caller, tradeID string, to models.TradeState) (models.Trade, error) {
	trade, err := s.Get(ctx, caller, tradeID)
	if err != nil {
		return models.Trade{}, err
	}
	if trade.Counterpart(caller.UserID) == "" {
		return models.Trade{}, fmt.Errorf("service: %s on trade %s: %w", caller.UserID, tradeID, tradererrors.ErrNotParticipant)
	}
	if trade.State.Terminal() {
		return models.Trade{}, fmt.Errorf("service: trade %s is %s: %w", tradeID, trade.State, tradererrors.ErrTradeTerminal)
	}

	at := s.now()
	err = s.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		trade, err = s.repo.TransitionTrade(ctx, tradeID, to, at)
		return err
	})
	if err != nil {
		if errors.Is(err, tradererrors.ErrTradeTerminal) {
			return models.Trade{}, fmt.Errorf("service: trade %s closed concurrently: %w", tradeID, err)
		}
		return models.Trade{}, fmt.Errorf("service: failed to %s trade %s: %w", verb(to), tradeID, err)
	}

	s.announce(trade, caller.UserID)
	return trade, nil
}

// announce tells the member who did not act about the new state
func (s *TradeService) announce(trade models.Trade, actor string) {
	if s.notifier == nil {
		return
	}
	recipient := trade.Counterpart(actor)
	if recipient == "" {
		return
	}
	s.notifier.Enqueue(notify.NewNotification(trade.GuildID, recipient, models.KindTradeStateChange, map[string]any{
		"trade_id": trade.ID,
		"item":     trade.Item,
		"state":    string(trade.State),
		"actor_id": actor,
	}, s.now()))
}

func verb(to models.TradeState) string {
	if to == models.TradeCompleted {
		return "complete"
	}
	return "cancel"
}

// responseBands maps the time a trade stayed open to a score from 10 down to 1
var responseBands = []struct {
	within time.Duration
	score  int
}{
	{time.Hour, 10},
	{3 * time.Hour, 9},
	{6 * time.Hour, 8},
	{12 * time.Hour, 7},
	{24 * time.Hour, 6},
	{48 * time.Hour, 4},
	{72 * time.Hour, 3},
	{96 * time.Hour, 2},
}

// ResponseScore rates how quickly a trade was closed
func ResponseScore(open time.Duration) int {
	for _, b := range responseBands {
		if open <= b.within {
			return b.score
		}
	}
	return 1
}
