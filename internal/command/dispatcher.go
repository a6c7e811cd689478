package command

import (
	"context"
	"fmt"
	"time"

	"trader-bot/internal/models"
	"trader-bot/internal/tradererrors"
	"trader-bot/utils"
)

// Inventory is the stock and wishlist service
type Inventory interface {
	AddStock(ctx context.Context, caller models.Caller, name string, qty int, note string) (models.StockItem, error)
	ChangeStock(ctx context.Context, caller models.Caller, name string, qty int) (models.StockItem, error)
	RemoveStock(ctx context.Context, caller models.Caller, name string) (models.StockItem, error)
	ClearStock(ctx context.Context, caller models.Caller) (int, error)
	ViewStock(ctx context.Context, guildID, ownerID string) ([]models.StockItem, error)
	AddWishlist(ctx context.Context, caller models.Caller, name, note string) (models.WishlistItem, error)
	RemoveWishlist(ctx context.Context, caller models.Caller, name string) (models.WishlistItem, error)
	ClearWishlist(ctx context.Context, caller models.Caller) (int, error)
	ViewWishlist(ctx context.Context, guildID, ownerID string) ([]models.WishlistItem, error)
	SearchStock(ctx context.Context, guildID, term string) ([]models.SearchHit, error)
	SearchWishlist(ctx context.Context, guildID, term string) ([]models.SearchHit, error)
}

// Alerts is the alert service
type Alerts interface {
	Add(ctx context.Context, caller models.Caller, name string) (models.Alert, error)
	Remove(ctx context.Context, caller models.Caller, name string) (models.Alert, error)
	View(ctx context.Context, guildID, ownerID string) ([]models.Alert, error)
}

// Reputation is the rating service
type Reputation interface {
	Rate(ctx context.Context, caller models.Caller, rateeID string, score int, review string) (models.Aggregate, error)
	Aggregate(ctx context.Context, guildID, rateeID string) (models.Aggregate, error)
	Reviews(ctx context.Context, guildID, rateeID string) ([]models.Rating, error)
	Leaderboard(ctx context.Context, guildID string, limit int) ([]models.LeaderboardEntry, error)
}

// Trades is the trade session service
type Trades interface {
	Start(ctx context.Context, caller models.Caller, counterpartID, item string) (models.Trade, error)
	Complete(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error)
	Cancel(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error)
	Get(ctx context.Context, caller models.Caller, tradeID string) (models.Trade, error)
	ListOpen(ctx context.Context, guildID, userID string) ([]models.Trade, error)
}

// Profiles is the profile service
type Profiles interface {
	Get(ctx context.Context, guildID, userID string) (models.Profile, error)
	Update(ctx context.Context, caller models.Caller, upd models.ProfileUpdate) (models.Profile, error)
	SetTier(ctx context.Context, guildID, userID string, tier models.Tier) (models.Profile, error)
}

// Services bundles the services a Dispatcher routes to
type Services struct {
	Inventory  Inventory
	Alerts     Alerts
	Reputation Reputation
	Trades     Trades
	Profiles   Profiles
}

// Dispatcher routes commands to services
type Dispatcher struct {
	svc Services
}

// NewDispatcher creates a dispatcher over svc
func NewDispatcher(svc Services) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// Dispatch runs cmd on behalf of caller and returns its result
func (d *Dispatcher) Dispatch(ctx context.Context, caller models.Caller, cmd Command) (any, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command: %w - nil command", tradererrors.ErrValidation)
	}
	if caller.Anonymous() {
		return nil, fmt.Errorf("command: %s: %w", cmd.Name(), tradererrors.ErrMissingCaller)
	}

	start := time.Now()
	result, err := d.dispatch(ctx, caller, cmd)
	utils.Debug("command dispatched", map[string]any{
		"command":  cmd.Name(),
		"guild_id": caller.GuildID,
		"user_id":  caller.UserID,
		"duration": time.Since(start).String(),
		"ok":       err == nil,
	})
	if err != nil {
		return nil, fmt.Errorf("command: %s: %w", cmd.Name(), err)
	}
	return result, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, caller models.Caller, cmd Command) (any, error) {
	switch c := cmd.(type) {
	case StockAdd:
		return d.svc.Inventory.AddStock(ctx, caller, c.Item, c.Quantity, c.Note)
	case StockChange:
		return d.svc.Inventory.ChangeStock(ctx, caller, c.Item, c.Quantity)
	case StockRemove:
		return d.svc.Inventory.RemoveStock(ctx, caller, c.Item)
	case StockClear:
		n, err := d.svc.Inventory.ClearStock(ctx, caller)
		return cleared(n, err)
	case StockView:
		items, err := d.svc.Inventory.ViewStock(ctx, caller.GuildID, orCaller(c.OwnerID, caller))
		return nonNil(items), err
	case StockSearch:
		hits, err := d.svc.Inventory.SearchStock(ctx, caller.GuildID, c.Term)
		return nonNil(hits), err
	case WishlistAdd:
		return d.svc.Inventory.AddWishlist(ctx, caller, c.Item, c.Note)
	case WishlistRemove:
		return d.svc.Inventory.RemoveWishlist(ctx, caller, c.Item)
	case WishlistClear:
		n, err := d.svc.Inventory.ClearWishlist(ctx, caller)
		return cleared(n, err)
	case WishlistView:
		items, err := d.svc.Inventory.ViewWishlist(ctx, caller.GuildID, orCaller(c.OwnerID, caller))
		return nonNil(items), err
	case WishlistSearch:
		hits, err := d.svc.Inventory.SearchWishlist(ctx, caller.GuildID, c.Term)
		return nonNil(hits), err
	case AlertAdd:
		return d.svc.Alerts.Add(ctx, caller, c.Item)
	case AlertRemove:
		return d.svc.Alerts.Remove(ctx, caller, c.Item)
	case AlertView:
		alerts, err := d.svc.Alerts.View(ctx, caller.GuildID, caller.UserID)
		return nonNil(alerts), err
	case ReputationRate:
		return d.svc.Reputation.Rate(ctx, caller, c.RateeID, c.Score, c.Review)
	case ReputationAggregate:
		return d.svc.Reputation.Aggregate(ctx, caller.GuildID, orCaller(c.UserID, caller))
	case ReputationReviews:
		reviews, err := d.svc.Reputation.Reviews(ctx, caller.GuildID, orCaller(c.UserID, caller))
		return nonNil(reviews), err
	case ReputationLeaderboard:
		board, err := d.svc.Reputation.Leaderboard(ctx, caller.GuildID, c.Limit)
		return nonNil(board), err
	case TradeStart:
		return d.svc.Trades.Start(ctx, caller, c.CounterpartID, c.Item)
	case TradeComplete:
		return d.svc.Trades.Complete(ctx, caller, c.TradeID)
	case TradeCancel:
		return d.svc.Trades.Cancel(ctx, caller, c.TradeID)
	case TradeGet:
		return d.svc.Trades.Get(ctx, caller, c.TradeID)
	case TradeListOpen:
		trades, err := d.svc.Trades.ListOpen(ctx, caller.GuildID, caller.UserID)
		return nonNil(trades), err
	case ProfileGet:
		return d.svc.Profiles.Get(ctx, caller.GuildID, orCaller(c.UserID, caller))
	case ProfileUpdate:
		return d.svc.Profiles.Update(ctx, caller, c.Update)
	case ProfileSetTier:
		if c.UserID == "" {
			return nil, fmt.Errorf("%w - set tier needs a target member", tradererrors.ErrValidation)
		}
		return d.svc.Profiles.SetTier(ctx, caller.GuildID, c.UserID, c.Tier)
	default:
		return nil, fmt.Errorf("%w - unsupported command %T", tradererrors.ErrValidation, cmd)
	}
}

func orCaller(id string, caller models.Caller) string {
	if id == "" {
		return caller.UserID
	}
	return id
}

func cleared(n int, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return Cleared{Removed: n}, nil
}

// nonNil turns a nil list into an empty one so it renders as []
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
