package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/internal/tradererrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// PostgresRepo is the durable TraderDB backed by a pgx pool.
// Row-level mutations run in a transaction holding either the row lock
// (SELECT ... FOR UPDATE) or a transaction-scoped advisory lock on the
// owner collection, so concurrent writers to the same row are serialized.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

var _ TraderDB = (*PostgresRepo)(nil)

// NewPostgresPool opens a pgx pool for databaseURL
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, tradererrors.Unavailable("connect database", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, tradererrors.Unavailable("ping database", err)
	}
	return pool, nil
}

// NewPostgresRepo wraps an open pool
func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

// Migrate creates the tables when missing
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return classify("migrate", err)
	}
	return nil
}

// Close releases the pool
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func (r *PostgresRepo) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	return classify(op, pgx.BeginFunc(ctx, r.pool, fn))
}

func lockCollection(ctx context.Context, tx pgx.Tx, collection, guildID, ownerID string) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, collection+":"+guildID+":"+ownerID)
	return err
}

// EnsureProfile returns the profile, creating a Free tier one on first interaction
func (r *PostgresRepo) EnsureProfile(ctx context.Context, guildID, userID string) (model.Profile, error) {
	var p model.Profile
	err := r.inTx(ctx, "ensure profile", func(tx pgx.Tx) error {
		var err error
		p, err = ensureProfileTx(ctx, tx, guildID, userID)
		return err
	})
	return p, err
}

func ensureProfileTx(ctx context.Context, tx pgx.Tx, guildID, userID string) (model.Profile, error) {
	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (guild_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		guildID, userID); err != nil {
		return model.Profile{}, err
	}
	return scanProfile(tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE guild_id = $1 AND user_id = $2`, guildID, userID))
}

const profileColumns = `guild_id, user_id, bio, trade_channel_id, tier, response_total, response_count, created_at, updated_at`

func scanProfile(row pgx.Row) (model.Profile, error) {
	var p model.Profile
	var tier string
	if err := row.Scan(&p.GuildID, &p.UserID, &p.Bio, &p.TradeChannelID, &tier,
		&p.ResponseTotal, &p.ResponseCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Profile{}, err
	}
	p.Tier = model.Tier(tier)
	return p, nil
}

// UpdateProfile applies the non-nil fields of upd
func (r *PostgresRepo) UpdateProfile(ctx context.Context, guildID, userID string, upd model.ProfileUpdate) (model.Profile, error) {
	var p model.Profile
	err := r.inTx(ctx, "update profile", func(tx pgx.Tx) error {
		if _, err := ensureProfileTx(ctx, tx, guildID, userID); err != nil {
			return err
		}
		var err error
		p, err = scanProfile(tx.QueryRow(ctx,
			`UPDATE profiles SET
			     bio = COALESCE($3, bio),
			     trade_channel_id = COALESCE($4, trade_channel_id),
			     updated_at = now()
			 WHERE guild_id = $1 AND user_id = $2
			 RETURNING `+profileColumns,
			guildID, userID, upd.Bio, upd.TradeChannelID))
		return err
	})
	return p, err
}

// SetTier changes the premium tier of a member
func (r *PostgresRepo) SetTier(ctx context.Context, guildID, userID string, tier model.Tier) (model.Profile, error) {
	var p model.Profile
	err := r.inTx(ctx, "set tier", func(tx pgx.Tx) error {
		if _, err := ensureProfileTx(ctx, tx, guildID, userID); err != nil {
			return err
		}
		var err error
		p, err = scanProfile(tx.QueryRow(ctx,
			`UPDATE profiles SET tier = $3, updated_at = now()
			 WHERE guild_id = $1 AND user_id = $2
			 RETURNING `+profileColumns,
			guildID, userID, string(tier)))
		return err
	})
	return p, err
}

// RecordResponse adds a response score to each listed member
func (r *PostgresRepo) RecordResponse(ctx context.Context, guildID string, userIDs []string, score int) error {
	return r.inTx(ctx, "record response", func(tx pgx.Tx) error {
		for _, id := range userIDs {
			if _, err := ensureProfileTx(ctx, tx, guildID, id); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx,
			`UPDATE profiles SET response_total = response_total + $3, response_count = response_count + 1
			 WHERE guild_id = $1 AND user_id = ANY($2)`, guildID, userIDs, score)
		return err
	})
}

const stockColumns = `id, guild_id, owner_id, name, item_key, quantity, note, created_at, updated_at`

func scanStock(row pgx.Row) (model.StockItem, error) {
	var it model.StockItem
	err := row.Scan(&it.ID, &it.GuildID, &it.OwnerID, &it.Name, &it.Key, &it.Quantity, &it.Note, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

// AddStock adds quantity to an existing row or creates it
func (r *PostgresRepo) AddStock(ctx context.Context, item model.StockItem, limit int) (model.StockItem, int, error) {
	var stored model.StockItem
	prev := 0
	err := r.inTx(ctx, "add stock", func(tx pgx.Tx) error {
		if err := lockCollection(ctx, tx, "stock", item.GuildID, item.OwnerID); err != nil {
			return err
		}
		err := tx.QueryRow(ctx,
			`SELECT quantity FROM stock_items WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3`,
			item.GuildID, item.OwnerID, item.Key).Scan(&prev)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			prev = 0
			if limit > 0 {
				var n int
				if err := tx.QueryRow(ctx,
					`SELECT count(*) FROM stock_items WHERE guild_id = $1 AND owner_id = $2`,
					item.GuildID, item.OwnerID).Scan(&n); err != nil {
					return err
				}
				if n >= limit {
					return fmt.Errorf("%q: %w", item.Name, tradererrors.ErrListingLimit)
				}
			}
		case err != nil:
			return err
		}
		if item.Quantity > model.MaxQuantity-prev {
			return fmt.Errorf("%q: %w: %d + %d exceeds %d",
				item.Name, tradererrors.ErrInvalidQuantity, prev, item.Quantity, model.MaxQuantity)
		}

		stored, err = scanStock(tx.QueryRow(ctx,
			`INSERT INTO stock_items (`+stockColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (guild_id, owner_id, item_key) DO UPDATE SET
			     quantity = stock_items.quantity + EXCLUDED.quantity,
			     note = CASE WHEN EXCLUDED.note <> '' THEN EXCLUDED.note ELSE stock_items.note END,
			     updated_at = EXCLUDED.updated_at
			 RETURNING `+stockColumns,
			item.ID, item.GuildID, item.OwnerID, item.Name, item.Key, item.Quantity, item.Note, item.CreatedAt, item.UpdatedAt))
		return err
	})
	if err != nil {
		return model.StockItem{}, 0, err
	}
	return stored, prev, nil
}

// SetStockQuantity sets the quantity of an existing row, deleting it at zero
func (r *PostgresRepo) SetStockQuantity(ctx context.Context, guildID, ownerID, key string, qty int) (model.StockItem, int, error) {
	if qty < 0 || qty > model.MaxQuantity {
		return model.StockItem{}, 0, fmt.Errorf("set stock %q: %w", key, tradererrors.ErrInvalidQuantity)
	}

	var stored model.StockItem
	prev := 0
	err := r.inTx(ctx, "set stock", func(tx pgx.Tx) error {
		current, err := scanStock(tx.QueryRow(ctx,
			`SELECT `+stockColumns+` FROM stock_items
			 WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3 FOR UPDATE`,
			guildID, ownerID, key))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%q: %w", key, tradererrors.ErrItemNotFound)
		}
		if err != nil {
			return err
		}
		prev = current.Quantity

		if qty == 0 {
			if _, err := tx.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, current.ID); err != nil {
				return err
			}
			current.Quantity = 0
			stored = current
			return nil
		}
		stored, err = scanStock(tx.QueryRow(ctx,
			`UPDATE stock_items SET quantity = $2, updated_at = now() WHERE id = $1 RETURNING `+stockColumns,
			current.ID, qty))
		return err
	})
	if err != nil {
		return model.StockItem{}, 0, err
	}
	return stored, prev, nil
}

// DeleteStock removes a row
func (r *PostgresRepo) DeleteStock(ctx context.Context, guildID, ownerID, key string) (model.StockItem, error) {
	it, err := scanStock(r.pool.QueryRow(ctx,
		`DELETE FROM stock_items WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3 RETURNING `+stockColumns,
		guildID, ownerID, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.StockItem{}, fmt.Errorf("delete stock %q: %w", key, tradererrors.ErrItemNotFound)
	}
	if err != nil {
		return model.StockItem{}, classify("delete stock", err)
	}
	return it, nil
}

// ClearStock removes every row of the owner and returns how many were deleted
func (r *PostgresRepo) ClearStock(ctx context.Context, guildID, ownerID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM stock_items WHERE guild_id = $1 AND owner_id = $2`, guildID, ownerID)
	if err != nil {
		return 0, classify("clear stock", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListStock returns the owner's stock ordered by normalized name
func (r *PostgresRepo) ListStock(ctx context.Context, guildID, ownerID string) ([]model.StockItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+stockColumns+` FROM stock_items WHERE guild_id = $1 AND owner_id = $2 ORDER BY item_key`,
		guildID, ownerID)
	if err != nil {
		return nil, classify("list stock", err)
	}
	defer rows.Close()

	items := []model.StockItem{}
	for rows.Next() {
		it, err := scanStock(rows)
		if err != nil {
			return nil, classify("list stock", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list stock", err)
	}
	return items, nil
}

// ListGuildStock returns every stock row in the guild ordered by name then owner
func (r *PostgresRepo) ListGuildStock(ctx context.Context, guildID string) ([]model.StockItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+stockColumns+` FROM stock_items WHERE guild_id = $1 ORDER BY item_key, owner_id`, guildID)
	if err != nil {
		return nil, classify("list guild stock", err)
	}
	defer rows.Close()

	items := []model.StockItem{}
	for rows.Next() {
		it, err := scanStock(rows)
		if err != nil {
			return nil, classify("list guild stock", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list guild stock", err)
	}
	return items, nil
}

const wishlistColumns = `id, guild_id, owner_id, name, item_key, note, created_at`

func scanWishlist(row pgx.Row) (model.WishlistItem, error) {
	var it model.WishlistItem
	err := row.Scan(&it.ID, &it.GuildID, &it.OwnerID, &it.Name, &it.Key, &it.Note, &it.CreatedAt)
	return it, err
}

// AddWishlist inserts a wishlist row or replaces its note
func (r *PostgresRepo) AddWishlist(ctx context.Context, item model.WishlistItem, limit int) (model.WishlistItem, bool, error) {
	var stored model.WishlistItem
	created := false
	err := r.inTx(ctx, "add wishlist", func(tx pgx.Tx) error {
		if err := lockCollection(ctx, tx, "wishlist", item.GuildID, item.OwnerID); err != nil {
			return err
		}
		existing, err := scanWishlist(tx.QueryRow(ctx,
			`UPDATE wishlist_items SET note = $4 WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3
			 RETURNING `+wishlistColumns, item.GuildID, item.OwnerID, item.Key, item.Note))
		if err == nil {
			stored = existing
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		if limit > 0 {
			var n int
			if err := tx.QueryRow(ctx,
				`SELECT count(*) FROM wishlist_items WHERE guild_id = $1 AND owner_id = $2`,
				item.GuildID, item.OwnerID).Scan(&n); err != nil {
				return err
			}
			if n >= limit {
				return fmt.Errorf("%q: %w", item.Name, tradererrors.ErrListingLimit)
			}
		}
		stored, err = scanWishlist(tx.QueryRow(ctx,
			`INSERT INTO wishlist_items (`+wishlistColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+wishlistColumns,
			item.ID, item.GuildID, item.OwnerID, item.Name, item.Key, item.Note, item.CreatedAt))
		created = err == nil
		return err
	})
	if err != nil {
		return model.WishlistItem{}, false, err
	}
	return stored, created, nil
}

// DeleteWishlist removes a wishlist row
func (r *PostgresRepo) DeleteWishlist(ctx context.Context, guildID, ownerID, key string) (model.WishlistItem, error) {
	it, err := scanWishlist(r.pool.QueryRow(ctx,
		`DELETE FROM wishlist_items WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3 RETURNING `+wishlistColumns,
		guildID, ownerID, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WishlistItem{}, fmt.Errorf("delete wishlist %q: %w", key, tradererrors.ErrItemNotFound)
	}
	if err != nil {
		return model.WishlistItem{}, classify("delete wishlist", err)
	}
	return it, nil
}

// ClearWishlist removes every wishlist row of the owner
func (r *PostgresRepo) ClearWishlist(ctx context.Context, guildID, ownerID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE guild_id = $1 AND owner_id = $2`, guildID, ownerID)
	if err != nil {
		return 0, classify("clear wishlist", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListWishlist returns the owner's wishlist ordered by normalized name
func (r *PostgresRepo) ListWishlist(ctx context.Context, guildID, ownerID string) ([]model.WishlistItem, error) {
	return r.queryWishlist(ctx, "list wishlist",
		`SELECT `+wishlistColumns+` FROM wishlist_items WHERE guild_id = $1 AND owner_id = $2 ORDER BY item_key`,
		guildID, ownerID)
}

// ListGuildWishlists returns every wishlist row in the guild
func (r *PostgresRepo) ListGuildWishlists(ctx context.Context, guildID string) ([]model.WishlistItem, error) {
	return r.queryWishlist(ctx, "list guild wishlists",
		`SELECT `+wishlistColumns+` FROM wishlist_items WHERE guild_id = $1 ORDER BY id`, guildID)
}

func (r *PostgresRepo) queryWishlist(ctx context.Context, op, sql string, args ...any) ([]model.WishlistItem, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	items := []model.WishlistItem{}
	for rows.Next() {
		it, err := scanWishlist(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return items, nil
}

const alertColumns = `id, guild_id, owner_id, name, item_key, created_at`

func scanAlert(row pgx.Row) (model.Alert, error) {
	var a model.Alert
	err := row.Scan(&a.ID, &a.GuildID, &a.OwnerID, &a.Name, &a.Key, &a.CreatedAt)
	return a, err
}

// AddAlert inserts an alert while the owner is under quota
func (r *PostgresRepo) AddAlert(ctx context.Context, alert model.Alert, quota int) (model.Alert, bool, error) {
	var stored model.Alert
	created := false
	err := r.inTx(ctx, "add alert", func(tx pgx.Tx) error {
		if err := lockCollection(ctx, tx, "alerts", alert.GuildID, alert.OwnerID); err != nil {
			return err
		}
		existing, err := scanAlert(tx.QueryRow(ctx,
			`SELECT `+alertColumns+` FROM alerts WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3`,
			alert.GuildID, alert.OwnerID, alert.Key))
		if err == nil {
			stored = existing
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		var n int
		if err := tx.QueryRow(ctx,
			`SELECT count(*) FROM alerts WHERE guild_id = $1 AND owner_id = $2`,
			alert.GuildID, alert.OwnerID).Scan(&n); err != nil {
			return err
		}
		if n >= quota {
			return fmt.Errorf("%q: %w", alert.Name, tradererrors.ErrQuotaExceeded)
		}
		stored, err = scanAlert(tx.QueryRow(ctx,
			`INSERT INTO alerts (`+alertColumns+`) VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+alertColumns,
			alert.ID, alert.GuildID, alert.OwnerID, alert.Name, alert.Key, alert.CreatedAt))
		created = err == nil
		return err
	})
	if err != nil {
		return model.Alert{}, false, err
	}
	return stored, created, nil
}

// DeleteAlert removes an alert
func (r *PostgresRepo) DeleteAlert(ctx context.Context, guildID, ownerID, key string) (model.Alert, error) {
	a, err := scanAlert(r.pool.QueryRow(ctx,
		`DELETE FROM alerts WHERE guild_id = $1 AND owner_id = $2 AND item_key = $3 RETURNING `+alertColumns,
		guildID, ownerID, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Alert{}, fmt.Errorf("delete alert %q: %w", key, tradererrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Alert{}, classify("delete alert", err)
	}
	return a, nil
}

// ListAlerts returns the owner's alerts ordered by normalized name
func (r *PostgresRepo) ListAlerts(ctx context.Context, guildID, ownerID string) ([]model.Alert, error) {
	return r.queryAlerts(ctx, "list alerts",
		`SELECT `+alertColumns+` FROM alerts WHERE guild_id = $1 AND owner_id = $2 ORDER BY item_key`,
		guildID, ownerID)
}

// ListGuildAlerts returns every alert in the guild
func (r *PostgresRepo) ListGuildAlerts(ctx context.Context, guildID string) ([]model.Alert, error) {
	return r.queryAlerts(ctx, "list guild alerts",
		`SELECT `+alertColumns+` FROM alerts WHERE guild_id = $1 ORDER BY id`, guildID)
}

func (r *PostgresRepo) queryAlerts(ctx context.Context, op, sql string, args ...any) ([]model.Alert, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return alerts, nil
}

// RecordRating inserts a rating unless the pair is still cooling down
func (r *PostgresRepo) RecordRating(ctx context.Context, rating model.Rating, cooldown time.Duration) error {
	return r.inTx(ctx, "record rating", func(tx pgx.Tx) error {
		if err := lockCollection(ctx, tx, "rating:"+rating.RaterID, rating.GuildID, rating.RateeID); err != nil {
			return err
		}

		var last time.Time
		err := tx.QueryRow(ctx,
			`SELECT created_at FROM ratings WHERE guild_id = $1 AND rater_id = $2 AND ratee_id = $3
			 ORDER BY created_at DESC LIMIT 1`,
			rating.GuildID, rating.RaterID, rating.RateeID).Scan(&last)
		switch {
		case err == nil:
			if elapsed := rating.CreatedAt.Sub(last); elapsed < cooldown {
				return &tradererrors.CooldownError{Remaining: cooldown - elapsed}
			}
		case !errors.Is(err, pgx.ErrNoRows):
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO ratings (id, guild_id, rater_id, ratee_id, score, review, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rating.ID, rating.GuildID, rating.RaterID, rating.RateeID, rating.Score, rating.Review, rating.CreatedAt)
		return err
	})
}

// RatingSummary aggregates the ratings received by rateeID
func (r *PostgresRepo) RatingSummary(ctx context.Context, guildID, rateeID string) (model.RatingSummary, error) {
	s := model.RatingSummary{RateeID: rateeID}
	var last *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(score), 0), COUNT(*), MAX(created_at) FROM ratings WHERE guild_id = $1 AND ratee_id = $2`,
		guildID, rateeID).Scan(&s.Total, &s.Count, &last)
	if err != nil {
		return model.RatingSummary{}, classify("rating summary", err)
	}
	if last != nil {
		s.LastAt = *last
	}
	return s, nil
}

// RatingSummaries aggregates ratings for every rated member of the guild
func (r *PostgresRepo) RatingSummaries(ctx context.Context, guildID string) ([]model.RatingSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ratee_id, SUM(score), COUNT(*), MAX(created_at) FROM ratings
		 WHERE guild_id = $1 GROUP BY ratee_id ORDER BY ratee_id`, guildID)
	if err != nil {
		return nil, classify("rating summaries", err)
	}
	defer rows.Close()

	summaries := []model.RatingSummary{}
	for rows.Next() {
		var s model.RatingSummary
		if err := rows.Scan(&s.RateeID, &s.Total, &s.Count, &s.LastAt); err != nil {
			return nil, classify("rating summaries", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("rating summaries", err)
	}
	return summaries, nil
}

// RecentReviews returns up to limit ratings with review text for rateeID, newest first
func (r *PostgresRepo) RecentReviews(ctx context.Context, guildID, rateeID string, limit int) ([]model.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, guild_id, rater_id, ratee_id, score, review, created_at FROM ratings
		 WHERE guild_id = $1 AND ratee_id = $2 AND review <> ''
		 ORDER BY created_at DESC, id DESC LIMIT $3`, guildID, rateeID, limit)
	if err != nil {
		return nil, classify("recent reviews", err)
	}
	defer rows.Close()

	reviews := []model.Rating{}
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.GuildID, &rt.RaterID, &rt.RateeID, &rt.Score, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, classify("recent reviews", err)
		}
		reviews = append(reviews, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("recent reviews", err)
	}
	return reviews, nil
}

const tradeColumns = `id, guild_id, party_a, party_b, item, state, created_at, updated_at, closed_at`

func scanTrade(row pgx.Row) (model.Trade, error) {
	var t model.Trade
	var state string
	if err := row.Scan(&t.ID, &t.GuildID, &t.PartyA, &t.PartyB, &t.Item, &state, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt); err != nil {
		return model.Trade{}, err
	}
	t.State = model.TradeState(state)
	return t, nil
}

// CreateTrade stores a new trade
func (r *PostgresRepo) CreateTrade(ctx context.Context, trade model.Trade) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO trades (`+tradeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		trade.ID, trade.GuildID, trade.PartyA, trade.PartyB, trade.Item, string(trade.State),
		trade.CreatedAt, trade.UpdatedAt, trade.ClosedAt)
	return classify("create trade", err)
}

// GetTrade returns a trade by id
func (r *PostgresRepo) GetTrade(ctx context.Context, tradeID string) (model.Trade, error) {
	t, err := scanTrade(r.pool.QueryRow(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = $1`, tradeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Trade{}, fmt.Errorf("get trade %s: %w", tradeID, tradererrors.ErrTradeNotFound)
	}
	if err != nil {
		return model.Trade{}, classify("get trade", err)
	}
	return t, nil
}

// TransitionTrade moves a Started trade to a terminal state
func (r *PostgresRepo) TransitionTrade(ctx context.Context, tradeID string, to model.TradeState, at time.Time) (model.Trade, error) {
	var updated model.Trade
	err := r.inTx(ctx, "transition trade", func(tx pgx.Tx) error {
		current, err := scanTrade(tx.QueryRow(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = $1 FOR UPDATE`, tradeID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", tradeID, tradererrors.ErrTradeNotFound)
		}
		if err != nil {
			return err
		}
		if current.State.Terminal() {
			return fmt.Errorf("%s from %s: %w", tradeID, current.State, tradererrors.ErrTradeTerminal)
		}
		updated, err = scanTrade(tx.QueryRow(ctx,
			`UPDATE trades SET state = $2, updated_at = $3, closed_at = $3 WHERE id = $1 RETURNING `+tradeColumns,
			tradeID, string(to), at))
		return err
	})
	if err != nil {
		return model.Trade{}, err
	}
	return updated, nil
}

// ListOpenTrades returns Started trades involving userID, oldest first
func (r *PostgresRepo) ListOpenTrades(ctx context.Context, guildID, userID string) ([]model.Trade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tradeColumns+` FROM trades
		 WHERE guild_id = $1 AND state = $2 AND (party_a = $3 OR party_b = $3) ORDER BY id`,
		guildID, string(model.TradeStarted), userID)
	if err != nil {
		return nil, classify("list open trades", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, classify("list open trades", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list open trades", err)
	}
	return trades, nil
}
