package helpers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/internal/tradererrors"
	"trader-bot/utils"

	"github.com/gin-gonic/gin"
)

const callerKey = "trader.caller"

// SetCaller stores the authenticated caller on the request context
func SetCaller(c *gin.Context, caller model.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the caller stored by SetCaller
func CallerFrom(c *gin.Context) model.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(model.Caller); ok {
			return caller
		}
	}
	return model.Caller{}
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, tradererrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, tradererrors.ErrTradeNotFound):
		return http.StatusNotFound, "trade not found"
	case errors.Is(err, tradererrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, tradererrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, tradererrors.ErrQuotaExceeded):
		return http.StatusConflict, "alert quota exceeded"
	case errors.Is(err, tradererrors.ErrCooldownActive):
		return http.StatusTooManyRequests, "rating cooldown active"
	case errors.Is(err, tradererrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteError sends err as a JSON error, adding the quota or remaining cooldown when known
func WriteError(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)
	details := gin.H{}

	var qe *tradererrors.QuotaError
	if errors.As(err, &qe) {
		details["quota"] = qe.Quota
		details["tier"] = qe.Tier
	}
	var ce *tradererrors.CooldownError
	if errors.As(err, &ce) {
		secs := int64(math.Ceil(ce.Remaining.Seconds()))
		details["retry_after_seconds"] = secs
		c.Header("Retry-After", strconv.FormatInt(secs, 10))
	}

	utils.JSONErrorDetails(c, status, fmt.Errorf("%s: %w", message, err), message, details)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToProfileResponse converts a profile for output
func ToProfileResponse(p model.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:          p.UserID,
		Bio:             p.Bio,
		TradeChannelID:  p.TradeChannelID,
		Tier:            p.Tier,
		AverageResponse: math.Round(p.AverageResponse()*10) / 10,
		ResponseCount:   p.ResponseCount,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTradeResponse converts a trade for output
func ToTradeResponse(t model.Trade) TradeResponse {
	resp := TradeResponse{
		TradeID:   t.ID,
		PartyA:    t.PartyA,
		PartyB:    t.PartyB,
		Item:      t.Item,
		State:     string(t.State),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.ClosedAt != nil {
		resp.ClosedAt = t.ClosedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
