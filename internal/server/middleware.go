package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	model "trader-bot/internal/models"
	"trader-bot/services/trader/helpers"
	"trader-bot/utils"

	"github.com/gin-gonic/gin"
)

// Headers the platform layer sets on every already-authorized request
const (
	GuildHeader = "X-Guild-ID"
	UserHeader  = "X-User-ID"
	RoleHeader  = "X-Caller-Role"
)

// PlatformRole marks requests the platform layer itself issues, such as tier grants
const PlatformRole = "platform"

var (
	errMissingIdentity = errors.New("missing " + GuildHeader + " or " + UserHeader + " header")
	errNotPlatform     = errors.New(RoleHeader + " must be " + PlatformRole)
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	caller := helpers.CallerFrom(c)
	utils.Info("HTTP Request", map[string]any{
		"method":   c.Request.Method,
		"path":     c.Request.URL.Path,
		"status":   c.Writer.Status(),
		"latency":  time.Since(start).String(),
		"guild_id": caller.GuildID,
		"user_id":  caller.UserID,
	})
}

// CallerMiddleware reads the caller identity from request headers
func CallerMiddleware(c *gin.Context) {
	caller := model.Caller{
		GuildID: strings.TrimSpace(c.GetHeader(GuildHeader)),
		UserID:  strings.TrimSpace(c.GetHeader(UserHeader)),
	}
	if caller.Anonymous() {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "caller identity required")
		return
	}
	helpers.SetCaller(c, caller)
	c.Next()
}

// PlatformMiddleware admits only requests carrying the platform role
func PlatformMiddleware(c *gin.Context) {
	if strings.TrimSpace(c.GetHeader(RoleHeader)) != PlatformRole {
		caller := helpers.CallerFrom(c)
		utils.Warn("platform-only route refused", map[string]any{
			"path":     c.Request.URL.Path,
			"guild_id": caller.GuildID,
			"user_id":  caller.UserID,
		})
		utils.JSONError(c, http.StatusForbidden, errNotPlatform, "platform authorization required")
		return
	}
	c.Next()
}
