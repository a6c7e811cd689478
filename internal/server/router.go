package server

import (
	"net/http"

	handler "trader-bot/services/trader/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(dispatcher handler.Dispatcher) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	traderHandler := handler.NewTraderHandler(dispatcher)

	api := router.Group("/", CallerMiddleware)

	stock := api.Group("/stock")
	{
		stock.POST("", traderHandler.AddStockHandler)
		stock.PATCH("", traderHandler.ChangeStockHandler)
		stock.GET("", traderHandler.ViewStockHandler)
		stock.DELETE("", traderHandler.ClearStockHandler)
		stock.DELETE("/:item", traderHandler.RemoveStockHandler)
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.POST("", traderHandler.AddWishlistHandler)
		wishlist.GET("", traderHandler.ViewWishlistHandler)
		wishlist.DELETE("", traderHandler.ClearWishlistHandler)
		wishlist.DELETE("/:item", traderHandler.RemoveWishlistHandler)
	}

	search := api.Group("/search")
	{
		search.GET("/stock", traderHandler.SearchStockHandler)
		search.GET("/wishlist", traderHandler.SearchWishlistHandler)
	}

	alerts := api.Group("/alerts")
	{
		alerts.POST("", traderHandler.AddAlertHandler)
		alerts.GET("", traderHandler.ViewAlertsHandler)
		alerts.DELETE("/:item", traderHandler.RemoveAlertHandler)
	}

	api.POST("/ratings", traderHandler.RateHandler)
	api.GET("/reviews", traderHandler.ReviewsHandler)
	api.GET("/leaderboard", traderHandler.LeaderboardHandler)

	trades := api.Group("/trades")
	{
		trades.POST("", traderHandler.StartTradeHandler)
		trades.GET("", traderHandler.ListOpenTradesHandler)
		trades.GET("/:trade_id", traderHandler.GetTradeHandler)
		trades.POST("/:trade_id/complete", traderHandler.CompleteTradeHandler)
		trades.POST("/:trade_id/cancel", traderHandler.CancelTradeHandler)
	}

	api.GET("/profile", traderHandler.GetProfileHandler)
	api.PATCH("/profile", traderHandler.UpdateProfileHandler)

	users := api.Group("/users")
	{
		users.GET("/:user_id/profile", traderHandler.GetProfileHandler)
		users.GET("/:user_id/reputation", traderHandler.AggregateHandler)
		users.GET("/:user_id/reviews", traderHandler.ReviewsHandler)
		users.PUT("/:user_id/tier", PlatformMiddleware, traderHandler.SetTierHandler)
	}

	return router
}
