package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	orderHandler *OrderHandler,
	userHandler *UserHandler,
	restaurantHandler *RestaurantHandler,
	metrics *Metrics,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), metrics.middleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.handler())

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/summary", orderHandler.Summaries)
			orders.GET("/summary/:restaurant", orderHandler.RestaurantSummary)
			orders.GET("/:id/invoice", orderHandler.Invoice)
		}

		api.GET("/customers/:name/orders", orderHandler.CustomerOrders)

		users := api.Group("/users")
		{
			users.GET("/leaderboard", userHandler.Leaderboard)
			users.GET("/restaurants", userHandler.RestaurantUsers)
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantHandler.ListRestaurants)
			restaurants.GET("/stats", restaurantHandler.Stats)
		}

		api.GET("/analytics/restaurants", restaurantHandler.Analytics)
	}

	return &Router{router}, nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		logger.Debug("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()))
	}
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
