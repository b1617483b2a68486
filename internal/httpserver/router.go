package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps, opts RouterOptions) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))
	if opts.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")

	sessions := api.Group("/checkout/sessions")
	sessions.POST("", openSessionHandler(deps.Checkout))
	sessions.GET("/:id", sessionHandler(deps.Checkout))
	sessions.DELETE("/:id", closeSessionHandler(deps.Checkout))
	sessions.POST("/:id/items", addItemHandler(deps.Checkout))
	sessions.PUT("/:id/items/:productId", setQuantityHandler(deps.Checkout))
	sessions.DELETE("/:id/items/:productId", removeItemHandler(deps.Checkout))
	sessions.POST("/:id/scan", scanHandler(deps.Checkout))
	sessions.POST("/:id/pay", payHandler(deps.Checkout))
	sessions.PUT("/:id/payment", selectPaymentHandler(deps.Checkout))
	sessions.POST("/:id/confirm", confirmHandler(deps.Checkout))
	sessions.POST("/:id/cancel", cancelPaymentHandler(deps.Checkout))

	api.GET("/products", listProductsHandler(deps.Inventory))
	api.POST("/products", createProductHandler(deps.Inventory))
	api.GET("/products/:id", getProductHandler(deps.Inventory))
	api.PUT("/products/:id", updateProductHandler(deps.Inventory))

	api.GET("/customers", listCustomersHandler(deps.Customers))
	api.POST("/customers", createCustomerHandler(deps.Customers))

	api.GET("/reports/daily", dailyReportHandler(deps.Reports))
	api.GET("/reports/weekly", weeklyReportHandler(deps.Reports))
	api.GET("/dashboard", dashboardHandler(deps.Reports))

	api.GET("/settings/store", storeProfileHandler(deps.Settings))
	api.PUT("/settings/store", updateStoreProfileHandler(deps.Settings))
	api.GET("/settings/users", listUsersHandler(deps.Settings))

	return router
}
