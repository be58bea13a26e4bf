package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"photogifthub/internal/metrics"
	orderrepo "photogifthub/internal/repository/order"
	adminsvc "photogifthub/internal/service/admin"
	cartsvc "photogifthub/internal/service/cart"
	checkoutsvc "photogifthub/internal/service/checkout"
	productsvc "photogifthub/internal/service/product"
	profilesvc "photogifthub/internal/service/profile"
	reviewsvc "photogifthub/internal/service/review"
	walletsvc "photogifthub/internal/service/wallet"
)

// Deps bundles the services the handlers depend on.
type Deps struct {
	Products *productsvc.Service
	Carts    *cartsvc.Service
	Wallets  *walletsvc.Service
	Profiles *profilesvc.Service
	Reviews  *reviewsvc.Service
	Checkout *checkoutsvc.Service
	Admin    *adminsvc.Service
	Orders   orderrepo.Repository
	Metrics  *metrics.Metrics
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-User-ID")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.Products))
		api.GET("/products/:id", getProductHandler(deps.Products))

		api.POST("/reviews", createReviewHandler(deps.Reviews))
		api.GET("/reviews", listReviewsHandler(deps.Reviews))
		api.GET("/reviews/stats", reviewStatsHandler(deps.Reviews))

		user := api.Group("", requireUser())
		{
			user.GET("/cart", getCartHandler(deps.Carts))
			user.POST("/cart/items", addCartItemHandler(deps.Carts, deps.Products, deps.Metrics))
			user.PATCH("/cart/items/:id", updateCartItemHandler(deps.Carts, deps.Metrics))
			user.DELETE("/cart/items/:id", removeCartItemHandler(deps.Carts, deps.Metrics))
			user.DELETE("/cart", clearCartHandler(deps.Carts, deps.Metrics))
			user.GET("/cart/quote", cartQuoteHandler(deps.Carts, deps.Wallets))

			user.POST("/checkout", checkoutHandler(deps.Checkout, deps.Metrics))
			user.GET("/orders", listUserOrdersHandler(deps.Orders))

			user.GET("/wallet", getWalletHandler(deps.Wallets))
			user.GET("/wallet/transactions", walletTransactionsHandler(deps.Wallets))

			user.GET("/profile", getProfileHandler(deps.Profiles))
			user.PUT("/profile", saveProfileHandler(deps.Profiles))
			user.GET("/profile/dates", getDatesHandler(deps.Profiles))
			user.PUT("/profile/dates", saveDatesHandler(deps.Profiles))
		}

		api.POST("/admin/login", adminLoginHandler(deps.Admin))
		adminGroup := api.Group("/admin", requireAdmin(deps.Admin))
		{
			adminGroup.GET("/orders", adminListOrdersHandler(deps.Orders))
			adminGroup.PUT("/orders/:id/status", adminUpdateStatusHandler(deps.Orders))
		}
	}

	return router
}
