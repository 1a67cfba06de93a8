package wallets

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupWalletRoutes configures the wallet routes
func SetupWalletRoutes(r gin.IRouter, controller *Controller, cfg *config.Config) {
	wallet := r.Group("/add_money")
	wallet.Use(middleware.JWTAuthWithConfig(cfg))
	{
		wallet.GET("/", controller.GetBalance) // GET /add_money/
		wallet.POST("/", controller.TopUp)     // POST /add_money/
	}
}
