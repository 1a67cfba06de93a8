package auth

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles auth-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new auth router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all auth routes
func (authRouter *Router) SetupRoutes(r gin.IRouter) {
	// Public routes (no authentication required)
	r.POST("/register/", authRouter.controller.Register)
	r.POST("/login/", authRouter.controller.Login)
	r.POST("/token/refresh/", authRouter.controller.RefreshToken)

	// Protected routes (authentication required)
	auth := middleware.JWTAuthWithConfig(authRouter.config)
	r.POST("/logout/", auth, authRouter.controller.Logout)
	r.PUT("/change_password/", auth, authRouter.controller.ChangePassword)
	r.GET("/me/", auth, authRouter.controller.GetMe)
}
