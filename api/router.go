package api

import (
	"farmshop/api/address"
	"farmshop/api/catalog"
	"farmshop/api/health"
	"farmshop/api/middleware"
	"farmshop/api/order"
	"farmshop/api/shipping"
	"farmshop/api/user"
	userapp "farmshop/application/user"
	"farmshop/config"

	"github.com/gin-gonic/gin"
)

// Router Route configuration.
type Router struct {
	engine             *gin.Engine
	config             *config.Config
	userService        *userapp.Service
	healthController   *health.Controller
	userController     *user.Controller
	addressController  *address.Controller
	catalogController  *catalog.Controller
	shippingController *shipping.Controller
	orderController    *order.Controller
}

func NewRouter(
	cfg *config.Config,
	userService *userapp.Service,
	healthController *health.Controller,
	userController *user.Controller,
	addressController *address.Controller,
	catalogController *catalog.Controller,
	shippingController *shipping.Controller,
	orderController *order.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request id must exist before
	// anything logs or fails.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logging())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.RateLimit(&cfg.Server.RateLimit))

	return &Router{
		engine:             engine,
		config:             cfg,
		userService:        userService,
		healthController:   healthController,
		userController:     userController,
		addressController:  addressController,
		catalogController:  catalogController,
		shippingController: shippingController,
		orderController:    orderController,
	}
}

// SetupRoutes registers every controller under /api/v1.
func (r *Router) SetupRoutes() {
	auth := middleware.Auth(r.userService)
	admin := middleware.AdminRequired()

	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.userController.RegisterRoutes(apiGroup, auth)
		r.addressController.RegisterRoutes(apiGroup, auth)
		r.catalogController.RegisterRoutes(apiGroup, auth, admin)
		r.shippingController.RegisterRoutes(apiGroup, auth, admin)
		r.orderController.RegisterRoutes(apiGroup, auth, admin)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
