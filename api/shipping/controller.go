/*
Package shipping - delivery-offering API controller. Offerings are read
publicly by city; creation is admin only except pickup stops, which any
authenticated host may create.
*/
package shipping

import (
	"net/http"

	"farmshop/api/middleware"
	"farmshop/api/response"
	shippingapp "farmshop/application/shipping"
	"farmshop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Shipping controller.
type Controller struct {
	shippingService *shippingapp.Service
}

func NewController(shippingService *shippingapp.Service) *Controller {
	return &Controller{shippingService: shippingService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	cityGroup := router.Group("/cities")
	{
		cityGroup.GET("", c.ListCities)
		cityGroup.POST("", auth, admin, c.CreateCity)
		cityGroup.GET("/:id/pickup-stops", c.ListPickupStops)
		cityGroup.GET("/:id/pickups", c.ListOpenPickups)
		cityGroup.GET("/:id/home-deliveries", c.ListOpenHomeDeliveries)
	}

	router.POST("/pickup-stops", auth, c.CreatePickupStop)
	router.POST("/pickups", auth, admin, c.CreatePickup)
	router.GET("/pickups/:id", c.GetPickup)
	router.POST("/home-deliveries", auth, admin, c.CreateHomeDelivery)
	router.GET("/home-deliveries/:id", c.GetHomeDelivery)
}

// ListCities returns the supported delivery areas.
// GET /api/v1/cities
func (c *Controller) ListCities(ctx *gin.Context) {
	cities, err := c.shippingService.ListCities(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, cities, "cities retrieved successfully")
}

// CreateCity adds a delivery area.
// POST /api/v1/cities
func (c *Controller) CreateCity(ctx *gin.Context) {
	var req shippingapp.CityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	city, err := c.shippingService.CreateCity(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, city, "city created successfully")
}

// ListPickupStops returns the stops of a city.
// GET /api/v1/cities/:id/pickup-stops
func (c *Controller) ListPickupStops(ctx *gin.Context) {
	stops, err := c.shippingService.ListPickupStops(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, stops, "pickup stops retrieved successfully")
}

// CreatePickupStop lets the caller host a stop at one of their addresses.
// POST /api/v1/pickup-stops
func (c *Controller) CreatePickupStop(ctx *gin.Context) {
	var req shippingapp.PickupStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	account := middleware.CurrentUser(ctx)
	stop, err := c.shippingService.CreatePickupStop(ctx.Request.Context(), account.ID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, stop, "pickup stop created successfully")
}

// ListOpenPickups returns the open pickups across a city's stops.
// GET /api/v1/cities/:id/pickups
func (c *Controller) ListOpenPickups(ctx *gin.Context) {
	pickups, err := c.shippingService.ListOpenPickups(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, pickups, "pickups retrieved successfully")
}

// CreatePickup schedules a pickup slot at a stop.
// POST /api/v1/pickups
func (c *Controller) CreatePickup(ctx *gin.Context) {
	var req shippingapp.PickupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	pickup, err := c.shippingService.CreatePickup(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, pickup, "pickup created successfully")
}

// GetPickup returns one pickup slot.
// GET /api/v1/pickups/:id
func (c *Controller) GetPickup(ctx *gin.Context) {
	pickupID := ctx.Param("id")
	if pickupID == "" {
		response.HandleError(ctx, errors.BadRequest("pickup ID is required"), "pickup ID is required", http.StatusBadRequest)
		return
	}

	pickup, err := c.shippingService.GetPickup(ctx.Request.Context(), pickupID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, pickup, "pickup retrieved successfully")
}

// ListOpenHomeDeliveries returns the open home-delivery windows of a city.
// GET /api/v1/cities/:id/home-deliveries
func (c *Controller) ListOpenHomeDeliveries(ctx *gin.Context) {
	deliveries, err := c.shippingService.ListOpenHomeDeliveries(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, deliveries, "home deliveries retrieved successfully")
}

// CreateHomeDelivery schedules a home-delivery window for a city.
// POST /api/v1/home-deliveries
func (c *Controller) CreateHomeDelivery(ctx *gin.Context) {
	var req shippingapp.HomeDeliveryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	delivery, err := c.shippingService.CreateHomeDelivery(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, delivery, "home delivery created successfully")
}

// GetHomeDelivery returns one home-delivery window.
// GET /api/v1/home-deliveries/:id
func (c *Controller) GetHomeDelivery(ctx *gin.Context) {
	deliveryID := ctx.Param("id")
	if deliveryID == "" {
		response.HandleError(ctx, errors.BadRequest("home delivery ID is required"), "home delivery ID is required", http.StatusBadRequest)
		return
	}

	delivery, err := c.shippingService.GetHomeDelivery(ctx.Request.Context(), deliveryID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, delivery, "home delivery retrieved successfully")
}
