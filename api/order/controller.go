/*
Package order - order API controller.

Binding errors return 400 through response.HandleError; business errors
go through response.HandleAppError which maps the error code to its
HTTP status.
*/
package order

import (
	"net/http"

	"farmshop/api/middleware"
	"farmshop/api/response"
	orderapp "farmshop/application/order"
	"farmshop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Order controller.
type Controller struct {
	orderService *orderapp.Service
}

func NewController(orderService *orderapp.Service) *Controller {
	return &Controller{orderService: orderService}
}

// RegisterRoutes registers the order routes. All of them require an
// authenticated user; the status update additionally requires admin.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	orderGroup := router.Group("/orders", auth)
	{
		orderGroup.POST("", c.PlaceOrder)
		orderGroup.GET("", c.ListMyOrders)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.PUT("/:id/status", admin, c.UpdateStatus)
	}
}

// PlaceOrder materializes the cart into an order.
// POST /api/v1/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	account := middleware.CurrentUser(ctx)
	view, err := c.orderService.PlaceOrder(ctx.Request.Context(), account.ID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, view, "order created successfully")
}

// GetOrder returns the composite view of one order.
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	account := middleware.CurrentUser(ctx)
	view, err := c.orderService.GetOrder(ctx.Request.Context(), orderID, account.ID, account.IsAdmin())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, view, "order retrieved successfully")
}

// ListMyOrders returns the caller's orders, newest first.
// GET /api/v1/orders
func (c *Controller) ListMyOrders(ctx *gin.Context) {
	account := middleware.CurrentUser(ctx)
	orders, err := c.orderService.ListUserOrders(ctx.Request.Context(), account.ID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// UpdateStatus applies a status transition.
// PUT /api/v1/orders/:id/status
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	placed, err := c.orderService.UpdateStatus(ctx.Request.Context(), orderID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, placed, "order status updated successfully")
}
