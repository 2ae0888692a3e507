/*
Package address - saved-address API controller.
*/
package address

import (
	"net/http"

	"farmshop/api/middleware"
	"farmshop/api/response"
	userapp "farmshop/application/user"
	"farmshop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Address controller.
type Controller struct {
	userService *userapp.Service
}

func NewController(userService *userapp.Service) *Controller {
	return &Controller{userService: userService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	addressGroup := router.Group("/addresses", auth)
	{
		addressGroup.POST("", c.Create)
		addressGroup.GET("", c.List)
		addressGroup.DELETE("/:id", c.Delete)
	}
}

// Create saves an address for the caller.
// POST /api/v1/addresses
func (c *Controller) Create(ctx *gin.Context) {
	var req userapp.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	account := middleware.CurrentUser(ctx)
	address, err := c.userService.CreateAddress(ctx.Request.Context(), account.ID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, address, "address created successfully")
}

// List returns the caller's saved addresses.
// GET /api/v1/addresses
func (c *Controller) List(ctx *gin.Context) {
	account := middleware.CurrentUser(ctx)
	addresses, err := c.userService.ListAddresses(ctx.Request.Context(), account.ID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, addresses, "addresses retrieved successfully")
}

// Delete soft-deletes a saved address.
// DELETE /api/v1/addresses/:id
func (c *Controller) Delete(ctx *gin.Context) {
	addressID := ctx.Param("id")
	if addressID == "" {
		response.HandleError(ctx, errors.BadRequest("address ID is required"), "address ID is required", http.StatusBadRequest)
		return
	}

	if err := c.userService.DeleteAddress(ctx.Request.Context(), addressID); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
