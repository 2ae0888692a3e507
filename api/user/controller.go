/*
Package user - account API controller: registration, login, logout and
the current-account endpoint.
*/
package user

import (
	"net/http"

	"farmshop/api/middleware"
	"farmshop/api/response"
	userapp "farmshop/application/user"

	"github.com/gin-gonic/gin"
)

// Controller User controller.
type Controller struct {
	userService *userapp.Service
}

func NewController(userService *userapp.Service) *Controller {
	return &Controller{userService: userService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("", c.Register)
		userGroup.POST("/login", c.Login)
		userGroup.POST("/logout", auth, c.Logout)
		userGroup.GET("/me", auth, c.Me)
	}
}

// Register creates a standard account.
// POST /api/v1/users
func (c *Controller) Register(ctx *gin.Context) {
	var req userapp.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	account, err := c.userService.Register(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, account, "user created successfully")
}

// Login verifies credentials and issues a bearer token.
// POST /api/v1/users/login
func (c *Controller) Login(ctx *gin.Context) {
	var req userapp.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.userService.Login(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "login successful")
}

// Logout revokes the caller's tokens.
// POST /api/v1/users/logout
func (c *Controller) Logout(ctx *gin.Context) {
	account := middleware.CurrentUser(ctx)
	if err := c.userService.Logout(ctx.Request.Context(), account.ID); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}

// Me returns the authenticated account.
// GET /api/v1/users/me
func (c *Controller) Me(ctx *gin.Context) {
	response.HandleSuccess(ctx, middleware.CurrentUser(ctx), "user retrieved successfully")
}
