/*
Package catalog - product/category/language API controller. Reads are
public; writes are admin only.
*/
package catalog

import (
	"net/http"

	"farmshop/api/response"
	catalogapp "farmshop/application/catalog"
	"farmshop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Catalog controller.
type Controller struct {
	catalogService *catalogapp.Service
}

func NewController(catalogService *catalogapp.Service) *Controller {
	return &Controller{catalogService: catalogService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup, auth, admin gin.HandlerFunc) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("", c.ListProducts)
		productGroup.GET("/:id", c.GetProduct)
		productGroup.POST("", auth, admin, c.CreateProduct)
		productGroup.POST("/:id/translations", auth, admin, c.AddProductTranslation)
		productGroup.POST("/:id/categories/:categoryId", auth, admin, c.AssignCategory)
	}

	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", c.ListCategories)
		categoryGroup.POST("", auth, admin, c.CreateCategory)
		categoryGroup.POST("/:id/translations", auth, admin, c.AddCategoryTranslation)
	}

	languageGroup := router.Group("/languages")
	{
		languageGroup.GET("", c.ListLanguages)
		languageGroup.POST("", auth, admin, c.CreateLanguage)
	}
}

// ListProducts returns every product, translated when the lang query
// parameter names a known language code.
// GET /api/v1/products?lang=en
func (c *Controller) ListProducts(ctx *gin.Context) {
	if lang := ctx.Query("lang"); lang != "" {
		products, err := c.catalogService.ListProductsTranslated(ctx.Request.Context(), lang)
		if err != nil {
			response.HandleAppError(ctx, err)
			return
		}
		response.HandleSuccess(ctx, products, "products retrieved successfully")
		return
	}

	products, err := c.catalogService.ListProducts(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, products, "products retrieved successfully")
}

// GetProduct returns one product.
// GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	product, err := c.catalogService.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, product, "product retrieved successfully")
}

// CreateProduct creates a product.
// POST /api/v1/products
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req catalogapp.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	product, err := c.catalogService.CreateProduct(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, product, "product created successfully")
}

// AddProductTranslation attaches per-language content to a product.
// POST /api/v1/products/:id/translations
func (c *Controller) AddProductTranslation(ctx *gin.Context) {
	var req catalogapp.TranslationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	translation, err := c.catalogService.AddProductTranslation(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, translation, "translation created successfully")
}

// AssignCategory puts a product into a category.
// POST /api/v1/products/:id/categories/:categoryId
func (c *Controller) AssignCategory(ctx *gin.Context) {
	if err := c.catalogService.AssignCategory(ctx.Request.Context(), ctx.Param("id"), ctx.Param("categoryId")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}

// ListCategories returns every category.
// GET /api/v1/categories
func (c *Controller) ListCategories(ctx *gin.Context) {
	categories, err := c.catalogService.ListCategories(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, categories, "categories retrieved successfully")
}

// CreateCategory creates an empty category; names come via translations.
// POST /api/v1/categories
func (c *Controller) CreateCategory(ctx *gin.Context) {
	category, err := c.catalogService.CreateCategory(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, category, "category created successfully")
}

// AddCategoryTranslation attaches a per-language name to a category.
// POST /api/v1/categories/:id/translations
func (c *Controller) AddCategoryTranslation(ctx *gin.Context) {
	var req catalogapp.CategoryTranslationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	translation, err := c.catalogService.AddCategoryTranslation(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, translation, "translation created successfully")
}

// ListLanguages returns the supported languages.
// GET /api/v1/languages
func (c *Controller) ListLanguages(ctx *gin.Context) {
	languages, err := c.catalogService.ListLanguages(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, languages, "languages retrieved successfully")
}

// CreateLanguage adds a supported language.
// POST /api/v1/languages
func (c *Controller) CreateLanguage(ctx *gin.Context) {
	var req catalogapp.LanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	language, err := c.catalogService.CreateLanguage(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, language, "language created successfully")
}
