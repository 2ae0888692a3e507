/*
Package catalog exposes the product/category/language surface. All
operations are thin wrappers over the repository; the only logic here is
translation lookup by language code.
*/
package catalog

import (
	"context"
	"errors"

	"farmshop/domain/catalog"
	apperrors "farmshop/pkg/errors"

	"github.com/google/uuid"
)

// Service Catalog application service.
type Service struct {
	repo catalog.Repository
}

func NewService(repo catalog.Repository) *Service {
	return &Service{repo: repo}
}

// ProductRequest New product payload.
type ProductRequest struct {
	Price  float64  `json:"price" binding:"required,gte=0"`
	Images []string `json:"images"`
}

// TranslationRequest Per-language product content payload.
type TranslationRequest struct {
	LanguageID  string `json:"languageID" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Ingredients string `json:"ingredients"`
}

func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*catalog.Product, error) {
	product := &catalog.Product{
		ID:     uuid.NewString(),
		Price:  req.Price,
		Images: req.Images,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, apperrors.ProductNotFound(id)
		}
		return nil, err
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return s.repo.ListProducts(ctx)
}

// ListProductsTranslated returns every product with its content in the
// given language; the language code must be known.
func (s *Service) ListProductsTranslated(ctx context.Context, languageCode string) ([]catalog.ProductWithTranslation, error) {
	if _, err := s.repo.FindLanguageByCode(ctx, languageCode); err != nil {
		if errors.Is(err, catalog.ErrLanguageNotFound) {
			return nil, apperrors.NotFound("language not found: " + languageCode)
		}
		return nil, err
	}
	return s.repo.ListProductsWithTranslation(ctx, languageCode)
}

func (s *Service) AddProductTranslation(ctx context.Context, productID string, req TranslationRequest) (*catalog.ProductTranslation, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	translation := &catalog.ProductTranslation{
		ID:          uuid.NewString(),
		ProductID:   productID,
		LanguageID:  req.LanguageID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		Ingredients: req.Ingredients,
	}
	if err := s.repo.CreateProductTranslation(ctx, translation); err != nil {
		return nil, err
	}
	return translation, nil
}

func (s *Service) CreateCategory(ctx context.Context) (*catalog.Category, error) {
	category := &catalog.Category{ID: uuid.NewString()}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CategoryTranslationRequest Per-language category name payload.
type CategoryTranslationRequest struct {
	LanguageID string `json:"languageID" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

func (s *Service) AddCategoryTranslation(ctx context.Context, categoryID string, req CategoryTranslationRequest) (*catalog.CategoryTranslation, error) {
	translation := &catalog.CategoryTranslation{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		LanguageID: req.LanguageID,
		Name:       req.Name,
	}
	if err := s.repo.CreateCategoryTranslation(ctx, translation); err != nil {
		return nil, err
	}
	return translation, nil
}

// AssignCategory puts a product into a category.
func (s *Service) AssignCategory(ctx context.Context, productID, categoryID string) error {
	return s.repo.AssignProductCategory(ctx, &catalog.ProductCategory{
		ID:         uuid.NewString(),
		ProductID:  productID,
		CategoryID: categoryID,
	})
}

// LanguageRequest New language payload.
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

func (s *Service) CreateLanguage(ctx context.Context, req LanguageRequest) (*catalog.Language, error) {
	language := &catalog.Language{
		ID:       uuid.NewString(),
		Language: req.Language,
		Code:     req.Code,
	}
	if err := s.repo.CreateLanguage(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

func (s *Service) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	return s.repo.ListLanguages(ctx)
}
