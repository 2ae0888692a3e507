package mysql

import (
	"context"
	"errors"

	"farmshop/domain/catalog"

	"gorm.io/gorm"
)

// CatalogRepository MySQL/GORM implementation of the catalog repository.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) FindProduct(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) CreateProductTranslation(ctx context.Context, t *catalog.ProductTranslation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListProductsWithTranslation joins products with their content in the
// given language. Two queries instead of a SQL join keeps the result
// mapping trivial; products without a translation get a nil one.
func (r *CatalogRepository) ListProductsWithTranslation(ctx context.Context, languageCode string) ([]catalog.ProductWithTranslation, error) {
	language, err := r.FindLanguageByCode(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	products, err := r.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	var translations []catalog.ProductTranslation
	if err := r.db.WithContext(ctx).
		Where("language_id = ?", language.ID).
		Find(&translations).Error; err != nil {
		return nil, err
	}
	byProduct := make(map[string]*catalog.ProductTranslation, len(translations))
	for i := range translations {
		byProduct[translations[i].ProductID] = &translations[i]
	}

	result := make([]catalog.ProductWithTranslation, len(products))
	for i, p := range products {
		result[i] = catalog.ProductWithTranslation{
			Product:     p,
			Translation: byProduct[p.ID],
		}
	}
	return result, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *catalog.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) CreateCategoryTranslation(ctx context.Context, t *catalog.CategoryTranslation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *CatalogRepository) AssignProductCategory(ctx context.Context, pc *catalog.ProductCategory) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *CatalogRepository) CreateLanguage(ctx context.Context, l *catalog.Language) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *CatalogRepository) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	var languages []catalog.Language
	if err := r.db.WithContext(ctx).Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *CatalogRepository) FindLanguageByCode(ctx context.Context, code string) (*catalog.Language, error) {
	var language catalog.Language
	if err := r.db.WithContext(ctx).First(&language, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrLanguageNotFound
		}
		return nil, err
	}
	return &language, nil
}

var _ catalog.Repository = (*CatalogRepository)(nil)
