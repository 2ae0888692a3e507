package catalog

import "context"

// Repository Persistence boundary for the catalog.
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	FindProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProductTranslation(ctx context.Context, t *ProductTranslation) error
	// ListProductsWithTranslation joins every product with its content in
	// the language identified by code; products without a translation are
	// returned with a nil translation.
	ListProductsWithTranslation(ctx context.Context, languageCode string) ([]ProductWithTranslation, error)

	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategoryTranslation(ctx context.Context, t *CategoryTranslation) error
	AssignProductCategory(ctx context.Context, pc *ProductCategory) error

	CreateLanguage(ctx context.Context, l *Language) error
	ListLanguages(ctx context.Context) ([]Language, error)
	FindLanguageByCode(ctx context.Context, code string) (*Language, error)
}
