package mocks

import (
	"context"
	"sync"

	"farmshop/domain/catalog"
)

// CatalogRepository In-memory implementation of the catalog repository.
type CatalogRepository struct {
	mu                   sync.RWMutex
	products             map[string]*catalog.Product
	productTranslations  []catalog.ProductTranslation
	categories           map[string]*catalog.Category
	categoryTranslations []catalog.CategoryTranslation
	assignments          []catalog.ProductCategory
	languages            map[string]*catalog.Language
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products:   make(map[string]*catalog.Product),
		categories: make(map[string]*catalog.Category),
		languages:  make(map[string]*catalog.Language),
	}
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *CatalogRepository) FindProduct(ctx context.Context, id string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, exists := r.products[id]
	if !exists {
		return nil, catalog.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, *p)
	}
	return products, nil
}

func (r *CatalogRepository) CreateProductTranslation(ctx context.Context, t *catalog.ProductTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.productTranslations = append(r.productTranslations, *t)
	return nil
}

func (r *CatalogRepository) ListProductsWithTranslation(ctx context.Context, languageCode string) ([]catalog.ProductWithTranslation, error) {
	language, err := r.FindLanguageByCode(ctx, languageCode)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byProduct := make(map[string]*catalog.ProductTranslation)
	for i := range r.productTranslations {
		t := &r.productTranslations[i]
		if t.LanguageID == language.ID {
			byProduct[t.ProductID] = t
		}
	}

	result := make([]catalog.ProductWithTranslation, 0, len(r.products))
	for _, p := range r.products {
		entry := catalog.ProductWithTranslation{Product: *p}
		if t, ok := byProduct[p.ID]; ok {
			copied := *t
			entry.Translation = &copied
		}
		result = append(result, entry)
	}
	return result, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *catalog.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]catalog.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *CatalogRepository) CreateCategoryTranslation(ctx context.Context, t *catalog.CategoryTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categoryTranslations = append(r.categoryTranslations, *t)
	return nil
}

func (r *CatalogRepository) AssignProductCategory(ctx context.Context, pc *catalog.ProductCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments = append(r.assignments, *pc)
	return nil
}

func (r *CatalogRepository) CreateLanguage(ctx context.Context, l *catalog.Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *l
	r.languages[l.ID] = &copied
	return nil
}

func (r *CatalogRepository) ListLanguages(ctx context.Context) ([]catalog.Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	languages := make([]catalog.Language, 0, len(r.languages))
	for _, l := range r.languages {
		languages = append(languages, *l)
	}
	return languages, nil
}

func (r *CatalogRepository) FindLanguageByCode(ctx context.Context, code string) (*catalog.Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.languages {
		if l.Code == code {
			copied := *l
			return &copied, nil
		}
	}
	return nil, catalog.ErrLanguageNotFound
}

var _ catalog.Repository = (*CatalogRepository)(nil)
