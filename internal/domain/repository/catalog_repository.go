package repository

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado. Campos vacíos no filtran.
type ProductFilter struct {
	Query        string // texto libre, coincidencia parcial sin distinguir mayúsculas
	CategorySlug string
}

// CatalogRepository puerto de lectura del catálogo. Ninguna operación escribe.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CountProducts(ctx context.Context, f ProductFilter) (int, error)
	ListProducts(ctx context.Context, f ProductFilter, limit, offset int) ([]entity.ProductSummary, error)
	// GetProduct devuelve (nil, nil) si el producto no existe.
	GetProduct(ctx context.Context, id int64) (*entity.ProductWithCategory, error)
	ListVariants(ctx context.Context, productID int64) ([]entity.Variant, error)
	ListPriceTiers(ctx context.Context, presentationIDs ...int64) (map[int64][]entity.PriceTier, error)
	// GetPresentation no filtra por activo. Devuelve (nil, nil) si no existe.
	GetPresentation(ctx context.Context, id int64) (*entity.PresentationDetail, error)
	ListRelated(ctx context.Context, productID, excludeID int64, limit int) ([]entity.Variant, error)
	ListCategoryProducts(ctx context.Context, categorySlug string) ([]entity.CategoryProduct, error)
	ListProductIDs(ctx context.Context, limit int) ([]int64, error)
}
