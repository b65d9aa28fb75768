// Package catalog casos de uso de lectura del catálogo: listado, detalle, grupos, ficha y sitemap.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/catalog"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// RelatedLimit máximo de presentaciones relacionadas en el detalle.
const RelatedLimit = 6

// CatalogUseCase listado paginado y consultas de detalle.
type CatalogUseCase struct {
	store    ReadRunner
	log      *logger.Logger
	pageSize int
}

// NewCatalogUseCase construye el caso de uso. pageSize <= 0 usa catalog.DefaultPageSize.
func NewCatalogUseCase(store ReadRunner, log *logger.Logger, pageSize int) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{store: store, log: log, pageSize: pageSize}
}

// PageSize tamaño de página configurado.
func (uc *CatalogUseCase) PageSize() int { return uc.pageSize }

// List devuelve una página del listado filtrado. Nunca falla: si el almacén no responde
// devuelve un listado vacío con StoreUnavailable.
func (uc *CatalogUseCase) List(ctx context.Context, in dto.ListProductsRequest) *dto.ListingResponse {
	filter := repository.ProductFilter{
		Query:        strings.TrimSpace(in.Query),
		CategorySlug: strings.TrimSpace(in.Category),
	}

	var resp *dto.ListingResponse
	err := uc.store.Read(ctx, func(repo repository.CatalogRepository) error {
		cats, err := repo.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("listar categorías: %w", err)
		}
		total, err := repo.CountProducts(ctx, filter)
		if err != nil {
			return fmt.Errorf("contar productos: %w", err)
		}
		page := catalog.NewPage(catalog.ParsePage(in.Page), uc.pageSize, total)
		rows, err := repo.ListProducts(ctx, filter, page.Size, page.Offset)
		if err != nil {
			return fmt.Errorf("listar productos: %w", err)
		}

		items := make([]dto.ProductItemResponse, 0, len(rows))
		for _, p := range rows {
			items = append(items, toProductItem(p))
		}
		resp = &dto.ListingResponse{
			Categories:     toCategories(cats),
			Items:          items,
			Page:           page.Number,
			TotalPages:     page.TotalPages,
			Query:          filter.Query,
			CategoryFilter: filter.CategorySlug,
			TotalCount:     total,
		}
		return nil
	})
	if err != nil {
		logDegraded(uc.log, "catalog.List", err)
		return &dto.ListingResponse{
			Categories:       []dto.CategoryResponse{},
			Items:            []dto.ProductItemResponse{},
			Page:             1,
			TotalPages:       1,
			Query:            filter.Query,
			CategoryFilter:   filter.CategorySlug,
			StoreUnavailable: true,
		}
	}
	return resp
}

// GetProduct devuelve el producto con sus variantes activas; withTiers adjunta los escalones
// de cada variante. Errores: domain.ErrNotFound, domain.ErrStoreUnavailable.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int64, withTiers bool) (*dto.ProductDetailResponse, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	var out *dto.ProductDetailResponse
	err := uc.store.Read(ctx, func(repo repository.CatalogRepository) error {
		p, err := repo.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("obtener producto: %w", err)
		}
		if p == nil {
			return domain.ErrNotFound
		}
		variants, err := repo.ListVariants(ctx, id)
		if err != nil {
			return fmt.Errorf("listar variantes: %w", err)
		}
		if withTiers && len(variants) > 0 {
			ids := make([]int64, 0, len(variants))
			for _, v := range variants {
				ids = append(ids, v.PresentationID)
			}
			tiers, err := repo.ListPriceTiers(ctx, ids...)
			if err != nil {
				return fmt.Errorf("listar escalones: %w", err)
			}
			for i := range variants {
				t := tiers[variants[i].PresentationID]
				if t == nil {
					t = []entity.PriceTier{}
				}
				variants[i].PriceTiers = t
			}
		}
		out = &dto.ProductDetailResponse{
			Product: dto.ProductResponse{
				ID:           p.ID,
				Name:         p.Name,
				CategoryName: p.Category.Name,
				CategorySlug: p.Category.Slug,
			},
			Variants: toVariants(variants),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		logDegraded(uc.log, "catalog.GetProduct", err)
		return nil, unavailable(err)
	}
	return out, nil
}

// GetPresentation detalle de una presentación (aunque esté inactiva) con sus escalones
// y hasta RelatedLimit presentaciones activas del mismo producto.
func (uc *CatalogUseCase) GetPresentation(ctx context.Context, id int64) (*dto.PresentationDetailResponse, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	var out *dto.PresentationDetailResponse
	err := uc.store.Read(ctx, func(repo repository.CatalogRepository) error {
		p, err := repo.GetPresentation(ctx, id)
		if err != nil {
			return fmt.Errorf("obtener presentación: %w", err)
		}
		if p == nil {
			return domain.ErrNotFound
		}
		tiers, err := repo.ListPriceTiers(ctx, id)
		if err != nil {
			return fmt.Errorf("listar escalones: %w", err)
		}
		related, err := repo.ListRelated(ctx, p.ProductID, id, RelatedLimit)
		if err != nil {
			return fmt.Errorf("listar relacionadas: %w", err)
		}
		out = &dto.PresentationDetailResponse{
			Presentation: toPresentation(p),
			PriceTiers:   toPriceTiers(tiers[id]),
			Related:      toVariants(related),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		logDegraded(uc.log, "catalog.GetPresentation", err)
		return nil, unavailable(err)
	}
	return out, nil
}
