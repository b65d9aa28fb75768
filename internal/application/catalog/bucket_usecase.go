package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain/catalog"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/pkg/logger"
	"github.com/jhoicas/catalogo-web/pkg/money"
)

// BucketUseCase página agrupada de una categoría curada.
type BucketUseCase struct {
	store        ReadRunner
	log          *logger.Logger
	categorySlug string
	classifier   catalog.Classifier
}

// NewBucketUseCase construye el caso de uso para la categoría categorySlug.
func NewBucketUseCase(store ReadRunner, log *logger.Logger, categorySlug string, classifier catalog.Classifier) *BucketUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BucketUseCase{store: store, log: log, categorySlug: categorySlug, classifier: classifier}
}

// CategorySlug categoría que agrupa este caso de uso.
func (uc *BucketUseCase) CategorySlug() string { return uc.categorySlug }

// Buckets clasifica los productos de la categoría. Ante cualquier fallo devuelve
// una lista vacía con StoreUnavailable.
func (uc *BucketUseCase) Buckets(ctx context.Context) *dto.BucketedListingResponse {
	var buckets []catalog.Bucket
	err := uc.store.Read(ctx, func(repo repository.CatalogRepository) error {
		products, err := repo.ListCategoryProducts(ctx, uc.categorySlug)
		if err != nil {
			return fmt.Errorf("listar productos de %s: %w", uc.categorySlug, err)
		}
		buckets = uc.classifier.Classify(products)
		return nil
	})
	if err != nil {
		logDegraded(uc.log, "catalog.Buckets", err)
		return &dto.BucketedListingResponse{Buckets: []dto.BucketResponse{}, StoreUnavailable: true}
	}

	out := make([]dto.BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		items := make([]dto.BucketItemResponse, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, dto.BucketItemResponse{
				ProductID:          it.ProductID,
				Name:               it.Name,
				Image:              it.Image,
				StartingPrice:      it.StartingPrice,
				StartingPriceLabel: money.FormatNullCOP(it.StartingPrice),
			})
		}
		out = append(out, dto.BucketResponse{Slug: b.Slug, Title: b.Title, Items: items})
	}
	return &dto.BucketedListingResponse{Buckets: out}
}
