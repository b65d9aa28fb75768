package catalog

import (
	"errors"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/pkg/logger"
	"github.com/jhoicas/catalogo-web/pkg/money"
)

// logDegraded registra una lectura fallida. Almacén ausente es Warn; cualquier otro fallo es Error.
func logDegraded(log *logger.Logger, op string, err error) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		log.Warn().Err(err).Str("op", op).Msg("catálogo no disponible, respuesta degradada")
		return
	}
	log.Error().Err(err).Str("op", op).Msg("falló la lectura del catálogo, respuesta degradada")
}

// unavailable normaliza cualquier fallo de lectura a domain.ErrStoreUnavailable, salvo NotFound.
func unavailable(err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return errors.Join(domain.ErrStoreUnavailable, err)
}

func optionalImage(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toProductItem(p entity.ProductSummary) dto.ProductItemResponse {
	return dto.ProductItemResponse{
		ProductID:          p.ID,
		Name:               p.Name,
		CategoryName:       p.CategoryName,
		CategorySlug:       p.CategorySlug,
		Image:              optionalImage(p.Image),
		StartingPrice:      p.StartingPrice,
		StartingPriceLabel: money.FormatNullCOP(p.StartingPrice),
		BrandCount:         p.BrandCount,
	}
}

func toCategories(cats []entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{Name: c.Name, Slug: c.Slug})
	}
	return out
}

func toPriceTiers(tiers []entity.PriceTier) []dto.PriceTierResponse {
	out := make([]dto.PriceTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, dto.PriceTierResponse{
			MinQuantity: t.MinQuantity,
			Price:       t.Price,
			PriceLabel:  money.FormatCOP(t.Price),
		})
	}
	return out
}

func toVariant(v entity.Variant) dto.VariantResponse {
	out := dto.VariantResponse{
		PresentationID:     v.PresentationID,
		Brand:              v.Brand,
		Name:               v.Name,
		Content:            v.Content,
		Image:              optionalImage(v.Image),
		StartingPrice:      v.StartingPrice,
		StartingPriceLabel: money.FormatNullCOP(v.StartingPrice),
	}
	if v.PriceTiers != nil {
		out.PriceTiers = toPriceTiers(v.PriceTiers)
	}
	return out
}

func toVariants(vs []entity.Variant) []dto.VariantResponse {
	out := make([]dto.VariantResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVariant(v))
	}
	return out
}

func toPresentation(p *entity.PresentationDetail) dto.PresentationResponse {
	return dto.PresentationResponse{
		ID:           p.ID,
		Name:         p.Name,
		Content:      p.Content,
		Image:        optionalImage(p.Image),
		Active:       p.Active,
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		BrandID:      p.BrandID,
		BrandName:    p.BrandName,
		CategoryName: p.Category.Name,
		CategorySlug: p.Category.Slug,
	}
}
