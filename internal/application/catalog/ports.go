package catalog

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

// ReadRunner abre un ámbito de solo lectura sobre el catálogo y entrega el repositorio a fn.
// Si el almacén no está disponible devuelve un error que envuelve domain.ErrStoreUnavailable.
type ReadRunner interface {
	Read(ctx context.Context, fn func(repo repository.CatalogRepository) error) error
}

// PriceSheetGenerator genera la ficha de precios (PDF) de una presentación.
type PriceSheetGenerator interface {
	GeneratePriceSheet(ctx context.Context, sheet *dto.PresentationDetailResponse) ([]byte, error)
}

// SitemapEntry ruta pública a publicar en el sitemap (relativa a la URL base).
type SitemapEntry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// SitemapBuilder serializa entradas a un documento urlset.
type SitemapBuilder interface {
	Build(baseURL string, entries []SitemapEntry) ([]byte, error)
}
