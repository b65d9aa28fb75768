package catalog

import (
	"context"
	"fmt"
)

// PriceSheetUseCase ficha de precios descargable de una presentación.
type PriceSheetUseCase struct {
	catalog   *CatalogUseCase
	generator PriceSheetGenerator
}

// NewPriceSheetUseCase construye el caso de uso.
func NewPriceSheetUseCase(catalog *CatalogUseCase, generator PriceSheetGenerator) *PriceSheetUseCase {
	return &PriceSheetUseCase{catalog: catalog, generator: generator}
}

// Download genera el PDF de la presentación id.
//
// Retorna:
//   - (pdfBytes, filename, nil)      si todo sale bien.
//   - domain.ErrNotFound             si la presentación no existe.
//   - domain.ErrStoreUnavailable     si el catálogo no responde.
func (uc *PriceSheetUseCase) Download(ctx context.Context, id int64) ([]byte, string, error) {
	detail, err := uc.catalog.GetPresentation(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GeneratePriceSheet(ctx, detail)
	if err != nil {
		return nil, "", fmt.Errorf("ficha de precios: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("ficha-%d.pdf", id), nil
}
