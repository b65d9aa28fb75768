package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/pdf"
)

func sampleSheet() *dto.PresentationDetailResponse {
	return &dto.PresentationDetailResponse{
		Presentation: dto.PresentationResponse{
			ID: 100, Name: "Ariel Revit Polvo", Content: "1000 g", Active: true,
			ProductID: 10, ProductName: "Ariel Revit", BrandName: "Ariel",
			CategoryName: "Aseo", CategorySlug: "aseo",
		},
		PriceTiers: []dto.PriceTierResponse{
			{MinQuantity: 1, Price: decimal.NewFromInt(15900), PriceLabel: "$15.900"},
			{MinQuantity: 12, Price: decimal.NewFromInt(14900), PriceLabel: "$14.900"},
		},
		Related: []dto.VariantResponse{
			{PresentationID: 101, Brand: "Ariel", Name: "Ariel Líquido", Content: "1 L", StartingPriceLabel: "$21.000"},
		},
	}
}

func TestGeneratePriceSheet_ConQR(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("Catálogo", "https://tienda.test/")

	out, err := g.GeneratePriceSheet(context.Background(), sampleSheet())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePriceSheet_SinEscalonesNiURL(t *testing.T) {
	sheet := sampleSheet()
	sheet.PriceTiers = nil
	sheet.Related = nil
	sheet.Presentation.Active = false

	out, err := pdf.NewMarotoPDFGenerator("Catálogo", "").GeneratePriceSheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePriceSheet_Nil(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator("Catálogo", "").GeneratePriceSheet(context.Background(), nil)
	assert.Error(t, err)
}
