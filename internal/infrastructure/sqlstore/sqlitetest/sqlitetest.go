// Package sqlitetest construye catálogos SQLite temporales para pruebas.
package sqlitetest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore/seed"
)

// IDs del fixture referenciados por las pruebas.
const (
	ProductArielRevit   int64 = 10
	ProductDetergenteX  int64 = 11
	ProductLavaloza     int64 = 12
	ProductCloro        int64 = 13
	ProductAmbientador  int64 = 14
	ProductSoloInactivo int64 = 15

	PresentationArielPolvo   int64 = 100
	PresentationDXPolvo      int64 = 110
	PresentationDXLiquido    int64 = 111
	PresentationDXInactiva   int64 = 112
	PresentationSoloInactivo int64 = 150
	BebidasCount                   = 20
	ListedProductsCount            = 5 + BebidasCount
)

// NewCatalog escribe ds en un archivo temporal y devuelve su ruta.
func NewCatalog(t testing.TB, ds seed.Dataset) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogo.db")
	require.NoError(t, seed.WriteSQLite(context.Background(), path, ds))
	return path
}

// NewFixtureCatalog catálogo estándar de pruebas (ver Fixture).
func NewFixtureCatalog(t testing.TB) string {
	t.Helper()
	return NewCatalog(t, Fixture())
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Fixture dataset de pruebas:
//   - aseo: Ariel Revit, Detergente X (una presentación inactiva de Clorox), Lavaloza Crema,
//     Cloro (sin escalones), Ambientador (sin marca ni imagen), Escoba vieja (solo inactiva).
//   - bebidas: 20 productos "Bebida 01".."Bebida 20".
//   - lacteos: sin productos.
func Fixture() seed.Dataset {
	ds := seed.Dataset{
		Categories: []entity.Category{
			{ID: 1, Name: "Aseo", Slug: "aseo"},
			{ID: 2, Name: "Bebidas", Slug: "bebidas"},
			{ID: 3, Name: "Lácteos", Slug: "lacteos"},
		},
		Brands: []entity.Brand{
			{ID: 1, Name: "Ariel"},
			{ID: 2, Name: "Axion"},
			{ID: 3, Name: "Clorox"},
			{ID: 4, Name: "Postobón"},
			{ID: 5, Name: "Downy"},
		},
		Products: []entity.Product{
			{ID: ProductArielRevit, Name: "Ariel Revit", CategoryID: 1},
			{ID: ProductDetergenteX, Name: "Detergente X", CategoryID: 1},
			{ID: ProductLavaloza, Name: "Lavaloza Crema", CategoryID: 1},
			{ID: ProductCloro, Name: "Cloro", CategoryID: 1},
			{ID: ProductAmbientador, Name: "Ambientador", CategoryID: 1},
			{ID: ProductSoloInactivo, Name: "Escoba vieja", CategoryID: 1},
		},
		Presentations: []entity.Presentation{
			{ID: PresentationArielPolvo, ProductID: ProductArielRevit, BrandID: 1, Name: "Ariel Revit Polvo", Content: "1000 g", Image: "ariel.jpg", Active: true},
			{ID: PresentationDXPolvo, ProductID: ProductDetergenteX, BrandID: 1, Name: "Polvo Floral", Content: "500 g", Active: true},
			{ID: PresentationDXLiquido, ProductID: ProductDetergenteX, BrandID: 5, Name: "Líquido", Content: "1 L", Image: "dx.jpg", Active: true},
			{ID: PresentationDXInactiva, ProductID: ProductDetergenteX, BrandID: 3, Name: "Viejo", Content: "2 L", Image: "old.jpg", Active: false},
			{ID: 120, ProductID: ProductLavaloza, BrandID: 2, Name: "Axion Limón", Content: "450 g", Image: "axion.jpg", Active: true},
			{ID: 130, ProductID: ProductCloro, BrandID: 3, Name: "Cloro Original", Content: "1 L", Active: true},
			{ID: 140, ProductID: ProductAmbientador, Name: "Lavanda", Content: "400 ml", Active: true},
			{ID: PresentationSoloInactivo, ProductID: ProductSoloInactivo, Name: "Escoba", Image: "escoba.jpg", Active: false},
		},
		PriceTiers: []entity.PriceTier{
			{PresentationID: PresentationArielPolvo, MinQuantity: 12, Price: price(14900)},
			{PresentationID: PresentationArielPolvo, MinQuantity: 1, Price: price(15900)},
			{PresentationID: PresentationDXPolvo, MinQuantity: 1, Price: price(9000)},
			{PresentationID: PresentationDXPolvo, MinQuantity: 6, Price: price(8500)},
			{PresentationID: PresentationDXLiquido, MinQuantity: 1, Price: price(12000)},
			{PresentationID: PresentationDXInactiva, MinQuantity: 1, Price: price(100)},
			{PresentationID: 120, MinQuantity: 1, Price: price(6500)},
			{PresentationID: 120, MinQuantity: 24, Price: price(5900)},
			{PresentationID: 140, MinQuantity: 1, Price: price(7000)},
			{PresentationID: PresentationSoloInactivo, MinQuantity: 1, Price: price(50)},
		},
	}
	for i := 1; i <= BebidasCount; i++ {
		productID := int64(200 + i)
		presID := int64(2000 + i)
		ds.Products = append(ds.Products, entity.Product{
			ID: productID, Name: fmt.Sprintf("Bebida %02d", i), CategoryID: 2,
		})
		ds.Presentations = append(ds.Presentations, entity.Presentation{
			ID: presID, ProductID: productID, BrandID: 4, Name: "Botella", Content: "400 ml", Active: true,
		})
		ds.PriceTiers = append(ds.PriceTiers, entity.PriceTier{
			PresentationID: presID, MinQuantity: 1, Price: price(2000 + int64(i)*100),
		})
	}
	return ds
}
