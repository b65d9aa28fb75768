package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore/sqlitetest"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func openFixture(t *testing.T) *sqlstore.Store {
	t.Helper()
	store, err := sqlstore.OpenSQLite(sqlitetest.NewFixtureCatalog(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func openMissing(t *testing.T) *sqlstore.Store {
	t.Helper()
	store, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "no-existe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// brokenRunner simula un almacén que abre pero cuyas consultas fallan.
type brokenRunner struct{}

type brokenRepo struct {
	repository.CatalogRepository
}

var errBoom = errors.New("no such table: product")

func (brokenRepo) ListCategories(context.Context) ([]entity.Category, error) { return nil, errBoom }
func (brokenRepo) GetProduct(context.Context, int64) (*entity.ProductWithCategory, error) {
	return nil, errBoom
}
func (brokenRepo) ListCategoryProducts(context.Context, string) ([]entity.CategoryProduct, error) {
	return nil, errBoom
}

func (brokenRunner) Read(_ context.Context, fn func(repo repository.CatalogRepository) error) error {
	return fn(brokenRepo{})
}

func itemNames(items []dto.ProductItemResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestList_SegundaPaginaDeBebidas(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	resp := uc.List(context.Background(), dto.ListProductsRequest{Category: "bebidas", Page: "2"})

	assert.False(t, resp.StoreUnavailable)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, sqlitetest.BebidasCount, resp.TotalCount)
	assert.Equal(t, "bebidas", resp.CategoryFilter)
	assert.Equal(t, []string{"Bebida 17", "Bebida 18", "Bebida 19", "Bebida 20"}, itemNames(resp.Items))
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, "Aseo", resp.Categories[0].Name)
}

func TestList_PaginaFueraDeRangoSeAcota(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	for _, raw := range []string{"99", "abc", "-3", ""} {
		resp := uc.List(context.Background(), dto.ListProductsRequest{Category: "bebidas", Page: raw})
		assert.GreaterOrEqual(t, resp.Page, 1, raw)
		assert.LessOrEqual(t, resp.Page, resp.TotalPages, raw)
	}
	resp := uc.List(context.Background(), dto.ListProductsRequest{Category: "bebidas", Page: "99"})
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Items, 4)
}

func TestList_BusquedaPorNombreYMarca(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 0)
	assert.Equal(t, 24, uc.PageSize())

	resp := uc.List(context.Background(), dto.ListProductsRequest{Query: "  ARIEL "})

	assert.Equal(t, "ARIEL", resp.Query)
	assert.Equal(t, 2, resp.TotalCount)
	require.Equal(t, []string{"Ariel Revit", "Detergente X"}, itemNames(resp.Items))

	ariel := resp.Items[0]
	assert.True(t, ariel.StartingPrice.Valid)
	assert.True(t, ariel.StartingPrice.Decimal.Equal(decimal.NewFromInt(14900)))
	assert.Equal(t, "$14.900", ariel.StartingPriceLabel)
	require.NotNil(t, ariel.Image)
	assert.Equal(t, "ariel.jpg", *ariel.Image)

	dx := resp.Items[1]
	assert.Equal(t, 2, dx.BrandCount)
	require.NotNil(t, dx.Image)
	assert.Equal(t, "dx.jpg", *dx.Image)
}

func TestList_SinCoincidencias(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	resp := uc.List(context.Background(), dto.ListProductsRequest{Query: "zzz"})

	assert.False(t, resp.StoreUnavailable)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestList_AlmacenAusenteDegrada(t *testing.T) {
	var buf bytes.Buffer
	uc := catalog.NewCatalogUseCase(openMissing(t), logger.NewWithWriter(&buf, "debug"), 16)

	resp := uc.List(context.Background(), dto.ListProductsRequest{Query: "ariel", Page: "3"})

	assert.True(t, resp.StoreUnavailable)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.Categories)
	assert.Equal(t, 0, resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestList_FalloDeConsultaDegrada(t *testing.T) {
	var buf bytes.Buffer
	uc := catalog.NewCatalogUseCase(brokenRunner{}, logger.NewWithWriter(&buf, "debug"), 16)

	resp := uc.List(context.Background(), dto.ListProductsRequest{})

	assert.True(t, resp.StoreUnavailable)
	assert.Empty(t, resp.Items)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "no such table")
}

func TestGetProduct_VariantesActivasConEscalones(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	out, err := uc.GetProduct(context.Background(), sqlitetest.ProductDetergenteX, true)
	require.NoError(t, err)

	assert.Equal(t, "Detergente X", out.Product.Name)
	assert.Equal(t, "aseo", out.Product.CategorySlug)
	require.Len(t, out.Variants, 2)
	assert.Equal(t, "Ariel", out.Variants[0].Brand)
	assert.Equal(t, sqlitetest.PresentationDXPolvo, out.Variants[0].PresentationID)
	assert.Equal(t, "Downy", out.Variants[1].Brand)

	tiers := out.Variants[0].PriceTiers
	require.Len(t, tiers, 2)
	assert.Equal(t, 1, tiers[0].MinQuantity)
	assert.Equal(t, 6, tiers[1].MinQuantity)
	assert.Equal(t, "$8.500", tiers[1].PriceLabel)
	assert.True(t, out.Variants[0].StartingPrice.Decimal.Equal(decimal.NewFromInt(8500)))
}

func TestGetProduct_SinEscalonesPorDefecto(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	out, err := uc.GetProduct(context.Background(), sqlitetest.ProductArielRevit, false)
	require.NoError(t, err)
	require.Len(t, out.Variants, 1)
	assert.Nil(t, out.Variants[0].PriceTiers)
}

func TestGetProduct_Errores(t *testing.T) {
	ctx := context.Background()

	_, err := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16).GetProduct(ctx, 9999, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.NewCatalogUseCase(openMissing(t), logger.Nop(), 16).GetProduct(ctx, sqlitetest.ProductArielRevit, false)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.NewCatalogUseCase(brokenRunner{}, logger.Nop(), 16).GetProduct(ctx, sqlitetest.ProductArielRevit, false)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestGetPresentation_InactivaVisibleConRelacionadas(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	out, err := uc.GetPresentation(context.Background(), sqlitetest.PresentationDXInactiva)
	require.NoError(t, err)

	assert.False(t, out.Presentation.Active)
	assert.Equal(t, "Clorox", out.Presentation.BrandName)
	assert.Equal(t, "Detergente X", out.Presentation.ProductName)
	require.Len(t, out.PriceTiers, 1)
	assert.Equal(t, "$100", out.PriceTiers[0].PriceLabel)

	require.Len(t, out.Related, 2)
	assert.Equal(t, "Líquido", out.Related[0].Name)
	assert.Equal(t, "Polvo Floral", out.Related[1].Name)
	for _, r := range out.Related {
		assert.NotEqual(t, sqlitetest.PresentationDXInactiva, r.PresentationID)
	}
}

func TestGetPresentation_NoExiste(t *testing.T) {
	uc := catalog.NewCatalogUseCase(openFixture(t), logger.Nop(), 16)

	out, err := uc.GetPresentation(context.Background(), 99999)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
