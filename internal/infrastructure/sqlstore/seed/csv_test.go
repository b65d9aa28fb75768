package seed_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore/seed"
)

const sampleCSV = `categoria;producto;marca;presentacion;contenido;imagen;activo;cantidad_minima;precio
Aseo;Ariel Revit;Ariel;Ariel Revit Polvo;1000 g;ariel.jpg;si;1;$ 15.900
Aseo;Ariel Revit;Ariel;Ariel Revit Polvo;1000 g;ariel.jpg;si;12;14.900
Aseo;Ariel Revit;Ariel;Ariel Viejo;2 kg;;no;;
Lácteos;Leche Entera;Alquería;Bolsa;1 L;;;;4.200,50
;;;;;;;;
`

func TestReadCSV_DeduplicaYAsignaIDs(t *testing.T) {
	ds, err := seed.ReadCSV(strings.NewReader(sampleCSV), seed.CSVOptions{Comma: ';'})
	require.NoError(t, err)

	require.Len(t, ds.Categories, 2)
	assert.Equal(t, "aseo", ds.Categories[0].Slug)
	assert.Equal(t, "lacteos", ds.Categories[1].Slug)
	assert.Len(t, ds.Brands, 2)
	assert.Len(t, ds.Products, 2)
	require.Len(t, ds.Presentations, 3)
	assert.False(t, ds.Presentations[1].Active)
	assert.True(t, ds.Presentations[2].Active)
	assert.Equal(t, ds.Brands[1].ID, ds.Presentations[2].BrandID)

	require.Len(t, ds.PriceTiers, 3)
	assert.True(t, ds.PriceTiers[0].Price.Equal(decimal.NewFromInt(15900)))
	assert.Equal(t, 12, ds.PriceTiers[1].MinQuantity)
	assert.True(t, ds.PriceTiers[1].Price.Equal(decimal.NewFromInt(14900)))
	assert.True(t, ds.PriceTiers[2].Price.Equal(decimal.RequireFromString("4200.50")))
	assert.Equal(t, 1, ds.PriceTiers[2].MinQuantity)
}

func TestReadCSV_Latin1(t *testing.T) {
	utf8 := "categoria,producto,presentacion\nLácteos,Leche ñapa,Bolsa\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(utf8))
	require.NoError(t, err)

	ds, err := seed.ReadCSV(bytes.NewReader(latin1), seed.CSVOptions{Encoding: "latin1"})
	require.NoError(t, err)
	require.Len(t, ds.Categories, 1)
	assert.Equal(t, "Lácteos", ds.Categories[0].Name)
	assert.Equal(t, "Leche ñapa", ds.Products[0].Name)
}

func TestReadCSV_BOM(t *testing.T) {
	ds, err := seed.ReadCSV(strings.NewReader("\ufeffcategoria,producto,presentacion\nAseo,Cloro,Galón\n"), seed.CSVOptions{})
	require.NoError(t, err)
	assert.Len(t, ds.Products, 1)
}

func TestReadCSV_Errores(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		opts seed.CSVOptions
	}{
		{"vacío", "", seed.CSVOptions{}},
		{"falta columna", "categoria,producto\nAseo,Cloro\n", seed.CSVOptions{}},
		{"campo requerido vacío", "categoria,producto,presentacion\nAseo,,Galón\n", seed.CSVOptions{}},
		{"precio inválido", "categoria,producto,presentacion,precio\nAseo,Cloro,Galón,barato\n", seed.CSVOptions{}},
		{"activo inválido", "categoria,producto,presentacion,activo\nAseo,Cloro,Galón,quizás\n", seed.CSVOptions{}},
		{"cantidad inválida", "categoria,producto,presentacion,cantidad_minima,precio\nAseo,Cloro,Galón,0,100\n", seed.CSVOptions{}},
		{"escalón duplicado", "categoria,producto,presentacion,precio\nAseo,Cloro,Galón,100\nAseo,Cloro,Galón,90\n", seed.CSVOptions{}},
		{"encoding desconocido", "categoria,producto,presentacion\n", seed.CSVOptions{Encoding: "ebcdic"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seed.ReadCSV(strings.NewReader(tc.csv), tc.opts)
			assert.Error(t, err)
		})
	}
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"15900":     "15900",
		"$ 15.900":  "15900",
		"1.250.000": "1250000",
		"15.900,50": "15900.5",
		"15900.5":   "15900.5",
		"4200,5":    "4200.5",
		"$ 990":     "990",
	}
	for raw, want := range cases {
		got, err := seed.ParsePrice(raw)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s → %s", raw, got)
	}
	_, err := seed.ParsePrice("-5")
	assert.Error(t, err)
}

func TestWriteSQLite_LegibleDesdeElAlmacen(t *testing.T) {
	ds, err := seed.ReadCSV(strings.NewReader(sampleCSV), seed.CSVOptions{Comma: ';'})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalogo.db")
	require.NoError(t, seed.WriteSQLite(context.Background(), path, ds))

	store, err := sqlstore.OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	err = store.Read(context.Background(), func(repo repository.CatalogRepository) error {
		n, err := repo.CountProducts(context.Background(), repository.ProductFilter{CategorySlug: "aseo"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		rows, err := repo.ListProducts(context.Background(), repository.ProductFilter{Query: "alquer"}, 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Leche Entera", rows[0].Name)
		return nil
	})
	require.NoError(t, err)
}
