//go:build integration

package sqlstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/pkg/config"
)

// Ejecutar con: DATABASE_URL=postgres://... go test -tags integration ./internal/infrastructure/sqlstore/
const pgSchema = `
CREATE TABLE category (id BIGINT PRIMARY KEY, name TEXT NOT NULL, slug TEXT NOT NULL UNIQUE);
CREATE TABLE brand (id BIGINT PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE product (id BIGINT PRIMARY KEY, name TEXT NOT NULL, category_id BIGINT NOT NULL REFERENCES category(id));
CREATE TABLE presentation (
    id BIGINT PRIMARY KEY, product_id BIGINT NOT NULL REFERENCES product(id),
    brand_id BIGINT REFERENCES brand(id), name TEXT NOT NULL, content TEXT, image TEXT,
    active BOOLEAN NOT NULL DEFAULT TRUE);
CREATE TABLE price_tier (
    presentation_id BIGINT NOT NULL REFERENCES presentation(id), min_quantity INTEGER NOT NULL,
    price NUMERIC(12,2) NOT NULL, PRIMARY KEY (presentation_id, min_quantity));

INSERT INTO category VALUES (1, 'ÚTILES', 'utiles');
INSERT INTO brand VALUES (1, 'Clorox');
INSERT INTO product VALUES (1, 'JABÓN AZUL', 1), (2, 'Escoba vieja', 1);
INSERT INTO presentation VALUES
    (10, 1, 1, 'Barra', '300 g', 'jabon.jpg', TRUE),
    (20, 2, NULL, 'Escoba', NULL, NULL, FALSE);
INSERT INTO price_tier VALUES (10, 1, 8500.50), (10, 12, 7900.00);
`

// openPostgres crea un esquema temporal con datos y abre el Store apuntando a él.
func openPostgres(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, dbURL)
	require.NoError(t, err)
	schema := fmt.Sprintf("catalogo_it_%d", time.Now().UnixNano())
	_, err = conn.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = conn.Close(context.Background())
	})
	_, err = conn.Exec(ctx, "SET search_path TO "+schema)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, pgSchema)
	require.NoError(t, err)

	sep := "?"
	if strings.Contains(dbURL, "?") {
		sep = "&"
	}
	store, err := Open(ctx, config.DBConfig{
		Driver:      config.DriverPostgres,
		DatabaseURL: dbURL + sep + "search_path=" + schema,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.Equal(t, DialectPostgres, store.Dialect())
	return store
}

func TestPostgres_SesionSoloLectura(t *testing.T) {
	store := openPostgres(t)

	_, err := store.db.ExecContext(context.Background(), `INSERT INTO category VALUES (99, 'x', 'x')`)
	assert.Error(t, err, "default_transaction_read_only debe rechazar escrituras")
}

func TestPostgres_ListadoYDetalle(t *testing.T) {
	store := openPostgres(t)
	ctx := context.Background()

	err := store.Read(ctx, func(repo repository.CatalogRepository) error {
		for _, q := range []string{"jabón", "JABÓN", "útiles", "clorox"} {
			n, err := repo.CountProducts(ctx, repository.ProductFilter{Query: q})
			require.NoError(t, err, q)
			assert.Equal(t, 1, n, q)
		}

		list, err := repo.ListProducts(ctx, repository.ProductFilter{CategorySlug: "utiles"}, 24, 0)
		require.NoError(t, err)
		require.Len(t, list, 1, "el producto sin presentaciones activas no se lista")
		assert.Equal(t, "jabon.jpg", list[0].Image)
		require.True(t, list[0].StartingPrice.Valid)
		assert.True(t, decimal.NewFromInt(7900).Equal(list[0].StartingPrice.Decimal))
		assert.Equal(t, 1, list[0].BrandCount)

		tiers, err := repo.ListPriceTiers(ctx, 10)
		require.NoError(t, err)
		require.Len(t, tiers[10], 2)
		assert.Equal(t, 1, tiers[10][0].MinQuantity)
		assert.True(t, decimal.RequireFromString("8500.5").Equal(tiers[10][0].Price))

		inactive, err := repo.GetPresentation(ctx, 20)
		require.NoError(t, err)
		require.NotNil(t, inactive)
		assert.False(t, inactive.Active)

		missing, err := repo.GetProduct(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, missing)
		return nil
	})
	require.NoError(t, err)
}
