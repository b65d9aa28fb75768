package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/application/dto"
	domcatalog "github.com/jhoicas/catalogo-web/internal/domain/catalog"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore/sqlitetest"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func bucketBySlug(t *testing.T, buckets []dto.BucketResponse, slug string) dto.BucketResponse {
	t.Helper()
	for _, b := range buckets {
		if b.Slug == slug {
			return b
		}
	}
	t.Fatalf("grupo %q no encontrado", slug)
	return dto.BucketResponse{}
}

func TestBuckets_Aseo(t *testing.T) {
	uc := catalog.NewBucketUseCase(openFixture(t), logger.Nop(), domcatalog.AseoCategorySlug, domcatalog.AseoClassifier())

	resp := uc.Buckets(context.Background())
	require.False(t, resp.StoreUnavailable)

	slugs := make([]string, 0, len(resp.Buckets))
	for _, b := range resp.Buckets {
		slugs = append(slugs, b.Slug)
	}
	assert.Equal(t, []string{"cocina", "ropa", "desinfeccion", "papel", "personal", "utensilios", "otros"}, slugs)

	ropa := bucketBySlug(t, resp.Buckets, "ropa")
	require.Len(t, ropa.Items, 2)
	assert.Equal(t, sqlitetest.ProductArielRevit, ropa.Items[0].ProductID)
	assert.Equal(t, "ariel.jpg", ropa.Items[0].Image)
	assert.Equal(t, "$14.900", ropa.Items[0].StartingPriceLabel)
	assert.Equal(t, "img/aseo/detergente.jpg", ropa.Items[1].Image)

	cocina := bucketBySlug(t, resp.Buckets, "cocina")
	require.Len(t, cocina.Items, 1)
	assert.Equal(t, "img/aseo/lavaloza.jpg", cocina.Items[0].Image)

	desinf := bucketBySlug(t, resp.Buckets, "desinfeccion")
	require.Len(t, desinf.Items, 1)
	assert.False(t, desinf.Items[0].StartingPrice.Valid)
	assert.Empty(t, desinf.Items[0].StartingPriceLabel)

	assert.Empty(t, bucketBySlug(t, resp.Buckets, "papel").Items)

	otros := bucketBySlug(t, resp.Buckets, "otros")
	require.Len(t, otros.Items, 1)
	assert.Equal(t, sqlitetest.ProductAmbientador, otros.Items[0].ProductID)
	assert.Equal(t, domcatalog.PlaceholderImage, otros.Items[0].Image)
}

func TestBuckets_ProductoSoloInactivoNoAparece(t *testing.T) {
	uc := catalog.NewBucketUseCase(openFixture(t), logger.Nop(), domcatalog.AseoCategorySlug, domcatalog.AseoClassifier())

	for _, b := range uc.Buckets(context.Background()).Buckets {
		for _, it := range b.Items {
			assert.NotEqual(t, sqlitetest.ProductSoloInactivo, it.ProductID)
		}
	}
}

func TestBuckets_Degradado(t *testing.T) {
	for name, runner := range map[string]catalog.ReadRunner{
		"archivo ausente":    openMissing(t),
		"consulta que falla": brokenRunner{},
	} {
		t.Run(name, func(t *testing.T) {
			uc := catalog.NewBucketUseCase(runner, logger.Nop(), domcatalog.AseoCategorySlug, domcatalog.AseoClassifier())
			resp := uc.Buckets(context.Background())
			assert.True(t, resp.StoreUnavailable)
			assert.NotNil(t, resp.Buckets)
			assert.Empty(t, resp.Buckets)
		})
	}
}
