package sitemap_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sitemap"
)

func TestBuild_Urlset(t *testing.T) {
	out, err := sitemap.NewBuilder().Build("https://tienda.test/", []appcatalog.SitemapEntry{
		{Path: "/", ChangeFreq: "daily", Priority: 1},
		{Path: "/api/productos?categoria=aseo&page=2"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(out), "categoria=aseo&amp;page=2")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "urlset", root.Tag)
	assert.Equal(t, sitemap.NsSitemap, root.SelectAttrValue("xmlns", ""))

	urls := root.SelectElements("url")
	require.Len(t, urls, 2)
	assert.Equal(t, "https://tienda.test/", urls[0].SelectElement("loc").Text())
	assert.Equal(t, "daily", urls[0].SelectElement("changefreq").Text())
	assert.Equal(t, "1.0", urls[0].SelectElement("priority").Text())
	assert.Nil(t, urls[1].SelectElement("priority"))
	assert.Equal(t, "https://tienda.test/api/productos?categoria=aseo&page=2", urls[1].SelectElement("loc").Text())
}

func TestBuild_RequiereURLBase(t *testing.T) {
	_, err := sitemap.NewBuilder().Build("  ", nil)
	assert.Error(t, err)
}

func TestBuild_SinEntradas(t *testing.T) {
	out, err := sitemap.NewBuilder().Build("https://tienda.test", nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Empty(t, doc.Root().SelectElements("url"))
}
