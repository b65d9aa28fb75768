package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *appcatalog.CatalogUseCase
	PriceSheetUC *appcatalog.PriceSheetUseCase
	BucketUC     *appcatalog.BucketUseCase
	SitemapUC    *appcatalog.SitemapUseCase
	PagesDir     string
	Log          *logger.Logger
}

// Router registra las rutas del sitio y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	site := NewSiteHandler(deps.PagesDir, deps.BucketUC.CategorySlug(), deps.SitemapUC, deps.Log)

	// Páginas informativas (HTML estático)
	for _, p := range appcatalog.InfoPages() {
		app.Get(p.Path, site.Page(p.Slug))
	}
	app.Get("/sitemap.xml", site.Sitemap)
	app.Get("/categoria/:slug", site.LegacyCategory)

	api := app.Group("/api")
	api.Get("/paginas", site.Pages)

	// Catálogo (público, solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.PriceSheetUC)
	productos := api.Group("/productos")
	productos.Get("/", catalogHandler.List)
	productos.Get("/:id", catalogHandler.GetProduct)

	presentaciones := api.Group("/presentaciones")
	presentaciones.Get("/:id", catalogHandler.GetPresentation)
	presentaciones.Get("/:id/ficha.pdf", catalogHandler.PriceSheet)

	// Categoría curada agrupada
	bucketHandler := NewBucketHandler(deps.BucketUC)
	api.Get("/"+deps.BucketUC.CategorySlug(), bucketHandler.Buckets)
}
