// @title        Catálogo Web API
// @version      1.0
// @description  Catálogo público de productos: listado, búsqueda, detalle, precios por cantidad y página agrupada de aseo. Solo lectura.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/catalogo-web/docs"
	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/domain/catalog"
	infrapdf "github.com/jhoicas/catalogo-web/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sitemap"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore"
	httpRouter "github.com/jhoicas/catalogo-web/internal/interfaces/http"
	"github.com/jhoicas/catalogo-web/pkg/config"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		// Sin catálogo el sitio sigue arriba: las vistas responden en modo degradado.
		log.Error().Err(err).Msg("abrir catálogo; se sirve en modo degradado")
		store = sqlstore.Unavailable()
	}
	defer store.Close()

	catalogUC := appcatalog.NewCatalogUseCase(store, log, cfg.Catalog.PageSize)
	priceSheetUC := appcatalog.NewPriceSheetUseCase(catalogUC, infrapdf.NewMarotoPDFGenerator(cfg.App.Name, cfg.HTTP.BaseURL))

	classifier := catalog.AseoClassifier()
	bucketUC := appcatalog.NewBucketUseCase(store, log, cfg.Catalog.BucketCategory, classifier)
	sitemapUC := appcatalog.NewSitemapUseCase(store, log, sitemap.NewBuilder(), cfg.HTTP.BaseURL, cfg.Catalog.BucketCategory)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Catálogo Web API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		PriceSheetUC: priceSheetUC,
		BucketUC:     bucketUC,
		SitemapUC:    sitemapUC,
		PagesDir:     cfg.HTTP.PagesDir,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
