package http

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// SiteHandler páginas informativas, sitemap y redirecciones de rutas antiguas.
type SiteHandler struct {
	pagesDir   string
	bucketSlug string
	sitemap    *appcatalog.SitemapUseCase
	log        *logger.Logger
}

// NewSiteHandler construye el handler. pagesDir contiene <slug>.html por página.
func NewSiteHandler(pagesDir, bucketSlug string, sitemap *appcatalog.SitemapUseCase, log *logger.Logger) *SiteHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SiteHandler{pagesDir: pagesDir, bucketSlug: bucketSlug, sitemap: sitemap, log: log}
}

// Page devuelve el handler que sirve la página informativa slug.
func (h *SiteHandler) Page(slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, ok := appcatalog.FindInfoPage(slug)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "página no encontrada"})
		}
		body, err := os.ReadFile(filepath.Join(h.pagesDir, page.Slug+".html"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "página no encontrada"})
			}
			h.log.Error().Err(err).Str("page", page.Slug).Msg("leer página informativa")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer la página"})
		}
		c.Type("html", "utf-8")
		return c.Send(body)
	}
}

// Pages godoc
// @Summary      Páginas informativas
// @Tags         sitio
// @Produce      json
// @Success      200  {array}  dto.PageInfo
// @Router       /api/paginas [get]
func (h *SiteHandler) Pages(c *fiber.Ctx) error {
	return c.JSON(appcatalog.InfoPages())
}

// LegacyCategory godoc
// @Summary      Ruta antigua de categoría
// @Description  Redirección permanente al listado filtrado (o a la página agrupada para la categoría curada).
// @Tags         sitio
// @Param        slug  path  string  true  "Slug de categoría"
// @Success      301
// @Router       /categoria/{slug} [get]
func (h *SiteHandler) LegacyCategory(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return c.Redirect("/api/productos", fiber.StatusMovedPermanently)
	}
	if slug == h.bucketSlug {
		return c.Redirect("/api/"+h.bucketSlug, fiber.StatusMovedPermanently)
	}
	q := url.Values{"categoria": {slug}}
	return c.Redirect("/api/productos?"+q.Encode(), fiber.StatusMovedPermanently)
}

// Sitemap godoc
// @Summary      sitemap.xml
// @Tags         sitio
// @Produce      xml
// @Success      200  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sitemap.xml [get]
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	out, err := h.sitemap.Build(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("generar sitemap")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el sitemap"})
	}
	c.Type("xml", "utf-8")
	return c.Send(out)
}
