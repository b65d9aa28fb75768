package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
	"github.com/jhoicas/catalogo-web/internal/application/dto"
)

// CatalogHandler listado, búsqueda y detalle del catálogo (público, solo lectura).
type CatalogHandler struct {
	uc     *appcatalog.CatalogUseCase
	sheets *appcatalog.PriceSheetUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *appcatalog.CatalogUseCase, sheets *appcatalog.PriceSheetUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc, sheets: sheets}
}

// List godoc
// @Summary      Listar productos
// @Description  Listado paginado con búsqueda por texto y filtro por categoría. Si el catálogo no está disponible responde 200 con store_unavailable=true.
// @Tags         catalogo
// @Produce      json
// @Param        q          query  string  false  "Texto a buscar (nombre de producto, presentación o marca)"
// @Param        categoria  query  string  false  "Slug de categoría"
// @Param        page       query  int     false  "Página (1-indexada)"  default(1)
// @Success      200        {object}  dto.ListingResponse
// @Router       /api/productos [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		// parámetros ilegibles se tratan como ausentes
		in = dto.ListProductsRequest{}
	}
	return c.JSON(h.uc.List(c.UserContext(), in))
}

// GetProduct godoc
// @Summary      Detalle de producto
// @Tags         catalogo
// @Produce      json
// @Param        id       path   int   true   "ID del producto"
// @Param        precios  query  bool  false  "Incluir escalones de precio por variante"
// @Success      200      {object}  dto.ProductDetailResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetProduct(c.UserContext(), id, c.QueryBool("precios", false))
	if err != nil {
		return writeError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// GetPresentation godoc
// @Summary      Detalle de presentación
// @Description  Visible por id aunque esté inactiva. Incluye escalones y hasta 6 presentaciones relacionadas.
// @Tags         catalogo
// @Produce      json
// @Param        id   path  int  true  "ID de la presentación"
// @Success      200  {object}  dto.PresentationDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [get]
func (h *CatalogHandler) GetPresentation(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetPresentation(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "presentación no encontrada")
	}
	return c.JSON(out)
}

// PriceSheet godoc
// @Summary      Ficha de precios en PDF
// @Tags         catalogo
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la presentación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id}/ficha.pdf [get]
func (h *CatalogHandler) PriceSheet(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := h.sheets.Download(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "presentación no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
