package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
)

// BucketHandler página agrupada de la categoría curada.
type BucketHandler struct {
	uc *appcatalog.BucketUseCase
}

// NewBucketHandler construye el handler.
func NewBucketHandler(uc *appcatalog.BucketUseCase) *BucketHandler {
	return &BucketHandler{uc: uc}
}

// Buckets godoc
// @Summary      Productos de aseo agrupados
// @Description  Grupos en orden fijo; un producto aparece en un solo grupo. Si el catálogo no está disponible responde 200 con store_unavailable=true.
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.BucketedListingResponse
// @Router       /api/aseo [get]
func (h *BucketHandler) Buckets(c *fiber.Ctx) error {
	return c.JSON(h.uc.Buckets(c.UserContext()))
}
