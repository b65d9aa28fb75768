package catalog

import "github.com/jhoicas/catalogo-web/internal/application/dto"

// infoPages páginas informativas del sitio, en el orden del menú.
var infoPages = []dto.PageInfo{
	{Slug: "inicio", Title: "Inicio", Path: "/"},
	{Slug: "conocenos", Title: "Conócenos", Path: "/conocenos"},
	{Slug: "envios", Title: "Envíos", Path: "/envios"},
	{Slug: "devoluciones", Title: "Devoluciones", Path: "/devoluciones"},
	{Slug: "pagos", Title: "Medios de pago", Path: "/pagos"},
	{Slug: "cuenta", Title: "Mi cuenta", Path: "/cuenta"},
	{Slug: "carrito", Title: "Carrito", Path: "/carrito"},
}

// InfoPages devuelve una copia de las páginas informativas.
func InfoPages() []dto.PageInfo {
	out := make([]dto.PageInfo, len(infoPages))
	copy(out, infoPages)
	return out
}

// FindInfoPage busca una página por slug.
func FindInfoPage(slug string) (dto.PageInfo, bool) {
	for _, p := range infoPages {
		if p.Slug == slug {
			return p, true
		}
	}
	return dto.PageInfo{}, false
}
