// Package catalog reglas puras del catálogo: paginación y clasificación por grupos.
package catalog

import (
	"strconv"
	"strings"
)

// Tamaños de página usados por las vistas de listado.
const (
	DefaultPageSize = 24
	CompactPageSize = 16
)

// Page resultado de paginar un total de filas.
type Page struct {
	Number     int // 1-indexada, ya acotada a [1, TotalPages]
	Size       int
	Total      int
	TotalPages int
	Offset     int
}

// ParsePage interpreta el número de página recibido. Vacío, no numérico o < 1 → 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages = max(1, ceil(total/size)).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// NewPage acota la página pedida a las páginas existentes y calcula el offset.
func NewPage(requested, size, total int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	pages := TotalPages(total, size)
	n := requested
	if n < 1 {
		n = 1
	}
	if n > pages {
		n = pages
	}
	return Page{
		Number:     n,
		Size:       size,
		Total:      total,
		TotalPages: pages,
		Offset:     (n - 1) * size,
	}
}
