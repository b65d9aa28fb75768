package entity

import "github.com/shopspring/decimal"

// CategoryProduct producto de una categoría con sus presentaciones activas aplanadas,
// insumo de la clasificación por grupos.
type CategoryProduct struct {
	ID            int64
	Name          string
	StartingPrice decimal.NullDecimal
	Presentations []PresentationText // activas, ordenadas por id
}

// PresentationText texto buscable e imagen de una presentación activa.
type PresentationText struct {
	Name    string
	Content string
	Brand   string
	Image   string
}
