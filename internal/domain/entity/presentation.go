package entity

import "github.com/shopspring/decimal"

// Presentation variante empacada de un producto (marca + tamaño). Las inactivas no se listan.
type Presentation struct {
	ID        int64
	ProductID int64
	BrandID   int64 // 0 si no tiene marca
	Name      string
	Content   string // descriptor de tamaño/unidad, ej. "1000 ml"
	Image     string
	Active    bool
}

// Variant presentación activa vista desde el detalle de producto.
type Variant struct {
	PresentationID int64
	Brand          string
	Name           string
	Content        string
	Image          string
	StartingPrice  decimal.NullDecimal
	PriceTiers     []PriceTier // solo si el llamador los pidió
}

// PresentationDetail presentación unida a su producto, marca y categoría.
type PresentationDetail struct {
	Presentation
	ProductName string
	BrandName   string
	Category    Category
}
