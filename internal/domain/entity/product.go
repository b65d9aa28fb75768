package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Pertenece a exactamente una categoría.
type Product struct {
	ID         int64
	Name       string
	CategoryID int64
}

// ProductSummary fila del listado paginado: producto anotado con imagen, precio desde y marcas.
type ProductSummary struct {
	ID            int64
	Name          string
	CategoryName  string
	CategorySlug  string
	Image         string              // vacío si ninguna presentación activa tiene imagen
	StartingPrice decimal.NullDecimal // mínimo de todos los escalones de presentaciones activas
	BrandCount    int
}

// ProductWithCategory producto junto a su categoría (detalle).
type ProductWithCategory struct {
	Product
	Category Category
}
