package dto

import "github.com/shopspring/decimal"

// ListProductsRequest parámetros crudos del listado (tal como llegan en la URL).
type ListProductsRequest struct {
	Query    string `query:"q"`
	Category string `query:"categoria"`
	Page     string `query:"page"`
}

// CategoryResponse categoría en el menú del listado.
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductItemResponse fila del listado.
type ProductItemResponse struct {
	ProductID          int64               `json:"product_id"`
	Name               string              `json:"name"`
	CategoryName       string              `json:"category_name"`
	CategorySlug       string              `json:"category_slug"`
	Image              *string             `json:"image"`
	StartingPrice      decimal.NullDecimal `json:"starting_price"`
	StartingPriceLabel string              `json:"starting_price_label,omitempty"`
	BrandCount         int                 `json:"brand_count"`
}

// ListingResponse listado paginado. StoreUnavailable distingue "catálogo caído" de "sin resultados".
type ListingResponse struct {
	Categories       []CategoryResponse    `json:"categories"`
	Items            []ProductItemResponse `json:"items"`
	Page             int                   `json:"page"`
	TotalPages       int                   `json:"total_pages"`
	Query            string                `json:"query"`
	CategoryFilter   string                `json:"category_filter"`
	TotalCount       int                   `json:"total_count"`
	StoreUnavailable bool                  `json:"store_unavailable"`
}

// ProductResponse cabecera del detalle de producto.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
}

// PriceTierResponse escalón de precio.
type PriceTierResponse struct {
	MinQuantity int             `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label"`
}

// VariantResponse presentación resumida (variantes de un producto o relacionadas).
type VariantResponse struct {
	PresentationID     int64               `json:"presentation_id"`
	Brand              string              `json:"brand"`
	Name               string              `json:"name"`
	Content            string              `json:"content"`
	Image              *string             `json:"image"`
	StartingPrice      decimal.NullDecimal `json:"starting_price"`
	StartingPriceLabel string              `json:"starting_price_label,omitempty"`
	PriceTiers         []PriceTierResponse `json:"price_tiers,omitempty"`
}

// ProductDetailResponse producto con sus variantes activas.
type ProductDetailResponse struct {
	Product  ProductResponse   `json:"product"`
	Variants []VariantResponse `json:"variants"`
}

// PresentationResponse presentación unida a producto, marca y categoría.
type PresentationResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Content      string  `json:"content"`
	Image        *string `json:"image"`
	Active       bool    `json:"active"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	BrandID      int64   `json:"brand_id,omitempty"`
	BrandName    string  `json:"brand_name"`
	CategoryName string  `json:"category_name"`
	CategorySlug string  `json:"category_slug"`
}

// PresentationDetailResponse detalle de una presentación con escalones y relacionadas (≤ 6).
type PresentationDetailResponse struct {
	Presentation PresentationResponse `json:"presentation"`
	PriceTiers   []PriceTierResponse  `json:"price_tiers"`
	Related      []VariantResponse    `json:"related"`
}

// BucketItemResponse producto dentro de un grupo.
type BucketItemResponse struct {
	ProductID          int64               `json:"product_id"`
	Name               string              `json:"name"`
	Image              string              `json:"image"`
	StartingPrice      decimal.NullDecimal `json:"starting_price"`
	StartingPriceLabel string              `json:"starting_price_label,omitempty"`
}

// BucketResponse grupo nombrado.
type BucketResponse struct {
	Slug  string               `json:"slug"`
	Title string               `json:"title"`
	Items []BucketItemResponse `json:"items"`
}

// BucketedListingResponse página agrupada de la categoría curada.
type BucketedListingResponse struct {
	Buckets          []BucketResponse `json:"buckets"`
	StoreUnavailable bool             `json:"store_unavailable"`
}

// PageInfo página informativa estática del sitio.
type PageInfo struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}
