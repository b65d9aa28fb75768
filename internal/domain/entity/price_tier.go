package entity

import "github.com/shopspring/decimal"

// PriceTier precio unitario a partir de una cantidad mínima.
// Siempre se consumen ordenados por MinQuantity ascendente.
type PriceTier struct {
	PresentationID int64
	MinQuantity    int
	Price          decimal.Decimal
}
