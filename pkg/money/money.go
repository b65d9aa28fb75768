// Package money formatea precios para mostrar en pesos colombianos.
package money

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCOP redondea a pesos enteros y agrupa miles con punto: 1250000 -> "$1.250.000".
func FormatCOP(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-$" + groupThousands(strconv.FormatInt(-n, 10))
	}
	return "$" + groupThousands(strconv.FormatInt(n, 10))
}

// FormatNullCOP como FormatCOP; vacío si el precio no existe.
func FormatNullCOP(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return FormatCOP(d.Decimal)
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
