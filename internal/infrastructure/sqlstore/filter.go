package sqlstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

// predicates compone cláusulas parametrizadas unidas por AND.
// Las cláusulas usan "?"; rebind las traduce al dialecto.
type predicates struct {
	clauses []string
	args    []any
}

func (p *predicates) add(clause string, args ...any) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

// where devuelve " WHERE c1 AND c2 ..." o "" si no hay cláusulas.
func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

const hasActivePresentation = `EXISTS (SELECT 1 FROM presentation pa WHERE pa.product_id = p.id AND pa.active = TRUE)`

// matchesText busca el término en producto, categoría, presentación y marca.
// Cada %[n]s es una comparación foldLike.
const matchesText = `(%[1]s OR %[2]s OR EXISTS (
	SELECT 1 FROM presentation pq LEFT JOIN brand bq ON bq.id = pq.brand_id
	WHERE pq.product_id = p.id AND pq.active = TRUE
	  AND (%[3]s OR %[4]s)))`

// foldLike compara col con un patrón ya en minúsculas. LOWER de SQLite solo
// pliega ASCII ("JABÓN" -> "jabÓn"), por eso allí se usa la función unicode_lower.
func foldLike(d Dialect, col string) string {
	if d == DialectPostgres {
		return col + " ILIKE ?"
	}
	return sqliteLowerFunc + "(" + col + ") LIKE ?"
}

// productPredicates filtros del listado sobre "product p JOIN category c".
func productPredicates(d Dialect, f repository.ProductFilter) *predicates {
	p := &predicates{}
	p.add(hasActivePresentation)
	if slug := strings.TrimSpace(f.CategorySlug); slug != "" {
		p.add("c.slug = ?", slug)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		term := "%" + strings.ToLower(q) + "%"
		clause := fmt.Sprintf(matchesText,
			foldLike(d, "p.name"), foldLike(d, "c.name"),
			foldLike(d, "pq.name"), foldLike(d, "COALESCE(bq.name, '')"))
		p.add(clause, term, term, term, term)
	}
	return p
}

// placeholders devuelve "?, ?, ..." con n marcadores.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// rebind traduce los "?" al estilo del dialecto ($1, $2... en PostgreSQL).
// Las consultas de este paquete no contienen "?" literales dentro de cadenas.
func rebind(d Dialect, query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
