package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository (usable con *sql.DB o *sql.Tx).
type CatalogRepo struct {
	q       Querier
	dialect Dialect
}

// NewCatalogRepository construye el adaptador de lectura del catálogo.
func NewCatalogRepository(q Querier, dialect Dialect) *CatalogRepo {
	return &CatalogRepo{q: q, dialect: dialect}
}

func (r *CatalogRepo) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.q.QueryContext(ctx, rebind(r.dialect, query), args...)
}

func (r *CatalogRepo) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, rebind(r.dialect, query), args...)
}

// ListCategories lista todas las categorías en orden alfabético.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.query(ctx, `SELECT id, name, slug FROM category ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountProducts cuenta los productos listables que cumplen el filtro.
func (r *CatalogRepo) CountProducts(ctx context.Context, f repository.ProductFilter) (int, error) {
	p := productPredicates(r.dialect, f)
	query := `SELECT COUNT(*) FROM product p JOIN category c ON c.id = p.category_id` + p.where()
	var n int
	if err := r.queryRow(ctx, query, p.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// ListProducts devuelve una página del listado, ordenada por nombre de producto.
func (r *CatalogRepo) ListProducts(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]entity.ProductSummary, error) {
	p := productPredicates(r.dialect, f)
	query := `
		SELECT p.id, p.name, c.name, c.slug,
		    (SELECT pi.image FROM presentation pi
		      WHERE pi.product_id = p.id AND pi.active = TRUE
		        AND pi.image IS NOT NULL AND pi.image <> ''
		      ORDER BY pi.id LIMIT 1),
		    (SELECT MIN(pt.price) FROM price_tier pt
		      JOIN presentation pp ON pp.id = pt.presentation_id
		      WHERE pp.product_id = p.id AND pp.active = TRUE),
		    (SELECT COUNT(DISTINCT pb.brand_id) FROM presentation pb
		      WHERE pb.product_id = p.id AND pb.active = TRUE)
		FROM product p
		JOIN category c ON c.id = p.category_id` + p.where() + `
		ORDER BY p.name, p.id
		LIMIT ? OFFSET ?`
	args := append(p.args, limit, offset)

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]entity.ProductSummary, 0, limit)
	for rows.Next() {
		var s entity.ProductSummary
		var image sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryName, &s.CategorySlug,
			&image, &s.StartingPrice, &s.BrandCount); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		s.Image = image.String
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetProduct obtiene un producto con su categoría.
func (r *CatalogRepo) GetProduct(ctx context.Context, id int64) (*entity.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, c.id, c.name, c.slug
		FROM product p JOIN category c ON c.id = p.category_id
		WHERE p.id = ?`
	var p entity.ProductWithCategory
	err := r.queryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category.ID, &p.Category.Name, &p.Category.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CategoryID = p.Category.ID
	return &p, nil
}

// ListVariants presentaciones activas del producto, por marca y luego por nombre.
func (r *CatalogRepo) ListVariants(ctx context.Context, productID int64) ([]entity.Variant, error) {
	query := `
		SELECT pr.id, COALESCE(b.name, ''), pr.name, COALESCE(pr.content, ''), pr.image,
		    (SELECT MIN(pt.price) FROM price_tier pt WHERE pt.presentation_id = pr.id)
		FROM presentation pr
		LEFT JOIN brand b ON b.id = pr.brand_id
		WHERE pr.product_id = ? AND pr.active = TRUE
		ORDER BY COALESCE(b.name, ''), pr.name, pr.id`
	rows, err := r.query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	return scanVariants(rows)
}

// ListRelated otras presentaciones activas del mismo producto, por nombre, hasta limit.
func (r *CatalogRepo) ListRelated(ctx context.Context, productID, excludeID int64, limit int) ([]entity.Variant, error) {
	query := `
		SELECT pr.id, COALESCE(b.name, ''), pr.name, COALESCE(pr.content, ''), pr.image,
		    (SELECT MIN(pt.price) FROM price_tier pt WHERE pt.presentation_id = pr.id)
		FROM presentation pr
		LEFT JOIN brand b ON b.id = pr.brand_id
		WHERE pr.product_id = ? AND pr.id <> ? AND pr.active = TRUE
		ORDER BY pr.name, pr.id
		LIMIT ?`
	rows, err := r.query(ctx, query, productID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list related: %w", err)
	}
	defer rows.Close()
	return scanVariants(rows)
}

func scanVariants(rows *sql.Rows) ([]entity.Variant, error) {
	var list []entity.Variant
	for rows.Next() {
		var v entity.Variant
		var image sql.NullString
		if err := rows.Scan(&v.PresentationID, &v.Brand, &v.Name, &v.Content, &image, &v.StartingPrice); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		v.Image = image.String
		list = append(list, v)
	}
	return list, rows.Err()
}

// ListPriceTiers escalones de precio por presentación, ascendentes por cantidad mínima.
func (r *CatalogRepo) ListPriceTiers(ctx context.Context, presentationIDs ...int64) (map[int64][]entity.PriceTier, error) {
	out := make(map[int64][]entity.PriceTier, len(presentationIDs))
	if len(presentationIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(presentationIDs))
	for i, id := range presentationIDs {
		args[i] = id
	}
	query := `
		SELECT presentation_id, min_quantity, price
		FROM price_tier
		WHERE presentation_id IN (` + placeholders(len(args)) + `)
		ORDER BY presentation_id, min_quantity`
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price tiers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.PriceTier
		if err := rows.Scan(&t.PresentationID, &t.MinQuantity, &t.Price); err != nil {
			return nil, fmt.Errorf("scan price tier: %w", err)
		}
		out[t.PresentationID] = append(out[t.PresentationID], t)
	}
	return out, rows.Err()
}

// GetPresentation obtiene una presentación por ID sin filtrar por activo.
func (r *CatalogRepo) GetPresentation(ctx context.Context, id int64) (*entity.PresentationDetail, error) {
	query := `
		SELECT pr.id, pr.product_id, pr.brand_id, pr.name, COALESCE(pr.content, ''), pr.image, pr.active,
		       p.name, COALESCE(b.name, ''), c.id, c.name, c.slug
		FROM presentation pr
		JOIN product p ON p.id = pr.product_id
		JOIN category c ON c.id = p.category_id
		LEFT JOIN brand b ON b.id = pr.brand_id
		WHERE pr.id = ?`
	var d entity.PresentationDetail
	var brandID sql.NullInt64
	var image sql.NullString
	err := r.queryRow(ctx, query, id).Scan(
		&d.ID, &d.ProductID, &brandID, &d.Name, &d.Content, &image, &d.Active,
		&d.ProductName, &d.BrandName, &d.Category.ID, &d.Category.Name, &d.Category.Slug,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}
	d.BrandID = brandID.Int64
	d.Image = image.String
	return &d, nil
}

// ListCategoryProducts productos de la categoría con al menos una presentación activa,
// con sus presentaciones activas aplanadas (por id) y su precio desde.
func (r *CatalogRepo) ListCategoryProducts(ctx context.Context, categorySlug string) ([]entity.CategoryProduct, error) {
	query := `
		SELECT p.id, p.name, pr.name, COALESCE(pr.content, ''), COALESCE(b.name, ''), pr.image
		FROM product p
		JOIN category c ON c.id = p.category_id
		JOIN presentation pr ON pr.product_id = p.id AND pr.active = TRUE
		LEFT JOIN brand b ON b.id = pr.brand_id
		WHERE c.slug = ?
		ORDER BY p.name, p.id, pr.id`
	rows, err := r.query(ctx, query, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list category products: %w", err)
	}
	defer rows.Close()

	var list []entity.CategoryProduct
	index := make(map[int64]int)
	for rows.Next() {
		var id int64
		var name string
		var t entity.PresentationText
		var image sql.NullString
		if err := rows.Scan(&id, &name, &t.Name, &t.Content, &t.Brand, &image); err != nil {
			return nil, fmt.Errorf("scan category product: %w", err)
		}
		t.Image = image.String
		i, ok := index[id]
		if !ok {
			i = len(list)
			index[id] = i
			list = append(list, entity.CategoryProduct{ID: id, Name: name})
		}
		list[i].Presentations = append(list[i].Presentations, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category products: %w", err)
	}
	rows.Close()

	prices, err := r.categoryStartingPrices(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if price, ok := prices[list[i].ID]; ok {
			list[i].StartingPrice = decimal.NewNullDecimal(price)
		}
	}
	return list, nil
}

func (r *CatalogRepo) categoryStartingPrices(ctx context.Context, categorySlug string) (map[int64]decimal.Decimal, error) {
	query := `
		SELECT pr.product_id, MIN(pt.price)
		FROM price_tier pt
		JOIN presentation pr ON pr.id = pt.presentation_id AND pr.active = TRUE
		JOIN product p ON p.id = pr.product_id
		JOIN category c ON c.id = p.category_id
		WHERE c.slug = ?
		GROUP BY pr.product_id`
	rows, err := r.query(ctx, query, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("category starting prices: %w", err)
	}
	defer rows.Close()
	out := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var id int64
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scan starting price: %w", err)
		}
		out[id] = price
	}
	return out, rows.Err()
}

// ListProductIDs IDs de productos listables (para el sitemap), ascendentes, hasta limit.
func (r *CatalogRepo) ListProductIDs(ctx context.Context, limit int) ([]int64, error) {
	query := `SELECT p.id FROM product p WHERE ` + hasActivePresentation + ` ORDER BY p.id LIMIT ?`
	rows, err := r.query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list product ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
