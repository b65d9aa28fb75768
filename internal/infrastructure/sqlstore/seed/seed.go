// Package seed escribe un archivo SQLite de catálogo. Es mantenimiento del almacén,
// fuera del camino de servicio: el servidor nunca lo importa.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

//go:embed schema.sql
var Schema string

// Dataset contenido completo de un catálogo.
type Dataset struct {
	Categories    []entity.Category
	Brands        []entity.Brand
	Products      []entity.Product
	Presentations []entity.Presentation
	PriceTiers    []entity.PriceTier
}

// WriteSQLite crea (o completa) el archivo en path con el esquema y los datos.
func WriteSQLite(ctx context.Context, path string, ds Dataset) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("ruta de salida requerida")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()
	return Write(ctx, db, ds)
}

// Write aplica el esquema e inserta el dataset en una sola transacción.
func Write(ctx context.Context, db *sql.DB, ds Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	for _, c := range ds.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO category (id, name, slug) VALUES (?, ?, ?)`, c.ID, c.Name, c.Slug); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Slug, err)
		}
	}
	for _, b := range ds.Brands {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO brand (id, name) VALUES (?, ?)`, b.ID, b.Name); err != nil {
			return fmt.Errorf("insert brand %q: %w", b.Name, err)
		}
	}
	for _, p := range ds.Products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product (id, name, category_id) VALUES (?, ?, ?)`, p.ID, p.Name, p.CategoryID); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}
	for _, pr := range ds.Presentations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO presentation (id, product_id, brand_id, name, content, image, active) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			pr.ID, pr.ProductID, nullInt(pr.BrandID), pr.Name, nullString(pr.Content), nullString(pr.Image), pr.Active,
		); err != nil {
			return fmt.Errorf("insert presentation %q: %w", pr.Name, err)
		}
	}
	for _, t := range ds.PriceTiers {
		price, _ := t.Price.Float64()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO price_tier (presentation_id, min_quantity, price) VALUES (?, ?, ?)`,
			t.PresentationID, t.MinQuantity, price,
		); err != nil {
			return fmt.Errorf("insert price tier %d/%d: %w", t.PresentationID, t.MinQuantity, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
