// Package sqlstore adaptador de solo lectura del catálogo sobre database/sql (SQLite o PostgreSQL).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/pkg/config"
)

// Dialect variante de SQL del motor subyacente.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Querier lo mínimo que necesitan los repositorios (implementado por *sql.Tx y *sql.DB).
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store manejador del catálogo. Cada lectura abre su propio ámbito de solo lectura.
type Store struct {
	db      *sql.DB
	dialect Dialect
	path    string // solo SQLite: se verifica que el archivo exista antes de cada lectura
}

// Open abre el catálogo según el driver configurado.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		return OpenSQLite(cfg.Path)
	case config.DriverPostgres:
		return NewPool(ctx, cfg)
	default:
		return nil, fmt.Errorf("driver de catálogo desconocido %q: %w", cfg.Driver, domain.ErrInvalidInput)
	}
}

// Unavailable devuelve un Store sin conexión: toda lectura falla con domain.ErrStoreUnavailable.
func Unavailable() *Store {
	return &Store{}
}

// Dialect devuelve el dialecto del motor.
func (s *Store) Dialect() Dialect { return s.dialect }

// Read ejecuta fn con un repositorio atado a una transacción de solo lectura.
// La transacción siempre termina en Rollback: nada se confirma nunca.
func (s *Store) Read(ctx context.Context, fn func(repo repository.CatalogRepository) error) error {
	if s == nil || s.db == nil {
		return domain.ErrStoreUnavailable
	}
	if s.path != "" {
		if _, err := os.Stat(s.path); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("%w: begin read: %v", domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	return fn(NewCatalogRepository(tx, s.dialect))
}

// Close cierra el pool subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
