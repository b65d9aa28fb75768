package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"path/filepath"
	"strings"

	"modernc.org/sqlite"
)

// sqliteLowerFunc LOWER con plegado Unicode, registrado para todas las conexiones.
const sqliteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// OpenSQLite abre el archivo del catálogo en modo solo lectura (mode=ro + query_only).
// No exige que el archivo exista todavía: si falta, cada lectura reporta el catálogo
// como no disponible y lo retoma en cuanto aparece.
func OpenSQLite(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta del catálogo requerida")
	}
	cleanPath := filepath.Clean(path)
	db, err := sql.Open("sqlite", sqliteDSN(cleanPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	return &Store{db: db, dialect: DialectSQLite, path: cleanPath}, nil
}

func sqliteDSN(path string) string {
	return "file:" + filepath.ToSlash(path) +
		"?mode=ro&_pragma=query_only(1)&_pragma=busy_timeout(5000)"
}
