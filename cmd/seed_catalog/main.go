// seed_catalog genera el archivo SQLite del catálogo a partir de un CSV plano
// (una fila por escalón de precio).
//
// Uso: go run ./cmd/seed_catalog -i productos.csv -o catalogo.db [--sep ';'] [--encoding iso-8859-1]
// Columnas: categoria, producto, marca, presentacion, contenido, imagen, activo, cantidad_minima, precio.
package main

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-web/internal/infrastructure/sqlstore/seed"
)

func main() {
	in := pflag.StringP("input", "i", "productos.csv", "CSV de entrada")
	out := pflag.StringP("output", "o", "catalogo.db", "archivo SQLite de salida (se reemplaza)")
	sep := pflag.String("sep", ",", "separador de columnas")
	enc := pflag.String("encoding", seed.EncodingUTF8, "encoding del CSV (utf-8|iso-8859-1)")
	pflag.Parse()

	comma, size := utf8.DecodeRuneInString(*sep)
	if comma == utf8.RuneError || size != len(*sep) {
		fmt.Fprintf(os.Stderr, "Separador inválido %q\n", *sep)
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ds, err := seed.ReadCSV(f, seed.CSVOptions{Comma: comma, Encoding: *enc})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	if err := os.Remove(*out); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Reemplazar %s: %v\n", *out, err)
		os.Exit(1)
	}
	if err := seed.WriteSQLite(context.Background(), *out, ds); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir catálogo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d categorías, %d marcas, %d productos, %d presentaciones, %d escalones\n",
		*out, len(ds.Categories), len(ds.Brands), len(ds.Products), len(ds.Presentations), len(ds.PriceTiers))
}
