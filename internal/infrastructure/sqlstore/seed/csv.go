package seed

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// Columnas del CSV de importación. El encabezado es obligatorio; el orden es libre.
// Cada fila es un escalón de precio; las filas sin precio solo declaran la presentación.
const (
	ColCategory     = "categoria"
	ColProduct      = "producto"
	ColBrand        = "marca"
	ColPresentation = "presentacion"
	ColContent      = "contenido"
	ColImage        = "imagen"
	ColActive       = "activo"
	ColMinQuantity  = "cantidad_minima"
	ColPrice        = "precio"
)

var requiredColumns = []string{ColCategory, ColProduct, ColPresentation}

// Encodings soportados del archivo de entrada.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "iso-8859-1"
)

// CSVOptions opciones de lectura.
type CSVOptions struct {
	Comma    rune   // 0 → ','
	Encoding string // utf-8 (por defecto) o iso-8859-1 (exportaciones de Excel en Windows)
}

// DecodeReader envuelve r para entregar UTF-8.
func DecodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("encoding no soportado %q (utf-8|iso-8859-1)", encoding)
	}
}

type productKey struct {
	categoryID int64
	name       string
}

type presentationKey struct {
	productID int64
	brandID   int64
	name      string
	content   string
}

type tierKey struct {
	presentationID int64
	minQuantity    int
}

// datasetBuilder asigna ids secuenciales y deduplica por clave natural.
type datasetBuilder struct {
	ds            Dataset
	categories    map[string]int64
	brands        map[string]int64
	products      map[productKey]int64
	presentations map[presentationKey]int64
	tiers         map[tierKey]bool
}

func newDatasetBuilder() *datasetBuilder {
	return &datasetBuilder{
		categories:    make(map[string]int64),
		brands:        make(map[string]int64),
		products:      make(map[productKey]int64),
		presentations: make(map[presentationKey]int64),
		tiers:         make(map[tierKey]bool),
	}
}

// ReadCSV convierte el CSV plano en un Dataset listo para WriteSQLite.
func ReadCSV(r io.Reader, opts CSVOptions) (Dataset, error) {
	dec, err := DecodeReader(r, opts.Encoding)
	if err != nil {
		return Dataset{}, err
	}
	br := bufio.NewReader(dec)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, fmt.Errorf("csv vacío")
		}
		return Dataset{}, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return Dataset{}, fmt.Errorf("falta la columna %q", c)
		}
	}

	b := newDatasetBuilder()
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Dataset{}, fmt.Errorf("línea %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if err := b.addRow(field); err != nil {
			return Dataset{}, fmt.Errorf("línea %d: %w", line, err)
		}
	}
	return b.ds, nil
}

func (b *datasetBuilder) addRow(field func(string) string) error {
	catName, prodName, presName := field(ColCategory), field(ColProduct), field(ColPresentation)
	if catName == "" && prodName == "" && presName == "" {
		return nil // fila en blanco
	}
	if catName == "" || prodName == "" || presName == "" {
		return fmt.Errorf("categoria, producto y presentacion son requeridos")
	}

	catSlug := slug.Make(catName)
	catID, ok := b.categories[catSlug]
	if !ok {
		catID = int64(len(b.ds.Categories) + 1)
		b.categories[catSlug] = catID
		b.ds.Categories = append(b.ds.Categories, entity.Category{ID: catID, Name: catName, Slug: catSlug})
	}

	var brandID int64
	if brandName := field(ColBrand); brandName != "" {
		key := strings.ToLower(brandName)
		if brandID, ok = b.brands[key]; !ok {
			brandID = int64(len(b.ds.Brands) + 1)
			b.brands[key] = brandID
			b.ds.Brands = append(b.ds.Brands, entity.Brand{ID: brandID, Name: brandName})
		}
	}

	pk := productKey{categoryID: catID, name: strings.ToLower(prodName)}
	prodID, ok := b.products[pk]
	if !ok {
		prodID = int64(len(b.ds.Products) + 1)
		b.products[pk] = prodID
		b.ds.Products = append(b.ds.Products, entity.Product{ID: prodID, Name: prodName, CategoryID: catID})
	}

	active, err := parseActive(field(ColActive))
	if err != nil {
		return err
	}
	content := field(ColContent)
	prk := presentationKey{productID: prodID, brandID: brandID, name: strings.ToLower(presName), content: strings.ToLower(content)}
	presID, ok := b.presentations[prk]
	if !ok {
		presID = int64(len(b.ds.Presentations) + 1)
		b.presentations[prk] = presID
		b.ds.Presentations = append(b.ds.Presentations, entity.Presentation{
			ID:        presID,
			ProductID: prodID,
			BrandID:   brandID,
			Name:      presName,
			Content:   content,
			Image:     field(ColImage),
			Active:    active,
		})
	}

	rawPrice := field(ColPrice)
	if rawPrice == "" {
		return nil
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	minQty := 1
	if raw := field(ColMinQuantity); raw != "" {
		if minQty, err = strconv.Atoi(raw); err != nil || minQty < 1 {
			return fmt.Errorf("cantidad_minima inválida %q", raw)
		}
	}
	tk := tierKey{presentationID: presID, minQuantity: minQty}
	if b.tiers[tk] {
		return fmt.Errorf("escalón duplicado: %q desde %d unidades", presName, minQty)
	}
	b.tiers[tk] = true
	b.ds.PriceTiers = append(b.ds.PriceTiers, entity.PriceTier{PresentationID: presID, MinQuantity: minQty, Price: price})
	return nil
}

func parseActive(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "1", "si", "sí", "s", "true", "x":
		return true, nil
	case "0", "no", "n", "false":
		return false, nil
	default:
		return false, fmt.Errorf("activo inválido %q", raw)
	}
}

var thousandsDots = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParsePrice interpreta precios escritos a mano: "$ 15.900", "15900", "15.900,50", "15900.5".
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	case thousandsDots.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("precio inválido %q", raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("precio negativo %q", raw)
	}
	return d, nil
}
