// Package pdf genera la ficha de precios de una presentación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + Presentación │  Marca + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Categoría / Contenido / Estado                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Desde (unidades) | Precio unitario                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RELACIONADAS: Marca | Presentación | Contenido | Desde      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al detalle + leyenda de precios                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 112, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa catalog.PriceSheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	siteName string
	baseURL  string // si no está vacío, el pie incluye un QR al detalle
	now      func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(siteName, baseURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{
		siteName: siteName,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// GeneratePriceSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePriceSheet(_ context.Context, sheet *dto.PresentationDetailResponse) ([]byte, error) {
	if sheet == nil {
		return nil, fmt.Errorf("pdf: ficha vacía")
	}
	p := sheet.Presentation

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de precios "+p.ProductName, true).
		WithAuthor(g.siteName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("PRECIOS POR CANTIDAD"))
	m.AddRows(tiersHeaderRow())
	m.AddRows(tierRows(sheet.PriceTiers)...)

	if len(sheet.Related) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle("OTRAS PRESENTACIONES"))
		m.AddRows(relatedRows(sheet.Related)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows(p)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + presentación (izq) y marca + fecha (der).
func (g *MarotoPDFGenerator) headerRow(p dto.PresentationResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(p.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Name, props.Text{
				Size: 10, Top: 9,
			}),
		),
		col.New(4).Add(
			text.New("FICHA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(p.BrandName, "Sin marca"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// detailsRow: categoría, contenido y estado de la presentación.
func detailsRow(p dto.PresentationResponse) core.Row {
	estado := "Disponible"
	if !p.Active {
		estado = "No disponible"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Categoría: %s   |   Contenido: %s   |   Estado: %s",
				nonEmpty(p.CategoryName, "—"),
				nonEmpty(p.Content, "—"),
				estado,
			), props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func tiersHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Desde (unidades)", 6, align.Left),
		h("Precio unitario", 6, align.Right),
	)
}

// tierRows: una fila por escalón, ascendentes por cantidad mínima.
func tierRows(tiers []dto.PriceTierResponse) []core.Row {
	if len(tiers) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Precio a consultar.", props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(tiers))
	for _, t := range tiers {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				fmt.Sprintf("%d", t.MinQuantity),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				t.PriceLabel,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func relatedRows(related []dto.VariantResponse) []core.Row {
	result := make([]core.Row, 0, len(related))
	for _, v := range related {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(nonEmpty(v.Brand, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(v.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(v.Content, "—"), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(nonEmpty(v.StartingPriceLabel, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// footerRows: QR al detalle en línea (si hay URL base) + leyenda.
func (g *MarotoPDFGenerator) footerRows(p dto.PresentationResponse) []core.Row {
	legend := text.New(
		"Precios en pesos colombianos (COP) con IVA incluido, sujetos a cambio sin previo aviso. "+
			"El precio unitario aplica a partir de la cantidad indicada.",
		props.Text{Size: 6.5, Color: colorGray, Top: 2},
	)
	if g.baseURL == "" {
		return []core.Row{row.New(10).Add(col.New(12).Add(legend))}
	}
	url := fmt.Sprintf("%s/api/presentaciones/%d", g.baseURL, p.ID)
	return []core.Row{
		row.New(40).Add(
			col.New(3).Add(code.NewQr(url, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New("Escanea el código para ver\nesta presentación en línea.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(url, props.Text{Size: 7, Top: 16, Left: 3, Color: colorPrimary}),
			),
		),
		row.New(10).Add(col.New(12).Add(legend)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
