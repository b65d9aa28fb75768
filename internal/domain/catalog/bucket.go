package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// BucketDefinition grupo nombrado de la clasificación. Inmutable una vez construido.
type BucketDefinition struct {
	slug     string
	title    string
	keywords []string
}

// NewBucketDefinition construye un grupo; las palabras clave se guardan en minúsculas.
func NewBucketDefinition(slug, title string, keywords ...string) BucketDefinition {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kw = append(kw, k)
		}
	}
	return BucketDefinition{slug: slug, title: title, keywords: kw}
}

func (d BucketDefinition) Slug() string  { return d.slug }
func (d BucketDefinition) Title() string { return d.title }

// Keywords devuelve una copia de las palabras clave.
func (d BucketDefinition) Keywords() []string {
	out := make([]string, len(d.keywords))
	copy(out, d.keywords)
	return out
}

// Matches indica si el texto buscable contiene alguna palabra clave.
func (d BucketDefinition) Matches(searchable string) bool {
	for _, k := range d.keywords {
		if strings.Contains(searchable, k) {
			return true
		}
	}
	return false
}

// ImageOverride imagen curada para productos cuyo nombre contiene Match.
type ImageOverride struct {
	Match string
	Image string
}

// BucketItem producto asignado a un grupo.
type BucketItem struct {
	ProductID     int64
	Name          string
	Image         string
	StartingPrice decimal.NullDecimal
}

// Bucket grupo ya poblado.
type Bucket struct {
	Slug  string
	Title string
	Items []BucketItem
}

// Classifier reparte productos en grupos. El orden de Buckets es contrato:
// se recorren en orden de declaración y gana el primero que coincide.
type Classifier struct {
	Buckets     []BucketDefinition
	CatchAll    BucketDefinition // solo se emite si queda algún producto sin grupo
	Overrides   []ImageOverride  // se revisan en orden contra el nombre en minúsculas
	Placeholder string
}

// SearchableText nombre + nombres/contenidos de presentaciones activas + marcas, en minúsculas.
func SearchableText(p entity.CategoryProduct) string {
	parts := make([]string, 0, 1+3*len(p.Presentations))
	parts = append(parts, p.Name)
	for _, pr := range p.Presentations {
		parts = append(parts, pr.Name, pr.Content, pr.Brand)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Image elige la imagen representativa del producto.
func (c Classifier) Image(p entity.CategoryProduct) string {
	name := strings.ToLower(p.Name)
	for _, o := range c.Overrides {
		if o.Match != "" && strings.Contains(name, strings.ToLower(o.Match)) {
			return o.Image
		}
	}
	for _, pr := range p.Presentations {
		if pr.Image != "" {
			return pr.Image
		}
	}
	return c.Placeholder
}

// Classify asigna cada producto a lo sumo a un grupo. Los grupos nombrados se emiten siempre;
// el grupo comodín solo si no queda vacío.
func (c Classifier) Classify(products []entity.CategoryProduct) []Bucket {
	searchable := make([]string, len(products))
	for i, p := range products {
		searchable[i] = SearchableText(p)
	}
	assigned := make([]bool, len(products))

	out := make([]Bucket, 0, len(c.Buckets)+1)
	for _, def := range c.Buckets {
		b := Bucket{Slug: def.Slug(), Title: def.Title(), Items: []BucketItem{}}
		for i, p := range products {
			if assigned[i] || !def.Matches(searchable[i]) {
				continue
			}
			assigned[i] = true
			b.Items = append(b.Items, c.item(p))
		}
		out = append(out, b)
	}

	rest := Bucket{Slug: c.CatchAll.Slug(), Title: c.CatchAll.Title()}
	for i, p := range products {
		if !assigned[i] {
			rest.Items = append(rest.Items, c.item(p))
		}
	}
	if len(rest.Items) > 0 {
		out = append(out, rest)
	}
	return out
}

func (c Classifier) item(p entity.CategoryProduct) BucketItem {
	return BucketItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Image:         c.Image(p),
		StartingPrice: p.StartingPrice,
	}
}
