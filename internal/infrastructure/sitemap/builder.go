// Package sitemap serializa el sitemap del sitio (protocolo sitemaps.org 0.9).
package sitemap

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	appcatalog "github.com/jhoicas/catalogo-web/internal/application/catalog"
)

// NsSitemap namespace del documento urlset.
const NsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Builder implementa catalog.SitemapBuilder con etree.
type Builder struct{}

// NewBuilder crea el serializador.
func NewBuilder() *Builder { return &Builder{} }

// Build arma <urlset> con una <url> por entrada; loc = baseURL + Path.
func (b *Builder) Build(baseURL string, entries []appcatalog.SitemapEntry) ([]byte, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("sitemap: URL base requerida")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", NsSitemap)

	for _, e := range entries {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base + e.Path)
		if e.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(e.ChangeFreq)
		}
		if e.Priority > 0 {
			u.CreateElement("priority").SetText(strconv.FormatFloat(e.Priority, 'f', 1, 64))
		}
	}
	doc.Indent(2)

	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("sitemap: escribir xml: %w", err)
	}
	return out.Bytes(), nil
}

var _ appcatalog.SitemapBuilder = (*Builder)(nil)
