package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// MaxSitemapURLs límite de URLs por documento urlset.
const MaxSitemapURLs = 50000

// SitemapUseCase arma sitemap.xml con páginas informativas, categorías y productos.
type SitemapUseCase struct {
	store      ReadRunner
	log        *logger.Logger
	builder    SitemapBuilder
	baseURL    string
	bucketSlug string
}

// NewSitemapUseCase construye el caso de uso. bucketSlug es la categoría con página agrupada.
func NewSitemapUseCase(store ReadRunner, log *logger.Logger, builder SitemapBuilder, baseURL, bucketSlug string) *SitemapUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SitemapUseCase{store: store, log: log, builder: builder, baseURL: baseURL, bucketSlug: bucketSlug}
}

// Entries rutas del sitemap. Si el catálogo no responde solo incluye las páginas informativas.
func (uc *SitemapUseCase) Entries(ctx context.Context) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(infoPages))
	for _, p := range infoPages {
		prio := 0.5
		freq := "monthly"
		if p.Path == "/" {
			prio, freq = 1.0, "daily"
		}
		entries = append(entries, SitemapEntry{Path: p.Path, ChangeFreq: freq, Priority: prio})
	}

	var (
		cats []entity.Category
		ids  []int64
	)
	err := uc.store.Read(ctx, func(repo repository.CatalogRepository) error {
		var err error
		if cats, err = repo.ListCategories(ctx); err != nil {
			return fmt.Errorf("listar categorías: %w", err)
		}
		room := productRoom(len(entries), len(cats), uc.bucketSlug != "")
		if room == 0 {
			return nil
		}
		if ids, err = repo.ListProductIDs(ctx, room); err != nil {
			return fmt.Errorf("listar productos: %w", err)
		}
		return nil
	})
	if err != nil {
		logDegraded(uc.log, "catalog.Sitemap", err)
		return entries
	}

	if uc.bucketSlug != "" {
		entries = append(entries, SitemapEntry{Path: "/api/" + uc.bucketSlug, ChangeFreq: "weekly", Priority: 0.7})
	}
	for _, c := range cats {
		q := url.Values{"categoria": {c.Slug}}
		entries = append(entries, SitemapEntry{Path: "/api/productos?" + q.Encode(), ChangeFreq: "weekly", Priority: 0.7})
	}
	for _, id := range ids {
		entries = append(entries, SitemapEntry{Path: fmt.Sprintf("/api/productos/%d", id), ChangeFreq: "weekly", Priority: 0.6})
	}
	if len(entries) > MaxSitemapURLs {
		entries = entries[:MaxSitemapURLs]
	}
	return entries
}

// productRoom cupo de URLs de producto que queda tras las fijas.
func productRoom(pages, categories int, withBucket bool) int {
	room := MaxSitemapURLs - pages - categories
	if withBucket {
		room--
	}
	return max(room, 0)
}

// Build serializa el sitemap completo.
func (uc *SitemapUseCase) Build(ctx context.Context) ([]byte, error) {
	out, err := uc.builder.Build(uc.baseURL, uc.Entries(ctx))
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	return out, nil
}
