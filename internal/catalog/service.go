package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gr-qft/teini/internal/repository"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// DefaultPageSize matches the storefront grid width.
const DefaultPageSize = 3

// Service assembles catalog pages: visible products from the repository,
// image sets from the assembler, pagination metadata from the total count.
// Every consumer, including the first page rendered statically, goes through
// FetchPage so all pages share one shape.
type Service struct {
	repo      repository.ProductRepository
	assembler *Assembler
	cache     *PageCache
	pageSize  int
	logger    *slog.Logger
}

// NewService creates a catalog service. pageSize <= 0 selects the default.
// cache may be nil.
func NewService(repo repository.ProductRepository, assembler *Assembler, cache *PageCache, pageSize int, logger *slog.Logger) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		repo:      repo,
		assembler: assembler,
		cache:     cache,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// PageSize returns the configured page size.
func (s *Service) PageSize() int {
	return s.pageSize
}

// FetchPage returns the zero-based catalog page at index. A data store
// failure fails the whole page; image resolution failures only shrink
// individual image sets.
func (s *Service) FetchPage(ctx context.Context, index int) (*PageView, error) {
	if index < 0 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("page index must not be negative, got %d", index))
	}

	if view, ok := s.cache.Get(ctx, index); ok {
		s.logger.DebugContext(ctx, "catalog page served from cache", slog.Int("page", index))
		return view, nil
	}

	total, err := s.repo.CountVisible(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListVisible(ctx, index*s.pageSize, s.pageSize)
	if err != nil {
		return nil, err
	}

	sets, err := s.assembler.Assemble(ctx, products)
	if err != nil {
		return nil, err
	}

	view := buildPageView(products, sets, index, s.pageSize, total)
	s.cache.Set(ctx, index, view)

	s.logger.InfoContext(ctx, "catalog page assembled",
		slog.Int("page", index),
		slog.Int("products", len(view.Products)),
		slog.Int("image_sets", len(view.Images)),
		slog.Int("total", total),
	)

	return view, nil
}
