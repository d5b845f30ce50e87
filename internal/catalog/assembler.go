package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/gr-qft/teini/internal/domain"
	"github.com/gr-qft/teini/internal/imagestore"
)

var (
	assembledProductsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_assembled_products_total",
		Help: "Products whose image sets were assembled",
	})

	missingImageSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_missing_image_sets_total",
		Help: "Products that yielded no image set during assembly",
	})

	placeholderFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_placeholder_failures_total",
		Help: "Images dropped because placeholder derivation failed",
	})
)

// defaultMaxInFlight bounds concurrent per-product assembly so a large
// catalog cannot fan out unbounded against the image store.
const defaultMaxInFlight = 8

// EncodeFunc derives a placeholder encoding from raw image bytes.
type EncodeFunc func(data []byte) (string, error)

// Assembler resolves each product's image set and pairs every image with its
// placeholder encoding.
type Assembler struct {
	store       imagestore.Store
	encode      EncodeFunc
	logger      *slog.Logger
	maxInFlight int
}

// NewAssembler creates an assembler. maxInFlight <= 0 selects the default
// concurrency bound.
func NewAssembler(store imagestore.Store, encode EncodeFunc, logger *slog.Logger, maxInFlight int) *Assembler {
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	return &Assembler{
		store:       store,
		encode:      encode,
		logger:      logger,
		maxInFlight: maxInFlight,
	}
}

// Assemble resolves image sets for all products concurrently. Products whose
// image resolution fails are simply absent from the result; callers must
// treat a missing key as "no images". The whole call is cancellable as a
// unit: when ctx is done, no partial result is returned.
func (a *Assembler) Assemble(ctx context.Context, products []domain.Product) (map[int64]domain.ImageSet, error) {
	sets := make(map[int64]domain.ImageSet, len(products))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxInFlight)

	for _, product := range products {
		g.Go(func() error {
			set, err := a.assembleProduct(gctx, product.ID)
			if err != nil {
				// Cancellation is the only fatal path.
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				missingImageSetsTotal.Inc()
				a.logger.WarnContext(gctx, "product has no resolvable images",
					slog.Int64("product_id", product.ID),
					slog.String("error", err.Error()),
				)
				return nil
			}

			mu.Lock()
			sets[product.ID] = set
			mu.Unlock()
			assembledProductsTotal.Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble catalog page: %w", err)
	}

	return sets, nil
}

// assembleProduct lists the product's images and derives a placeholder for
// each one. Images whose placeholder cannot be derived are dropped; the
// surviving paths and placeholders stay paired index-for-index.
func (a *Assembler) assembleProduct(ctx context.Context, productID int64) (domain.ImageSet, error) {
	refs, err := a.store.List(ctx, productID)
	if err != nil {
		return domain.ImageSet{}, err
	}

	placeholders := make([]string, len(refs))
	failed := make([]bool, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxInFlight)

	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := a.store.Read(gctx, ref)
			if err == nil {
				placeholders[i], err = a.encode(data)
			}
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				placeholderFailuresTotal.Inc()
				a.logger.WarnContext(gctx, "dropping image from set",
					slog.Int64("product_id", productID),
					slog.String("ref", ref),
					slog.String("error", err.Error()),
				)
				failed[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ImageSet{}, err
	}

	set := domain.ImageSet{
		Paths:        make([]string, 0, len(refs)),
		Placeholders: make([]string, 0, len(refs)),
	}
	for i, ref := range refs {
		if failed[i] {
			continue
		}
		set.Paths = append(set.Paths, ref)
		set.Placeholders = append(set.Placeholders, placeholders[i])
	}

	if set.Len() == 0 {
		return domain.ImageSet{}, imagestore.ErrNotFound
	}

	return set, nil
}
