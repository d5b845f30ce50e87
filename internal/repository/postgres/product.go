package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gr-qft/teini/internal/domain"
	"github.com/gr-qft/teini/pkg/database"
	apperrors "github.com/gr-qft/teini/pkg/errors"
)

// ProductRepository implements repository.ProductRepository on PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `p.id, p.name, p.description, p.price, p.currency, p.availability, p.brand_id,
	       b.id, b.name, b.website, p.created_at, p.updated_at`

// ListVisible returns visible products in id order, optionally windowed.
// The id ordering keeps page windows stable across calls against an
// unchanged store.
func (r *ProductRepository) ListVisible(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		WHERE p.availability <> $1
		ORDER BY p.id`, productColumns)

	args := []any{domain.AvailabilityNotVisible}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("list visible products: %w", err))
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("iterate product rows: %w", err))
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

// CountVisible counts products whose availability is not notVisible.
func (r *ProductRepository) CountVisible(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE availability <> $1`,
		domain.AvailabilityNotVisible,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.StoreUnavailable(fmt.Errorf("count visible products: %w", err))
	}
	return count, nil
}

// GetByID retrieves one product by id, including its brand when present.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		WHERE p.id = $1`, productColumns)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("get product: %w", err))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, apperrors.StoreUnavailable(fmt.Errorf("get product: %w", err))
		}
		return nil, apperrors.NotFound("product", fmt.Sprintf("%d", id))
	}

	p, err := scanProductRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

// scanProductRow scans one product joined with its optional brand.
func scanProductRow(rows pgx.Rows) (domain.Product, error) {
	var (
		p            domain.Product
		brandID      *int64
		brandName    *string
		brandWebsite *string
	)

	err := rows.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Currency,
		&p.Availability,
		&p.BrandID,
		&brandID,
		&brandName,
		&brandWebsite,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, apperrors.ErrNotFound
		}
		return domain.Product{}, err
	}

	if brandID != nil && brandName != nil {
		p.Brand = &domain.Brand{ID: *brandID, Name: *brandName}
		if brandWebsite != nil {
			p.Brand.Website = *brandWebsite
		}
	}

	return p, nil
}
