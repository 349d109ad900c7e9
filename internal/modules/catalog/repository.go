package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the storage interface for aggregated products.
type Repository interface {
	// List returns the aggregated entities for one page of distinct
	// product ids matching the filters, newest first.
	List(ctx context.Context, f ListFilters, limit, offset int) ([]*Product, error)

	// Count returns the number of distinct products matching the filters,
	// independent of any join fan-out.
	Count(ctx context.Context, f ListFilters) (int, error)

	// GetByID returns one aggregated entity, or nil when the id is unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// CategoryExists reports whether a category row with this id exists.
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create inserts the product plus its price, photo and inventory rows
	// in a single transaction.
	Create(ctx context.Context, p *Product) error

	// Update overwrites the product's scalar fields, refreshes the price
	// and inventory rows, and when replacePhotos is set replaces the whole
	// photo set with p.Photos.
	Update(ctx context.Context, p *Product, replacePhotos bool) error

	// Delete removes the product and its photo, price and inventory rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
