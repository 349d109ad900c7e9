package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for order storage.
type Repository interface {
	List(ctx context.Context) ([]*OrderDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// CurrentPrice returns the product's current price. found is false when
	// the product has no price row.
	CurrentPrice(ctx context.Context, productID uuid.UUID) (price decimal.Decimal, found bool, err error)

	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}
