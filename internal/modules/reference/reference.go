package reference

import (
	"context"

	"github.com/google/uuid"
)

// Lookup is one row of a reference table (category, type, color, warehouse).
type Lookup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Repository defines the interface for reference-data reads.
type Repository interface {
	ListCategories(ctx context.Context) ([]*Lookup, error)
	ListTypes(ctx context.Context) ([]*Lookup, error)
	ListColors(ctx context.Context) ([]*Lookup, error)
	ListWarehouses(ctx context.Context) ([]*Lookup, error)

	// ListMONumbers returns the distinct manufacturing-order numbers in use.
	ListMONumbers(ctx context.Context) ([]string, error)
}
