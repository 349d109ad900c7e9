package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order links a customer to a product with a quantity and a server-computed
// total. The total is price × quantity against the price current at the time
// of the write; it is not frozen at order time.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderDetail is the list-view row joining customer and product names plus
// the product's current price.
type OrderDetail struct {
	ID           uuid.UUID       `json:"id"`
	Quantity     int             `json:"quantity"`
	CustomerName string          `json:"customer_name"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Total        decimal.Decimal `json:"total"`
}

// OrderInput is the writable field set shared by create and update.
type OrderInput struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	ProductID  string `json:"product_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}
