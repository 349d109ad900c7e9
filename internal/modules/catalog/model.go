package catalog

import (
	"database/sql"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the aggregated catalog entity: one product row joined with its
// current price, photo set and inventory snapshot.
type Product struct {
	ID            uuid.UUID           `json:"id"`
	ProductName   string              `json:"product_name"`
	TypeID        uuid.UUID           `json:"type_id"`
	ColorID       uuid.UUID           `json:"color_id"`
	CategoryID    uuid.UUID           `json:"category_id"`
	Size          string              `json:"size"`
	MONumber      string              `json:"mo_number"`
	MicrowaveSafe bool                `json:"microwave_safe"`
	Description   string              `json:"description"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Price         decimal.NullDecimal `json:"price"`
	Photos        []string            `json:"photos"`
	Quantity      int                 `json:"quantity"`
	ReorderLevel  int                 `json:"reorder_level"`
	WarehouseID   uuid.NullUUID       `json:"warehouse_id"`
	WarehouseName string              `json:"warehouse_name,omitempty"`
}

// productRow is one flat row of the product join. A product with several
// photos (or several price/inventory rows) appears once per combination.
type productRow struct {
	ID            uuid.UUID
	ProductName   string
	TypeID        uuid.UUID
	ColorID       uuid.UUID
	CategoryID    uuid.UUID
	Size          string
	MONumber      string
	MicrowaveSafe bool
	Description   string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Price         decimal.NullDecimal
	Photo         sql.NullString
	Quantity      sql.NullInt64
	ReorderLevel  sql.NullInt64
	WarehouseID   uuid.NullUUID
	WarehouseName sql.NullString
}

// ListFilters is the optional predicate for the paginated product list.
// Zero-valued filters are omitted from the query entirely.
type ListFilters struct {
	NameLike string
	TypeID   *uuid.UUID
	ColorID  *uuid.UUID
}

// ListRequest carries the raw list parameters as received over HTTP.
type ListRequest struct {
	Page     int
	Limit    int
	NameLike string
	TypeID   string
	ColorID  string
}

// ListResult is the paginated aggregation output.
type ListResult struct {
	Products   []*Product `json:"products"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// ProductInput is the writable field set shared by create and update.
type ProductInput struct {
	ProductName   string `validate:"required"`
	TypeID        string `validate:"required,uuid"`
	ColorID       string `validate:"required,uuid"`
	CategoryID    string `validate:"required,uuid"`
	Size          string
	MONumber      string
	MicrowaveSafe bool
	Description   string
	IsActive      bool
	Price         string `validate:"required"`
	Quantity      int    `validate:"gte=0"`
	ReorderLevel  int    `validate:"gte=0"`
	WarehouseID   string `validate:"omitempty,uuid"`
}

// Upload is one photo file handed to the service for storage.
type Upload struct {
	Filename string
	File     io.Reader
}
