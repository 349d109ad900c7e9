package order

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
)

// Service defines the order business logic. Totals are always computed
// server-side from the product's current price.
type Service interface {
	ListOrders(ctx context.Context) ([]*OrderDetail, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	CreateOrder(ctx context.Context, input OrderInput) (*Order, error)
	UpdateOrder(ctx context.Context, id string, input OrderInput) (*Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) ListOrders(ctx context.Context) ([]*OrderDetail, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch orders", err)
	}
	if orders == nil {
		orders = []*OrderDetail{}
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid order id")
	}
	o, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal("failed to fetch order", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (s *service) CreateOrder(ctx context.Context, input OrderInput) (*Order, error) {
	o, err := s.buildOrder(ctx, uuid.New(), input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, apperr.Internal("failed to create order", err)
	}
	return o, nil
}

// UpdateOrder recomputes the total against the product's price at update
// time, not the price recorded when the order was first placed.
func (s *service) UpdateOrder(ctx context.Context, id string, input OrderInput) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid order id")
	}
	existing, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal("failed to update order", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("order not found")
	}

	o, err := s.buildOrder(ctx, uid, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, apperr.Internal("failed to update order", err)
	}
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid order id")
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return apperr.Internal("failed to delete order", err)
	}
	return nil
}

func (s *service) buildOrder(ctx context.Context, id uuid.UUID, input OrderInput) (*Order, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid order: %v", err)
	}

	customerID, _ := uuid.Parse(input.CustomerID)
	productID, _ := uuid.Parse(input.ProductID)

	price, found, err := s.repo.CurrentPrice(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("failed to fetch product price", err)
	}
	if !found {
		return nil, apperr.Validation("product has no price")
	}

	return &Order{
		ID:         id,
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   input.Quantity,
		Total:      price.Mul(decimal.NewFromInt(int64(input.Quantity))),
	}, nil
}
