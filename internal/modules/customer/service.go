package customer

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
)

// Service defines customer business logic.
type Service interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, input CustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to fetch customers", err)
	}
	if customers == nil {
		customers = []*Customer{}
	}
	return customers, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid customer id")
	}
	c, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal("failed to fetch customer", err)
	}
	if c == nil {
		return nil, apperr.NotFound("customer not found")
	}
	return c, nil
}

func (s *service) CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid customer: %v", err)
	}
	c := &Customer{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.Internal("failed to create customer", err)
	}
	return c, nil
}

func (s *service) UpdateCustomer(ctx context.Context, id string, input CustomerInput) (*Customer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid customer: %v", err)
	}
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = input.Name
	c.Email = input.Email
	c.Phone = input.Phone
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apperr.Internal("failed to update customer", err)
	}
	return c, nil
}

// DeleteCustomer refuses to remove a customer that orders still reference;
// order history is not cascaded away.
func (s *service) DeleteCustomer(ctx context.Context, id string) error {
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	hasOrders, err := s.repo.HasOrders(ctx, c.ID)
	if err != nil {
		return apperr.Internal("failed to delete customer", err)
	}
	if hasOrders {
		return apperr.Validation("customer has existing orders")
	}
	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return apperr.Internal("failed to delete customer", err)
	}
	return nil
}
