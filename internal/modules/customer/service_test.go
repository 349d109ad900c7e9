package customer

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
)

type mockRepo struct {
	customers  map[uuid.UUID]*Customer
	withOrders map[uuid.UUID]bool
	deleted    []uuid.UUID
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		customers:  map[uuid.UUID]*Customer{},
		withOrders: map[uuid.UUID]bool{},
	}
}

func (m *mockRepo) Create(ctx context.Context, c *Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return m.customers[id], nil
}

func (m *mockRepo) List(ctx context.Context) ([]*Customer, error) { return nil, nil }

func (m *mockRepo) Update(ctx context.Context, c *Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.customers, id)
	return nil
}

func (m *mockRepo) HasOrders(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.withOrders[id], nil
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.CreateCustomer(context.Background(), CustomerInput{Email: "a@b.example"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestUpdateCustomerOverwritesFields(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	c, err := svc.CreateCustomer(context.Background(), CustomerInput{Name: "Thandi"})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), c.ID.String(),
		CustomerInput{Name: "Thandi M.", Phone: "+260-555-0101"})
	require.NoError(t, err)
	assert.Equal(t, "Thandi M.", updated.Name)
	assert.Equal(t, "+260-555-0101", updated.Phone)
}

func TestDeleteCustomerBlockedByOrders(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	c, err := svc.CreateCustomer(context.Background(), CustomerInput{Name: "Thandi"})
	require.NoError(t, err)
	repo.withOrders[c.ID] = true

	err = svc.DeleteCustomer(context.Background(), c.ID.String())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Empty(t, repo.deleted)
}

func TestDeleteCustomerWithoutOrders(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	c, err := svc.CreateCustomer(context.Background(), CustomerInput{Name: "Thandi"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), c.ID.String()))
	assert.Equal(t, []uuid.UUID{c.ID}, repo.deleted)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.GetCustomer(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}
