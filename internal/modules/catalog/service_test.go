package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"go.uber.org/zap"
)

// ── mocks ────────────────────────────────────────────────────────────────────

type mockRepo struct {
	products   map[uuid.UUID]*Product
	categories map[uuid.UUID]bool

	listCalls  int
	countCalls int
	listResult []*Product
	total      int

	created           []*Product
	updated           []*Product
	lastReplacePhotos bool
	deleted           []uuid.UUID

	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		products:   map[uuid.UUID]*Product{},
		categories: map[uuid.UUID]bool{},
	}
}

func (m *mockRepo) List(ctx context.Context, f ListFilters, limit, offset int) ([]*Product, error) {
	m.listCalls++
	return m.listResult, nil
}

func (m *mockRepo) Count(ctx context.Context, f ListFilters) (int, error) {
	m.countCalls++
	return m.total, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return m.products[id], nil
}

func (m *mockRepo) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.categories[id], nil
}

func (m *mockRepo) Create(ctx context.Context, p *Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, p)
	m.products[p.ID] = p
	return nil
}

func (m *mockRepo) Update(ctx context.Context, p *Product, replacePhotos bool) error {
	m.updated = append(m.updated, p)
	m.lastReplacePhotos = replacePhotos
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.products, id)
	return nil
}

type mockStore struct {
	seq     int
	saved   []string
	removed []string
}

func (m *mockStore) Save(src io.Reader, originalName string) (string, error) {
	m.seq++
	name := fmt.Sprintf("stored-%d%s", m.seq, filepath.Ext(originalName))
	m.saved = append(m.saved, name)
	return name, nil
}

func (m *mockStore) Remove(filename string) error {
	m.removed = append(m.removed, filename)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestService(repo *mockRepo, files *mockStore) Service {
	return NewService(repo, files, zap.NewNop())
}

func validInput(categoryID uuid.UUID) ProductInput {
	return ProductInput{
		ProductName:  "Lidded Container",
		TypeID:       uuid.NewString(),
		ColorID:      uuid.NewString(),
		CategoryID:   categoryID.String(),
		Size:         "L",
		MONumber:     "MO-2041",
		IsActive:     true,
		Price:        "12.50",
		Quantity:     40,
		ReorderLevel: 10,
	}
}

func uploads(names ...string) []Upload {
	var ups []Upload
	for _, n := range names {
		ups = append(ups, Upload{Filename: n, File: strings.NewReader("img")})
	}
	return ups
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestListProductsRejectsBadPagination(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, &mockStore{})

	for _, req := range []ListRequest{
		{Page: 0, Limit: 5},
		{Page: 1, Limit: 0},
		{Page: -3, Limit: -1},
	} {
		_, err := svc.ListProducts(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	}
	assert.Zero(t, repo.listCalls, "no query may run for invalid pagination")
	assert.Zero(t, repo.countCalls)
}

func TestListProductsTotalIndependentOfPageSize(t *testing.T) {
	repo := newMockRepo()
	repo.total = 42
	repo.listResult = []*Product{{ID: uuid.New(), Photos: []string{"a.jpg", "b.jpg"}}}
	svc := newTestService(repo, &mockStore{})

	result, err := svc.ListProducts(context.Background(), ListRequest{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 42, result.TotalCount)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 1, result.Limit)
	assert.Len(t, result.Products, 1)
}

func TestListProductsEmptyPageIsNotNull(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockStore{})

	result, err := svc.ListProducts(context.Background(), ListRequest{Page: 99, Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
}

func TestListProductsRejectsMalformedFilterIDs(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockStore{})

	_, err := svc.ListProducts(context.Background(), ListRequest{Page: 1, Limit: 5, TypeID: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

// ── get ──────────────────────────────────────────────────────────────────────

func TestGetProductNotFound(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockStore{})

	_, err := svc.GetProduct(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

// ── create ───────────────────────────────────────────────────────────────────

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	repo := newMockRepo()
	files := &mockStore{}
	svc := newTestService(repo, files)

	_, err := svc.CreateProduct(context.Background(), validInput(uuid.New()), uploads("a.jpg"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Empty(t, repo.created, "nothing may be inserted for a bad category")
	assert.Empty(t, files.saved, "no file may be stored for a bad category")
}

func TestCreateProductStoresPhotosAndRows(t *testing.T) {
	categoryID := uuid.New()
	repo := newMockRepo()
	repo.categories[categoryID] = true
	files := &mockStore{}
	svc := newTestService(repo, files)

	p, err := svc.CreateProduct(context.Background(), validInput(categoryID), uploads("front.jpg", "back.png"))
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, files.saved, p.Photos, "entity carries the assigned filenames")
	assert.Len(t, p.Photos, 2)
	assert.True(t, p.Price.Valid)
	assert.True(t, decimal.RequireFromString("12.50").Equal(p.Price.Decimal))
}

func TestCreateProductCleansUpFilesOnInsertFailure(t *testing.T) {
	categoryID := uuid.New()
	repo := newMockRepo()
	repo.categories[categoryID] = true
	repo.createErr = errors.New("db down")
	files := &mockStore{}
	svc := newTestService(repo, files)

	_, err := svc.CreateProduct(context.Background(), validInput(categoryID), uploads("front.jpg"))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))
	assert.Equal(t, files.saved, files.removed, "stored files are removed when the insert fails")
}

// ── update ───────────────────────────────────────────────────────────────────

func existingProduct(repo *mockRepo, categoryID uuid.UUID, photos ...string) *Product {
	p := &Product{ID: uuid.New(), ProductName: "old", CategoryID: categoryID, Photos: photos}
	repo.products[p.ID] = p
	repo.categories[categoryID] = true
	return p
}

func TestUpdateProductWithoutFilesKeepsPhotoSet(t *testing.T) {
	repo := newMockRepo()
	categoryID := uuid.New()
	p := existingProduct(repo, categoryID, "keep1.jpg", "keep2.jpg")
	files := &mockStore{}
	svc := newTestService(repo, files)

	err := svc.UpdateProduct(context.Background(), p.ID.String(), validInput(categoryID), nil)
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.False(t, repo.lastReplacePhotos)
	assert.Empty(t, files.saved)
	assert.Empty(t, files.removed, "existing photo files stay on disk")
}

func TestUpdateProductWithFilesReplacesPhotoSet(t *testing.T) {
	repo := newMockRepo()
	categoryID := uuid.New()
	p := existingProduct(repo, categoryID, "old1.jpg", "old2.jpg")
	files := &mockStore{}
	svc := newTestService(repo, files)

	err := svc.UpdateProduct(context.Background(), p.ID.String(), validInput(categoryID), uploads("new.jpg"))
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.True(t, repo.lastReplacePhotos)
	assert.Equal(t, files.saved, repo.updated[0].Photos)
	assert.ElementsMatch(t, []string{"old1.jpg", "old2.jpg"}, files.removed)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockStore{})

	err := svc.UpdateProduct(context.Background(), uuid.NewString(), validInput(uuid.New()), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

// ── delete ───────────────────────────────────────────────────────────────────

func TestDeleteProductRemovesRowsAndFiles(t *testing.T) {
	repo := newMockRepo()
	p := existingProduct(repo, uuid.New(), "a.jpg", "b.jpg", "c.jpg")
	files := &mockStore{}
	svc := newTestService(repo, files)

	require.NoError(t, svc.DeleteProduct(context.Background(), p.ID.String()))

	assert.Equal(t, []uuid.UUID{p.ID}, repo.deleted)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, files.removed,
		"one sink deletion per prior photo filename")
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockStore{})

	err := svc.DeleteProduct(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}
