package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"github.com/tmasupe/kitchenware-backend/internal/storage"
	"go.uber.org/zap"
)

// Service defines the catalog business logic.
type Service interface {
	// ListProducts returns one page of aggregated products plus the
	// fan-out-independent total matching the filters.
	ListProducts(ctx context.Context, req ListRequest) (*ListResult, error)

	// GetProduct returns one aggregated product by id.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// CreateProduct stores the uploaded photos and inserts the product with
	// its price, photo and inventory rows.
	CreateProduct(ctx context.Context, input ProductInput, photos []Upload) (*Product, error)

	// UpdateProduct overwrites the product. The photo set is replaced only
	// when at least one new file is uploaded; zero files leave it untouched.
	UpdateProduct(ctx context.Context, id string, input ProductInput, photos []Upload) error

	// DeleteProduct removes the product, its rows and its photo files.
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	files    storage.Store
	validate *validator.Validate
	log      *zap.Logger
}

// NewService creates the catalog service.
func NewService(repo Repository, files storage.Store, log *zap.Logger) Service {
	return &service{
		repo:     repo,
		files:    files,
		validate: validator.New(),
		log:      log,
	}
}

func (s *service) ListProducts(ctx context.Context, req ListRequest) (*ListResult, error) {
	if req.Page < 1 || req.Limit < 1 {
		return nil, apperr.Validation("page and limit must be greater than 0")
	}

	filters := ListFilters{NameLike: req.NameLike}
	if req.TypeID != "" {
		id, err := uuid.Parse(req.TypeID)
		if err != nil {
			return nil, apperr.Validation("invalid type_id")
		}
		filters.TypeID = &id
	}
	if req.ColorID != "" {
		id, err := uuid.Parse(req.ColorID)
		if err != nil {
			return nil, apperr.Validation("invalid color_id")
		}
		filters.ColorID = &id
	}

	offset := (req.Page - 1) * req.Limit
	products, err := s.repo.List(ctx, filters, req.Limit, offset)
	if err != nil {
		return nil, apperr.Internal("failed to fetch products", err)
	}
	total, err := s.repo.Count(ctx, filters)
	if err != nil {
		return nil, apperr.Internal("failed to fetch products", err)
	}
	if products == nil {
		products = []*Product{}
	}

	return &ListResult{
		Products:   products,
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validation("invalid product id")
	}
	p, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal("failed to fetch product details", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput, photos []Upload) (*Product, error) {
	p, err := s.buildProduct(ctx, uuid.New(), input)
	if err != nil {
		return nil, err
	}

	filenames, err := s.storePhotos(photos)
	if err != nil {
		return nil, err
	}
	p.Photos = filenames

	if err := s.repo.Create(ctx, p); err != nil {
		s.removeFiles(filenames)
		return nil, apperr.Internal("failed to create product", err)
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, input ProductInput, photos []Upload) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid product id")
	}
	existing, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return apperr.Internal("failed to update product", err)
	}
	if existing == nil {
		return apperr.NotFound("product not found")
	}

	p, err := s.buildProduct(ctx, uid, input)
	if err != nil {
		return err
	}

	replacePhotos := len(photos) > 0
	var filenames []string
	if replacePhotos {
		filenames, err = s.storePhotos(photos)
		if err != nil {
			return err
		}
		p.Photos = filenames
	}

	if err := s.repo.Update(ctx, p, replacePhotos); err != nil {
		s.removeFiles(filenames)
		return apperr.Internal("failed to update product", err)
	}

	// The new set is committed; the files behind the replaced rows are
	// removed best-effort.
	if replacePhotos {
		s.removeFiles(existing.Photos)
	}
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid product id")
	}
	existing, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return apperr.Internal("failed to delete product", err)
	}
	if existing == nil {
		return apperr.NotFound("product not found")
	}

	s.removeFiles(existing.Photos)

	if err := s.repo.Delete(ctx, uid); err != nil {
		return apperr.Internal("failed to delete product", err)
	}
	return nil
}

// buildProduct validates the input and resolves it into an entity. The
// referenced category must exist before anything is written.
func (s *service) buildProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.Validation("invalid product: %v", err)
	}

	typeID, _ := uuid.Parse(input.TypeID)
	colorID, _ := uuid.Parse(input.ColorID)
	categoryID, _ := uuid.Parse(input.CategoryID)

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, apperr.Validation("invalid price %q", input.Price)
	}

	exists, err := s.repo.CategoryExists(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal("failed to verify category", err)
	}
	if !exists {
		return nil, apperr.Validation("invalid category_id")
	}

	p := &Product{
		ID:            id,
		ProductName:   input.ProductName,
		TypeID:        typeID,
		ColorID:       colorID,
		CategoryID:    categoryID,
		Size:          input.Size,
		MONumber:      input.MONumber,
		MicrowaveSafe: input.MicrowaveSafe,
		Description:   input.Description,
		IsActive:      input.IsActive,
		Price:         decimal.NullDecimal{Decimal: price, Valid: true},
		Photos:        []string{},
		Quantity:      input.Quantity,
		ReorderLevel:  input.ReorderLevel,
	}
	if input.WarehouseID != "" {
		wid, err := uuid.Parse(input.WarehouseID)
		if err != nil {
			return nil, apperr.Validation("invalid warehouse_id")
		}
		p.WarehouseID = uuid.NullUUID{UUID: wid, Valid: true}
	}
	return p, nil
}

func (s *service) storePhotos(photos []Upload) ([]string, error) {
	filenames := make([]string, 0, len(photos))
	for _, upload := range photos {
		name, err := s.files.Save(upload.File, upload.Filename)
		if err != nil {
			s.removeFiles(filenames)
			return nil, apperr.Internal("failed to store photo", fmt.Errorf("save %s: %w", upload.Filename, err))
		}
		filenames = append(filenames, name)
	}
	return filenames, nil
}

// removeFiles deletes photo files best-effort: failures are logged and never
// surfaced to the request.
func (s *service) removeFiles(filenames []string) {
	for _, name := range filenames {
		if err := s.files.Remove(name); err != nil {
			s.log.Warn("failed to delete photo file", zap.String("photo", name), zap.Error(err))
		}
	}
}
