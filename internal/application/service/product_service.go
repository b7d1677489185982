package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// ProductService handles the menu catalog. Prices here are only defaults:
// order lines capture the price at the moment of ordering.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	Name      string
	Category  string
	Price     float64
	Available bool
}

func (in *ProductInput) validate() error {
	var fieldErrs []apperror.FieldError
	if in.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if in.Price < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return apperror.NewFieldValidationError(fieldErrs)
	}
	return nil
}

// Create adds a menu item
func (s *ProductService) Create(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Available: input.Available,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get retrieves a menu item by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// Update changes a menu item. Existing order lines keep their captured price.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.Available = input.Available

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a menu item
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// List searches the menu
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, error) {
	return s.productRepo.List(ctx, params)
}
