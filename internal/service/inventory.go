package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

var (
	ErrProductNotFound   = repository.ErrProductNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock

	ErrEmptyProductName = errors.New("product name must not be empty")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeStock    = errors.New("stock must not be negative")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id uint, price float64, stock int) (domain.Product, error)
	Delete(ctx context.Context, id uint) error
	Sell(ctx context.Context, productID uint, quantity int) (domain.Product, domain.Sale, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	FindAll(ctx context.Context) ([]domain.Sale, error)
}

// InventoryService holds the catalog and sale rules. Both the HTTP handlers
// and the operator console go through it, so state written from one entry
// point is immediately visible to the other.
type InventoryService struct {
	products ProductRepository
	sales    SaleRepository
}

func NewInventoryService(products ProductRepository, sales SaleRepository) *InventoryService {
	return &InventoryService{
		products: products,
		sales:    sales,
	}
}

func (s *InventoryService) AddProduct(ctx context.Context, name string, price float64, stock int) (domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Product{}, ErrEmptyProductName
	}
	if price < 0 {
		return domain.Product{}, ErrNegativePrice
	}
	if stock < 0 {
		return domain.Product{}, ErrNegativeStock
	}

	created, err := s.products.Create(ctx, domain.Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.products.Create -> %w", err)
	}

	return created, nil
}

func (s *InventoryService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.products.FindByID -> %w", err)
	}

	return product, nil
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.products.FindAll -> %w", err)
	}

	return products, nil
}

func (s *InventoryService) UpdateProduct(ctx context.Context, id uint, price float64, stock int) (domain.Product, error) {
	if price < 0 {
		return domain.Product{}, ErrNegativePrice
	}
	if stock < 0 {
		return domain.Product{}, ErrNegativeStock
	}

	updated, err := s.products.Update(ctx, id, price, stock)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.products.Update -> %w", err)
	}

	return updated, nil
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.products.Delete -> %w", err)
	}

	return nil
}

// Sell commits a sale as one unit: the stock decrement and the sale row either
// both land or neither does. The total is always computed from the stored
// catalog price, never taken from the caller.
func (s *InventoryService) Sell(ctx context.Context, productID uint, quantity int) (domain.Sale, error) {
	if quantity <= 0 {
		return domain.Sale{}, ErrInvalidQuantity
	}

	_, sale, err := s.products.Sell(ctx, productID, quantity)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.products.Sell -> %w", err)
	}

	return sale, nil
}

func (s *InventoryService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.sales.FindAll -> %w", err)
	}

	return sales, nil
}
