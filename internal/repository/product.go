package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var (
	ErrProductNotFound   = dao.ErrProductNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindByID(ctx context.Context, id uint) (dao.Product, error)
	FindAll(ctx context.Context) ([]dao.Product, error)
	Update(ctx context.Context, id uint, price float64, stock int) (dao.Product, error)
	Delete(ctx context.Context, id uint) error
	Sell(ctx context.Context, productID uint, quantity int) (dao.Product, dao.Sale, error)
}

type ProductRepository struct {
	dao ProductDAO
}

func NewProductRepository(dao ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) daoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, dao.Product{
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	product, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(product), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	products, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Product, len(products))
	for i, p := range products {
		result[i] = r.daoToDomain(p)
	}

	return result, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, price float64, stock int) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, id, price, stock)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProductRepository) Sell(ctx context.Context, productID uint, quantity int) (domain.Product, domain.Sale, error) {
	product, sale, err := r.dao.Sell(ctx, productID, quantity)
	if err != nil {
		return domain.Product{}, domain.Sale{}, fmt.Errorf("r.dao.Sell -> %w", err)
	}

	return r.daoToDomain(product), domain.Sale{
		ID:         sale.ID,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice,
		CreatedAt:  sale.CreatedAt,
	}, nil
}
