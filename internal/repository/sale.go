package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

type SaleDAO interface {
	Insert(ctx context.Context, sale dao.Sale) (dao.Sale, error)
	FindAll(ctx context.Context) ([]dao.Sale, error)
}

type SaleRepository struct {
	dao SaleDAO
}

func NewSaleRepository(dao SaleDAO) *SaleRepository {
	return &SaleRepository{
		dao: dao,
	}
}

func (r *SaleRepository) daoToDomain(s dao.Sale) domain.Sale {
	return domain.Sale{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}
}

func (r *SaleRepository) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	created, err := r.dao.Insert(ctx, dao.Sale{
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice,
	})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]domain.Sale, error) {
	sales, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Sale, len(sales))
	for i, s := range sales {
		result[i] = r.daoToDomain(s)
	}

	return result, nil
}
