package dao

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Product struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"type:decimal(10,2);not null"`
	Stock     int     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) Update(ctx context.Context, id uint, price float64, stock int) (Product, error) {
	result := d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"price": price, "stock": stock})
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *ProductDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Sell decrements stock and appends the sale row in one transaction. The
// product row is locked FOR UPDATE so concurrent sales of the same product are
// serialized and stock can never go negative.
func (d *ProductDAO) Sell(ctx context.Context, productID uint, quantity int) (Product, Sale, error) {
	var (
		product Product
		sale    Sale
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, productID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}

			return result.Error
		}

		if product.Stock < quantity {
			return ErrInsufficientStock
		}

		product.Stock -= quantity
		if err := tx.Model(&Product{}).Where("id = ?", product.ID).Update("stock", product.Stock).Error; err != nil {
			return err
		}

		sale = Sale{
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: roundToCents(product.Price * float64(quantity)),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return Product{}, Sale{}, err
	}

	return product, sale, nil
}

// The price column is decimal(10,2); keep computed totals on the same grid.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
