package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Sale struct {
	ID         uint    `gorm:"primaryKey"`
	ProductID  uint    `gorm:"not null;index"`
	Product    Product `gorm:"foreignKey:ProductID"`
	Quantity   int     `gorm:"not null"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
}

type SaleDAO struct {
	db *gorm.DB
}

func NewSaleDAO(db *gorm.DB) *SaleDAO {
	return &SaleDAO{
		db: db,
	}
}

func (d *SaleDAO) Insert(ctx context.Context, sale Sale) (Sale, error) {
	result := d.db.WithContext(ctx).Create(&sale)
	if result.Error != nil {
		return Sale{}, result.Error
	}

	return sale, nil
}

func (d *SaleDAO) FindAll(ctx context.Context) ([]Sale, error) {
	var sales []Sale

	result := d.db.WithContext(ctx).Order("id").Find(&sales)
	if result.Error != nil {
		return nil, result.Error
	}

	return sales, nil
}
