package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Product{},
		&Sale{},
	); err != nil {
		return err
	}

	return seedProducts(db)
}

// seedProducts inserts the default catalog only when the products table is
// empty, so restarting never duplicates it.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := []Product{
		{Name: "Notebook", Price: 30.00, Stock: 50},
		{Name: "Pen", Price: 10.00, Stock: 100},
		{Name: "Pencil", Price: 5.00, Stock: 120},
		{Name: "Eraser", Price: 3.00, Stock: 80},
		{Name: "Stapler", Price: 45.00, Stock: 25},
	}

	return db.Create(&catalog).Error
}
