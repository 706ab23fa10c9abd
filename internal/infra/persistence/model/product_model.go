package model

import "time"

// ProductModel is the GORM-specific struct for the 'product' table.
// The owner foreign key is declared in the migrations.
type ProductModel struct {
	ID          int64     `gorm:"column:product_id;primaryKey;autoIncrement"`
	ProfileID   int64     `gorm:"column:product_profile_id;not null;index:product_profile_id_idx"`
	Description string    `gorm:"column:product_description;size:1000;not null"`
	Price       float64   `gorm:"column:product_price;type:numeric(12,2);not null"`
	PostDate    time.Time `gorm:"column:product_post_date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product"
}
