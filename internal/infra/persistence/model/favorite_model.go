package model

import "time"

// FavoriteModel is the GORM-specific struct for the 'favorite' join table.
// The composite primary key keeps one favorite per (profile, product) pair.
type FavoriteModel struct {
	ProfileID int64     `gorm:"column:favorite_profile_id;primaryKey;autoIncrement:false"`
	ProductID int64     `gorm:"column:favorite_product_id;primaryKey;autoIncrement:false;index:favorite_product_id_idx"`
	Date      time.Time `gorm:"column:favorite_date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorite"
}
