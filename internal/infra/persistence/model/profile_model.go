package model

import "time"

// ProfileModel is the GORM-specific struct for the 'profile' table.
type ProfileModel struct {
	ID       int64     `gorm:"column:profile_id;primaryKey;autoIncrement"`
	Username string    `gorm:"column:profile_username;size:32;not null;uniqueIndex:profile_username_key"`
	Location string    `gorm:"column:profile_location;size:64;not null;index:profile_location_idx"`
	JoinDate time.Time `gorm:"column:profile_join_date;not null"`
	Hash     *string   `gorm:"column:profile_hash;size:128"`
	Salt     *string   `gorm:"column:profile_salt;size:64"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profile"
}
