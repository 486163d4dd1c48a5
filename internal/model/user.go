package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string `gorm:"type:text;not null"`
	Email     string `gorm:"uniqueIndex;size:128;not null"`
	Password  string `gorm:"size:255;not null"` // 只存哈希
	IsAdmin   bool   `gorm:"not null;default:false"`
	Age       *int
	Gender    *string `gorm:"type:text"`
	Phone     *string `gorm:"type:text"`
	Address   *string `gorm:"type:text"`
}
