package model

import "time"

type News struct {
	ID        uint64    `gorm:"primaryKey;index:idx_church_time_id,priority:3,sort:desc"`
	ChurchID  uint64    `gorm:"not null;index:idx_church_time_id,priority:1"`
	CreatedBy uint64    `gorm:"not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Content   string    `gorm:"type:text;not null"`
	Image     string    `gorm:"type:text"` // /uploads/ 下的 URL
	CreatedAt time.Time `gorm:"index:idx_church_time_id,priority:2,sort:desc"`
	UpdatedAt time.Time
}

func (News) TableName() string {
	return "news"
}
