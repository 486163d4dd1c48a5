package model

import "time"

type Church struct {
	ID               uint64 `gorm:"primaryKey"`
	CreatedAt        time.Time
	Name             string `gorm:"size:200;not null"`
	Address          string `gorm:"type:text"`
	City             string `gorm:"type:text"`
	State            string `gorm:"type:text"`
	ContactNumber    string `gorm:"type:text"`
	ShortDescription string `gorm:"type:text"`
	Logo             string `gorm:"type:text"` // /uploads/ 下的 URL
	CreatedBy        uint64 `gorm:"not null;index"`
}

func (Church) TableName() string {
	return "churches"
}

type ChurchMember struct {
	ID        uint64 `gorm:"primaryKey"`
	ChurchID  uint64 `gorm:"not null;index;uniqueIndex:uk_church_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_church_user"`
	CreatedAt time.Time
	JoinedAt  time.Time
}

func (ChurchMember) TableName() string {
	return "church_members"
}
