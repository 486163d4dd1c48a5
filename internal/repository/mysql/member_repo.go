package mysql

import (
	"Church_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChurchMemberRepository struct {
	DB *gorm.DB
}

// Join 原子的"不存在才插入"：唯一索引 (church_id, user_id) + ON CONFLICT
// DO NOTHING，并发重复加入只会落一行。返回本次是否真正新建。
func (r *ChurchMemberRepository) Join(member *model.ChurchMember) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "church_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ChurchMemberRepository) Find(churchID, userID uint64) (*model.ChurchMember, error) {
	var member model.ChurchMember
	err := r.DB.Where("church_id = ? AND user_id = ?", churchID, userID).First(&member).Error
	return &member, err
}
