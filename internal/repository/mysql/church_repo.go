package mysql

import (
	"Church_Community/internal/model"

	"gorm.io/gorm"
)

type ChurchRepository struct {
	DB *gorm.DB
}

func (r *ChurchRepository) Create(church *model.Church) error {
	return r.DB.Create(church).Error
}

func (r *ChurchRepository) FindByID(id uint64) (*model.Church, error) {
	var church model.Church
	err := r.DB.First(&church, id).Error
	return &church, err
}

// FindOwned 存在性和归属在同一条查询里过滤：不存在和不属于调用者
// 对外不可区分，都走 ErrRecordNotFound。
func (r *ChurchRepository) FindOwned(id, adminID uint64) (*model.Church, error) {
	var church model.Church
	err := r.DB.Where("id = ? AND created_by = ?", id, adminID).First(&church).Error
	return &church, err
}

func (r *ChurchRepository) ListByCreator(adminID uint64) ([]model.Church, error) {
	var list []model.Church
	err := r.DB.Where("created_by = ?", adminID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *ChurchRepository) ListAll() ([]model.Church, error) {
	var list []model.Church
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}
