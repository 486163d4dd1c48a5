package mysql

import (
	"Church_Community/internal/model"

	"gorm.io/gorm"
)

type NewsRepository struct {
	DB *gorm.DB
}

func (r *NewsRepository) Create(news *model.News) error {
	return r.DB.Create(news).Error
}

func (r *NewsRepository) FindByID(id uint64) (*model.News, error) {
	var news model.News
	err := r.DB.First(&news, id).Error
	return &news, err
}

func (r *NewsRepository) Save(news *model.News) error {
	return r.DB.Save(news).Error
}

func (r *NewsRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.News{}, id).Error
}

// ListByChurch 某教会全部新闻，最新在前。
// 批量插入时 created_at 会撞同一秒，必须再按 id 倒序打破并列，
// 否则排序不稳定、分页会重复/漏项。
func (r *NewsRepository) ListByChurch(churchID uint64) ([]model.News, error) {
	var list []model.News
	err := r.DB.Where("church_id = ?", churchID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// ListPage 管理端分页窗口：总数在完整过滤集上统计，与窗口无关
func (r *NewsRepository) ListPage(churchID, createdBy uint64, offset, limit int) ([]model.News, int64, error) {
	var total int64
	if err := r.DB.Model(&model.News{}).
		Where("church_id = ? AND created_by = ?", churchID, createdBy).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.News
	err := r.DB.Where("church_id = ? AND created_by = ?", churchID, createdBy).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}
