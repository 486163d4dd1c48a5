package service

import (
	"context"
	"mime/multipart"
	"strings"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"
	"Church_Community/internal/repository/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChurchService struct {
	repo      *mysql.ChurchRepository
	cache     *redis.ChurchCacheRepository
	uploadDir string
	log       *zap.Logger
}

func NewChurchService(db *gorm.DB, uploadDir string, log *zap.Logger) *ChurchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChurchService{
		repo:      &mysql.ChurchRepository{DB: db},
		cache:     &redis.ChurchCacheRepository{},
		uploadDir: uploadDir,
		log:       log,
	}
}

type ChurchInput struct {
	Name             string
	Address          string
	City             string
	State            string
	ContactNumber    string
	ShortDescription string
}

// CreateChurch 管理员建教会，logo 可选
func (s *ChurchService) CreateChurch(ctx context.Context, adminID uint64, in ChurchInput, logo *multipart.FileHeader) (*model.Church, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, pkg.Invalid("Church name is required")
	}

	logoURL := ""
	if logo != nil {
		url, err := pkg.SaveUpload(logo, s.uploadDir, "")
		if err != nil {
			return nil, err
		}
		logoURL = url
	}

	church := &model.Church{
		Name:             name,
		Address:          strings.TrimSpace(in.Address),
		City:             strings.TrimSpace(in.City),
		State:            strings.TrimSpace(in.State),
		ContactNumber:    strings.TrimSpace(in.ContactNumber),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		Logo:             logoURL,
		CreatedBy:        adminID,
	}
	if err := s.repo.Create(church); err != nil {
		return nil, err
	}

	// 目录缓存失效，失败只记日志
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("invalidate church directory cache failed", zap.Error(err))
	}
	return church, nil
}

// ListOwned 当前管理员名下的教会，按 id 升序
func (s *ChurchService) ListOwned(adminID uint64) ([]model.Church, error) {
	return s.repo.ListByCreator(adminID)
}

// ListAll 会员端目录：先走缓存，未命中回源并回填
func (s *ChurchService) ListAll(ctx context.Context) ([]model.Church, error) {
	if list, hit, err := s.cache.Get(ctx); err == nil && hit {
		return list, nil
	} else if err != nil {
		s.log.Warn("church directory cache read failed", zap.Error(err))
	}

	list, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, list); err != nil {
		s.log.Warn("church directory cache backfill failed", zap.Error(err))
	}
	return list, nil
}
