package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 不存在和不属于当前管理员给同一句话，避免暴露教会是否存在
const notChurchOwnerMsg = "You are not authorized to manage news for this church."

type NewsService struct {
	news      *mysql.NewsRepository
	churches  *mysql.ChurchRepository
	uploadDir string
	events    *pkg.KafkaProducer
	log       *zap.Logger
}

func NewNewsService(db *gorm.DB, uploadDir string, events *pkg.KafkaProducer, log *zap.Logger) *NewsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NewsService{
		news:      &mysql.NewsRepository{DB: db},
		churches:  &mysql.ChurchRepository{DB: db},
		uploadDir: uploadDir,
		events:    events,
		log:       log,
	}
}

// CreateNews 仅教会归属者可发；图片必传
func (s *NewsService) CreateNews(adminID uint64, title, content string, churchID uint64, image *multipart.FileHeader) (*model.News, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, pkg.Invalid("Title and content are required.")
	}

	if _, err := s.requireChurchOwned(churchID, adminID); err != nil {
		return nil, err
	}

	if image == nil {
		return nil, pkg.Invalid("News image is required.")
	}
	imageURL, err := pkg.SaveUpload(image, s.uploadDir, "news_")
	if err != nil {
		return nil, err
	}

	news := &model.News{
		Title:     title,
		Content:   content,
		Image:     imageURL,
		ChurchID:  churchID,
		CreatedBy: adminID,
	}
	if err := s.news.Create(news); err != nil {
		return nil, err
	}

	s.publishEvent("created", news, adminID)
	return news, nil
}

// DeleteNews 硬删除，仅创建者可删
func (s *NewsService) DeleteNews(adminID, newsID uint64) error {
	news, err := s.news.FindByID(newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("News item not found.")
		}
		return err
	}
	if news.CreatedBy != adminID {
		return pkg.Forbidden("You are not authorized to delete this news item.")
	}

	if err := s.news.Delete(newsID); err != nil {
		return err
	}

	s.publishEvent("deleted", news, adminID)
	return nil
}

// UpdateNews 改标题/正文，图片可选换新；仅创建者可改
func (s *NewsService) UpdateNews(adminID, newsID uint64, title, content string, image *multipart.FileHeader) (*model.News, error) {
	news, err := s.news.FindByID(newsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("News item not found.")
		}
		return nil, err
	}
	if news.CreatedBy != adminID {
		return nil, pkg.Forbidden("You are not authorized to update this news item.")
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, pkg.Invalid("Title and content are required.")
	}

	if image != nil {
		imageURL, err := pkg.SaveUpload(image, s.uploadDir, "news_")
		if err != nil {
			return nil, err
		}
		news.Image = imageURL
	}

	news.Title = title
	news.Content = content
	if err := s.news.Save(news); err != nil {
		return nil, err
	}
	return news, nil
}

// ListPage 管理端分页：先过归属检查，再在 church_id+created_by 过滤集上开窗
func (s *NewsService) ListPage(adminID, churchID uint64, page, perPage int) (*NewsPage, error) {
	if _, err := s.requireChurchOwned(churchID, adminID); err != nil {
		return nil, err
	}

	page, perPage = normalizePaging(page, perPage)
	offset := (page - 1) * perPage

	items, total, err := s.news.ListPage(churchID, adminID, offset, perPage)
	if err != nil {
		return nil, err
	}

	next, prev := pagePointers(page, offset, len(items), total)
	return &NewsPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		Offset:   offset,
		NextPage: next,
		PrevPage: prev,
	}, nil
}

// ListByChurch 会员端：某教会全部新闻，最新在前，不做归属过滤
func (s *NewsService) ListByChurch(churchID uint64) ([]model.News, error) {
	return s.news.ListByChurch(churchID)
}

// requireChurchOwned 归属守卫：单条过滤查询，失败统一 403
func (s *NewsService) requireChurchOwned(churchID, adminID uint64) (*model.Church, error) {
	church, err := s.churches.FindOwned(churchID, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.Forbidden(notChurchOwnerMsg)
		}
		return nil, err
	}
	return church, nil
}

// publishEvent 尽力而为的事件投递，失败只记日志不影响请求
func (s *NewsService) publishEvent(event string, news *model.News, actor uint64) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(pkg.NewsEvent{
		Event:    event,
		NewsID:   news.ID,
		ChurchID: news.ChurchID,
		Actor:    actor,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.events.Send(ctx, pkg.MakeKeyFromID(news.ChurchID), payload); err != nil {
			s.log.Warn("publish news event failed",
				zap.String("event", event),
				zap.Uint64("news_id", news.ID),
				zap.Error(err))
		}
	}()
}
