package handler

import (
	"net/http"
	"strconv"

	"Church_Community/internal/middleware"
	"Church_Community/internal/pkg"
	"Church_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	svc *service.NewsService
}

func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

type NewsDeleteReq struct {
	ID uint64 `json:"id"`
}

// NewsListPayload 老前端认的分页信封
type NewsListPayload struct {
	ItemsReceived int       `json:"itemsReceived"`
	CurPage       int       `json:"curPage"`
	NextPage      *int      `json:"nextPage"`
	PrevPage      *int      `json:"prevPage"`
	Offset        int       `json:"offset"`
	PerPage       int       `json:"perPage"`
	Items         []NewsOut `json:"items"`
}

// Create POST /news/create-news — multipart 表单，图片必传
func (h *NewsHandler) Create(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	churchID, err := strconv.ParseUint(c.PostForm("church_id"), 10, 64)
	if err != nil || churchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "church_id is required"})
		return
	}

	image, err := c.FormFile("news_image")
	if err != nil {
		image = nil // 缺图的错误话术由 service 统一给
	}

	news, err := h.svc.CreateNews(admin.ID, c.PostForm("title"), c.PostForm("content"), churchID, image)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "News created successfully",
		"newsItem": newNewsOut(news),
	})
}

// Delete POST /news/delete — 仅创建者
func (h *NewsHandler) Delete(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	var req NewsDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.DeleteNews(admin.ID, req.ID); err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News item deleted successfully.",
		"id":      req.ID,
	})
}

// List GET /news/get-news?church_id=&page=&per_page=
func (h *NewsHandler) List(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	churchID, err := strconv.ParseUint(c.Query("church_id"), 10, 64)
	if err != nil || churchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "church_id is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.svc.ListPage(admin.ID, churchID, page, perPage)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"newsList": NewsListPayload{
			ItemsReceived: len(result.Items),
			CurPage:       result.Page,
			NextPage:      result.NextPage,
			PrevPage:      result.PrevPage,
			Offset:        result.Offset,
			PerPage:       result.PerPage,
			Items:         newNewsOutList(result.Items),
		},
		"limit":  result.PerPage,
		"offset": result.Offset,
	})
}

// Update POST /news/update — multipart 表单，图片可选
func (h *NewsHandler) Update(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	newsID, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil || newsID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "id is required"})
		return
	}

	image, err := c.FormFile("news_image")
	if err != nil {
		image = nil // 不换图就保留旧图
	}

	news, err := h.svc.UpdateNews(admin.ID, newsID, c.PostForm("title"), c.PostForm("content"), image)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNewsOut(news))
}
