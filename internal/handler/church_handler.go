package handler

import (
	"net/http"

	"Church_Community/internal/middleware"
	"Church_Community/internal/pkg"
	"Church_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type ChurchHandler struct {
	svc *service.ChurchService
}

func NewChurchHandler(svc *service.ChurchService) *ChurchHandler {
	return &ChurchHandler{svc: svc}
}

// Create POST /churches — multipart 表单 + 可选 logo 文件
func (h *ChurchHandler) Create(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	in := service.ChurchInput{
		Name:             c.PostForm("name"),
		Address:          c.PostForm("address"),
		City:             c.PostForm("city"),
		State:            c.PostForm("state"),
		ContactNumber:    c.PostForm("contact_number"),
		ShortDescription: c.PostForm("short_description"),
	}

	logo, err := c.FormFile("logo")
	if err != nil {
		logo = nil // 没传 logo 是合法的
	}

	church, err := h.svc.CreateChurch(c.Request.Context(), admin.ID, in, logo)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChurchOut(church))
}

// ListMine GET /get-churches — 当前管理员名下教会
func (h *ChurchHandler) ListMine(c *gin.Context) {
	admin := middleware.CurrentUser(c)

	list, err := h.svc.ListOwned(admin.ID)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChurchOutList(list))
}

// ListAll GET /member/churches — 全量目录，不做归属过滤
func (h *ChurchHandler) ListAll(c *gin.Context) {
	list, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChurchOutList(list))
}
