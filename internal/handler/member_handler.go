package handler

import (
	"net/http"
	"strconv"

	"Church_Community/internal/middleware"
	"Church_Community/internal/pkg"
	"Church_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members *service.MemberService
	news    *service.NewsService
}

func NewMemberHandler(members *service.MemberService, news *service.NewsService) *MemberHandler {
	return &MemberHandler{members: members, news: news}
}

type JoinChurchReq struct {
	ChurchID uint64 `json:"church_id"`
}

// JoinChurch POST /member/churches/joinchurch
func (h *MemberHandler) JoinChurch(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req JoinChurchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	result, err := h.members.JoinChurch(user.ID, req.ChurchID)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	message := "Joined church successfully"
	if !result.Joined {
		message = "Already a member of this church"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"joined":     result.Joined,
		"membership": newMembershipOut(result.Membership),
	})
}

// NewsByChurch GET /member/news-by-church?church_id= — 全部新闻，最新在前
func (h *MemberHandler) NewsByChurch(c *gin.Context) {
	churchID, err := strconv.ParseUint(c.Query("church_id"), 10, 64)
	if err != nil || churchID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "church_id is required"})
		return
	}

	list, err := h.news.ListByChurch(churchID)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNewsOutList(list))
}
