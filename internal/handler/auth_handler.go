package handler

import (
	"net/http"

	"Church_Community/internal/pkg"
	"Church_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type SignupReq struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetRequestReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// AdminSignup POST /auth/signup — 这条路由强制 is_admin=true
func (h *AuthHandler) AdminSignup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	user, token, err := h.svc.Signup(signupInput(req), true)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authToken": token,
		"user":      newUserOut(user),
	})
}

// MemberSignup POST /member/signup — 普通会员注册
func (h *AuthHandler) MemberSignup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	user, token, err := h.svc.Signup(signupInput(req), false)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auth_token": token,
		"user":       newUserOut(user),
	})
}

// Login POST /auth/login
// 双形状响应：authToken 给老前端，access_token/token_type 给标准客户端。
// 只在这一层拼形状，service 只有一种返回。
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	user, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authToken":    token,
		"access_token": token,
		"token_type":   "bearer",
		"user":         newUserOut(user),
	})
}

// RequestPasswordReset POST /auth/request-password-reset
// 账号存在与否响应一致
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req ResetRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset code has been sent"})
}

// ResetPassword POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		pkg.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func signupInput(req SignupReq) service.SignupInput {
	return service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Address:  req.Address,
	}
}
