package pkg

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError 业务错误：稳定的状态分类 + 对外可见的提示语。
// 存储层的原始错误不会透出到响应里。
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

func Invalid(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: msg}
}

func Unauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Msg: msg}
}

func Forbidden(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Msg: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: msg}
}

func Conflict(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Msg: msg}
}

// WriteError 统一出错响应；非 APIError 一律按 500 处理，不暴露内部细节
func WriteError(c *gin.Context, err error) {
	var ae *APIError
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{"msg": ae.Msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
}
