package middleware

import (
	"net/http"
	"strings"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "current_user"

// 缺头、坏令牌、用户已不存在（删号后拿旧令牌）都走同一个 401，
// 不告诉调用方具体是哪一步挂的
const unauthorizedMsg = "Invalid authentication credentials"

// Auth 解析 Bearer 令牌并把对应的用户记录注入上下文
func Auth(tokens *pkg.TokenService, users *mysql.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMsg})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMsg})
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMsg})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMsg})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminOnly 纯断言门：身份已由 Auth 解析，这里只看 is_admin
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": unauthorizedMsg})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "You are not authorized to perform this action."})
			return
		}
		c.Next()
	}
}

// CurrentUser 取 Auth 注入的用户，未注入时返回 nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
