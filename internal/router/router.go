package router

import (
	"net/http"

	"Church_Community/internal/config"
	"Church_Community/internal/handler"
	"Church_Community/internal/middleware"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"
	"Church_Community/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Tokens   *pkg.TokenService
	Producer *pkg.KafkaProducer
}

func InitRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authSvc := service.NewAuthService(mysql.DB, deps.Tokens, pkg.SMTPConfig(deps.Cfg.SMTP), deps.Log)
	churchSvc := service.NewChurchService(mysql.DB, deps.Cfg.UploadDir, deps.Log)
	memberSvc := service.NewMemberService(mysql.DB)
	newsSvc := service.NewNewsService(mysql.DB, deps.Cfg.UploadDir, deps.Producer, deps.Log)

	auth := handler.NewAuthHandler(authSvc)
	church := handler.NewChurchHandler(churchSvc)
	member := handler.NewMemberHandler(memberSvc, newsSvc)
	news := handler.NewNewsHandler(newsSvc)

	users := &mysql.UserRepository{DB: mysql.DB}
	requireAuth := middleware.Auth(deps.Tokens, users)
	requireAdmin := middleware.AdminOnly()

	// 上传的 logo / 新闻图片只读静态托管
	r.Static("/uploads", deps.Cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 认证相关（无需登录）
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.AdminSignup)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/request-password-reset", auth.RequestPasswordReset)
		authGroup.POST("/reset-password", auth.ResetPassword)
	}

	// 会员注册无需登录，其余 /member 接口需要登录
	r.POST("/member/signup", auth.MemberSignup)
	memberGroup := r.Group("/member")
	memberGroup.Use(requireAuth)
	{
		memberGroup.GET("/churches", church.ListAll)
		memberGroup.POST("/churches/joinchurch", member.JoinChurch)
		memberGroup.GET("/news-by-church", member.NewsByChurch)
	}

	// 教会管理（管理员）
	r.POST("/churches", requireAuth, requireAdmin, church.Create)
	r.GET("/get-churches", requireAuth, requireAdmin, church.ListMine)

	// 新闻管理（管理员）
	newsGroup := r.Group("/news")
	newsGroup.Use(requireAuth, requireAdmin)
	{
		newsGroup.POST("/create-news", news.Create)
		newsGroup.POST("/delete", news.Delete)
		newsGroup.GET("/get-news", news.List)
		newsGroup.POST("/update", news.Update)
	}

	return r
}
