package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret 未配置 JWT_SECRET 时的兜底值，仅供本地开发，
// 生产环境必须覆盖（启动时会打警告日志）。
const DefaultJWTSecret = "changeme"

type JWTConfig struct {
	Secret        string
	Algorithm     string
	ExpireMinutes int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Config struct {
	HTTPAddr    string
	MySQLDSN    string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	UploadDir   string
	CORSOrigins []string

	JWT  JWTConfig
	SMTP SMTPConfig

	KafkaBrokers []string
	KafkaTopic   string
}

// Load 进程启动时读取一次环境变量，之后全程只读。
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/church?charset=utf8mb4&parseTime=True")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 1440)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "NoReply <no-reply@example.com>")

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "church.news.events")

	return &Config{
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		MySQLDSN:    v.GetString("MYSQL_DSN"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RedisPass:   v.GetString("REDIS_PASSWORD"),
		RedisDB:     v.GetInt("REDIS_DB"),
		UploadDir:   v.GetString("UPLOAD_DIR"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			Algorithm:     v.GetString("JWT_ALGORITHM"),
			ExpireMinutes: v.GetInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
	}
}

// InsecureJWTSecret 是否仍在使用不安全的默认密钥
func (c *Config) InsecureJWTSecret() bool {
	return c.JWT.Secret == DefaultJWTSecret
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
