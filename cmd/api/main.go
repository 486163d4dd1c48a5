package main

import (
	"os"

	"Church_Community/internal/config"
	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"
	"Church_Community/internal/repository/redis"
	"Church_Community/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.InsecureJWTSecret() {
		logger.Warn("JWT_SECRET is not set, using the insecure default; set it before deploying")
	}

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logger.Fatal("mysql init failed", zap.Error(err))
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Church{},
		&model.ChurchMember{},
		&model.News{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	tokens, err := pkg.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.ExpireMinutes)
	if err != nil {
		logger.Fatal("token service init failed", zap.Error(err))
	}

	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			logger.Fatal("kafka producer init failed", zap.Error(err))
		}
		defer producer.Close()
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("upload dir init failed", zap.Error(err))
	}

	r := router.InitRouter(router.Deps{
		Cfg:      cfg,
		Log:      logger,
		Tokens:   tokens,
		Producer: producer,
	})
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
