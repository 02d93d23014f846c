package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/irankiai/cinema-admin/config"
	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/cache"
	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL)
	if err != nil {
		logger.Fatal("failed to create redis cache", zap.Error(err))
	}

	mqConn, err := mq.NewMQConn(cfg.MQURL)
	if err != nil {
		logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
	}

	a, err := app.New(cfg, db, redisCache, logger, mqConn)
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}
	if err := a.Init(); err != nil {
		logger.Fatal("failed to init app", zap.Error(err))
	}
	defer a.Close()

	r := gin.Default()
	router.RegisterRoutes(r, a)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
