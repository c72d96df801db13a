package main

import (
	"github.com/MuhammedMazinMH/FundFeed/internal/cache"
	"github.com/MuhammedMazinMH/FundFeed/internal/config"
	"github.com/MuhammedMazinMH/FundFeed/internal/database"
	"github.com/MuhammedMazinMH/FundFeed/internal/logger"
	"github.com/MuhammedMazinMH/FundFeed/internal/router"
	"github.com/MuhammedMazinMH/FundFeed/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化趋势榜缓存（未启用时为 nil）
	c, err := cache.Init(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize redis: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, c, cfg)

	// 启动计数对账任务
	scheduler.Start(db, cfg)

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
