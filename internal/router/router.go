package router

import (
	"github.com/MuhammedMazinMH/FundFeed/internal/auth"
	"github.com/MuhammedMazinMH/FundFeed/internal/cache"
	"github.com/MuhammedMazinMH/FundFeed/internal/config"
	"github.com/MuhammedMazinMH/FundFeed/internal/handler"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, c *cache.Cache, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "fundfeed",
		})
	})

	roundHandler := handler.NewRoundHandler(logic.NewRoundLogic(db, c))
	followHandler := handler.NewFollowHandler(logic.NewFollowLogic(db))
	introHandler := handler.NewIntroRequestHandler(logic.NewIntroRequestLogic(db))
	userHandler := handler.NewUserHandler(logic.NewUserLogic(db))

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 公开路由：发现页不需要登录
		v1.GET("/rounds", roundHandler.GetTrending)
		v1.GET("/rounds/:id", roundHandler.GetRound)

		// 需要认证的路由
		authed := v1.Group("")
		authed.Use(auth.Middleware(cfg.Auth.JWTSecret))
		{
			rounds := authed.Group("/rounds")
			{
				rounds.POST("", roundHandler.CreateRound)
				rounds.PUT("/:id", roundHandler.UpdateRound)
				rounds.DELETE("/:id", roundHandler.DeleteRound)
				rounds.POST("/:id/follow", followHandler.Follow)
				rounds.DELETE("/:id/follow", followHandler.Unfollow)
				rounds.GET("/:id/follow", followHandler.GetFollowState)
				rounds.GET("/:id/intro-request", introHandler.GetIntroRequestState)
				rounds.GET("/:id/intro-requests", introHandler.GetRoundIntroRequests)
			}

			intros := authed.Group("/intro-requests")
			{
				intros.POST("", introHandler.CreateIntroRequest)
				intros.PATCH("/:id/status", introHandler.UpdateIntroRequestStatus)
			}

			users := authed.Group("/users/me")
			{
				users.PUT("", userHandler.UpsertProfile)
				users.GET("", userHandler.GetProfile)
				users.GET("/follows", followHandler.GetMyFollows)
				users.GET("/rounds", roundHandler.GetMyRounds)
			}
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
