package main

import (
	"log"

	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/config"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/database"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/handlers"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/middleware"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/services"
	"github.com/AWeheid/RamadanQuizesAlWeheid/internal/ws"

	_ "github.com/AWeheid/RamadanQuizesAlWeheid/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Ramadan Quiz API
// @version         1.0
// @description     Daily quiz competition: registration, timed answers, leaderboards and admin tools
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.SessionTTLDays)
	scoringService := services.NewScoringService()
	questionService := services.NewQuestionService(db)
	answerService := services.NewAnswerService(db, scoringService)
	statsService := services.NewStatsService(db)
	settingsService := services.NewSettingsService(db)
	pushService := services.NewPushService(db, cfg)

	authHandler := handlers.NewAuthHandler(authService, hub)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(statsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	pushHandler := handlers.NewPushHandler(pushService)
	wsHandler := handlers.NewWSHandler(hub, cfg.AdminSecret)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Token"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/admin", wsHandler.HandleAdminFeed)

	api := r.Group("/api")
	{
		api.GET("/status", settingsHandler.Status)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/questions/:day", questionHandler.ListForDay)
		api.GET("/leaderboard", leaderboardHandler.Public)
		api.GET("/push/vapid-key", pushHandler.VAPIDKey)

		authed := api.Group("")
		authed.Use(middleware.SessionAuth(authService))
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/answer", answerHandler.Submit)
			authed.GET("/my-score", answerHandler.MyScore)
			authed.GET("/check-day/:day", answerHandler.CheckDay)
			authed.POST("/push/subscribe", pushHandler.Subscribe)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminSecret))
		{
			admin.GET("/questions/:day", questionHandler.AdminListForDay)
			admin.POST("/questions", questionHandler.Create)
			admin.PUT("/questions/:id", questionHandler.Update)
			admin.DELETE("/questions/:id", questionHandler.Delete)
			admin.PUT("/settings", settingsHandler.Update)
			admin.GET("/leaderboard", leaderboardHandler.Admin)
			admin.GET("/stats", leaderboardHandler.Stats)
			admin.GET("/participants", leaderboardHandler.Participants)
			admin.GET("/export", leaderboardHandler.Export)
			admin.POST("/notify", pushHandler.Notify)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
