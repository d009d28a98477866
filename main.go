package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URL",
		"MONGO_DB",
		"JWT_SECRET",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	statsRepo := repository.GetStatsRepo(utils.MongoClient)
	planRepo := repository.GetPlanRepo(utils.MongoClient)
	moduleRepo := repository.GetModuleRepo(utils.MongoClient)
	questionRepo := repository.GetQuestionRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	playlistRepo := repository.GetPlaylistRepo(utils.MongoClient)
	reportRepo := repository.GetReportRepo(utils.MongoClient)

	// Services
	userService := &usecase.UserService{UsersRepo: userRepo}
	statsService := &usecase.StatsService{
		StatsRepo:    statsRepo,
		ModuleRepo:   moduleRepo,
		QuestionRepo: questionRepo,
	}
	planService := &usecase.PlanService{PlanRepo: planRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}
	playlistService := &usecase.PlaylistService{PlaylistRepo: playlistRepo}
	leaderboardService := &usecase.LeaderboardService{
		StatsRepo: statsRepo,
		UsersRepo: userRepo,
		Cache:     services.GlobalLeaderboardCache,
	}

	// Handlers
	authHandler := handler.NewAuthHandler(userService, sessionRepo)
	profileHandler := handler.NewProfileHandler(userService, sessionRepo)
	statsHandler := handler.NewStatsHandler(statsService)
	planHandler := handler.NewPlanHandler(planService)
	contentHandler := handler.NewContentHandler(moduleRepo, questionRepo)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	noteHandler := handler.NewNoteHandler(notesService)
	playlistHandler := handler.NewPlaylistHandler(playlistService)
	reportHandler := handler.NewReportHandler(reportRepo, questionRepo)
	sessionHandler := handler.NewSessionHandler(sessionRepo)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		auth.Use(middleware.RateLimitMiddleware(
			rate.Limit(utils.GetEnvAsInt("AUTH_RATE_LIMIT", 5)),
			utils.GetEnvAsInt("AUTH_RATE_BURST", 10)))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Plan listing is public for the pricing page.
		public.GET("/plans", planHandler.ListPlans)
		public.GET("/plans/:id", planHandler.GetPlan)
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("/my-stats", statsHandler.MyStats)
			users.GET("/profile", profileHandler.GetProfile)
			users.DELETE("/profile", profileHandler.DeleteAccount)
			users.POST("/logout", authHandler.Logout)
		}

		protected.GET("/modules", contentHandler.ListModules)
		protected.GET("/modules/:id/questions", contentHandler.ListModuleQuestions)

		questions := protected.Group("/questions")
		{
			questions.GET("/:id", contentHandler.GetQuestion)
			questions.POST("/:id/answer", statsHandler.SubmitAnswer)
			questions.POST("/:id/report", reportHandler.CreateReport)
		}

		protected.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

		notes := protected.Group("/notes")
		{
			notes.GET("", noteHandler.GetUserNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		playlists := protected.Group("/playlists")
		{
			playlists.GET("", playlistHandler.GetUserPlaylists)
			playlists.POST("", playlistHandler.CreatePlaylist)
			playlists.GET("/:id", playlistHandler.GetPlaylist)
			playlists.PATCH("/:id", playlistHandler.RenamePlaylist)
			playlists.POST("/:id/questions", playlistHandler.AddQuestion)
			playlists.DELETE("/:id/questions/:questionId", playlistHandler.RemoveQuestion)
			playlists.DELETE("/:id", playlistHandler.DeletePlaylist)
		}

		protected.GET("/sessions/active", sessionHandler.GetActiveSessions)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(userRepo))
	{
		admin.POST("/plans", planHandler.CreatePlan)
		admin.PATCH("/plans/:id", planHandler.UpdatePlan)
		admin.DELETE("/plans/:id", planHandler.DeletePlan)

		admin.PATCH("/users/:id/subscription", profileHandler.UpdateSubscription)

		admin.GET("/reports", reportHandler.ListReports)
		admin.PATCH("/reports/:id", reportHandler.ResolveReport)
	}

	return router
}

func main() {
	// Deploy scripts that run migrations separately can skip this.
	if !utils.GetEnvAsBool("SKIP_INDEX_SETUP", false) {
		if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
			log.Printf("Index setup failed: %v", err)
		}
	}

	// Redis is optional: without it the token blacklist and leaderboard
	// cache are disabled, everything else still works.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}

		cacheTTL := utils.GetEnvAsDuration("LEADERBOARD_CACHE_TTL", 5*time.Minute)
		cache, err := services.NewLeaderboardCache(redisURL, cacheTTL)
		if err != nil {
			log.Printf("Leaderboard cache disabled: %v", err)
		} else {
			services.GlobalLeaderboardCache = cache
		}
	}

	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))

	router := setupRouter()

	serverAddr := fmt.Sprintf(":%s", utils.GetEnvAsString("PORT", "8080"))
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
