package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/logger"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

func main() {
	// 1. Logging & Configuration
	logger.Init()
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Blob storage for resume files
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload storage")
	}

	// 4. Token manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// 5. Initialize Core Services (Dependencies)
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	resumeService := services.NewResumeService(db, store)

	// 6. Initialize Handlers
	accountHandler := handlers.NewAccountHandler(userService, jwtManager)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	resumeHandler := handlers.NewResumeHandler(resumeService)

	// 7. Setup Router & CORS
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Define Routes
	requireAuth := auth.RequireAuth(jwtManager)

	r.GET("/health", handlers.HealthCheck)

	accounts := r.Group("/accounts")
	{
		accounts.POST("/register/", accountHandler.Register)
		accounts.POST("/login/", accountHandler.Login)
		accounts.POST("/refresh/", accountHandler.Refresh)
		accounts.GET("/me/", requireAuth, accountHandler.Me)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("/", jobHandler.List)
		jobs.GET("/:id/", jobHandler.Get)
		jobs.POST("/", requireAuth, jobHandler.Create)
		jobs.DELETE("/:id/", requireAuth, jobHandler.Delete)
	}

	applications := r.Group("/applications", requireAuth)
	{
		applications.POST("/apply/:job_id/", applicationHandler.Apply)
		applications.GET("/my/", applicationHandler.ListMine)
		applications.GET("/job/:job_id/", applicationHandler.ListApplicants)
		applications.PATCH("/:id/status/", applicationHandler.SetStatus)
	}

	resumes := r.Group("/resumes", requireAuth)
	{
		resumes.POST("/upload/:application_id/", resumeHandler.Upload)
	}

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
