package router

import (
	"arklight/config"
	"arklight/internal/handler"
	"arklight/internal/middleware"
	"arklight/internal/models"
	"arklight/internal/repository"
	"arklight/internal/service"
	"arklight/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewContentRepository[models.AppUser](db, "id ASC")
	cardRepo := repository.NewContentRepository[models.HomeCard](db, "id ASC")
	sliderRepo := repository.NewContentRepository[models.SliderSlide](db, "sort_order ASC, id ASC")
	broadcastRepo := repository.NewContentRepository[models.BroadcastEvent](db, "event_time ASC")
	prayerSlideRepo := repository.NewContentRepository[models.PrayerSlide](db, "sort_order ASC, id ASC")
	musicRepo := repository.NewContentRepository[models.MusicTrack](db, "created_at DESC")
	quizRepo := repository.NewContentRepository[models.QuizQuestion](db, "id ASC")
	videoRepo := repository.NewContentRepository[models.VideoResource](db, "created_at DESC")
	resourceRepo := repository.NewContentRepository[models.PrayerResource](db, "created_at DESC")
	prayerRequestRepo := repository.NewPrayerRequestRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(cloud, &cfg.Upload, handler.NewProgressTracker())
	diagHandler := handler.NewDiagHandler()
	userHandler := handler.NewUserHandler(userRepo)
	cardHandler := handler.NewHomeCardHandler(cardRepo)
	sliderHandler := handler.NewSliderHandler(sliderRepo)
	broadcastHandler := handler.NewBroadcastHandler(broadcastRepo)
	prayerSlideHandler := handler.NewPrayerSlideHandler(prayerSlideRepo)
	musicHandler := handler.NewMusicHandler(musicRepo)
	quizHandler := handler.NewQuizHandler(quizRepo)
	prayerRequestHandler := handler.NewPrayerRequestHandler(prayerRequestRepo)
	videoHandler := handler.NewVideoHandler(videoRepo)
	resourceHandler := handler.NewResourceHandler(resourceRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		// App-facing submission endpoint; everything else is console-only.
		api.POST("/prayer-requests", prayerRequestHandler.Create)

		admin := api.Group("")
		admin.Use(authMw)
		{
			admin.POST("/upload", uploadHandler.Upload)
			admin.GET("/upload/progress/:id", uploadHandler.Progress)
			admin.POST("/diagnostics", diagHandler.Log)

			admin.GET("/users", userHandler.List)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.GET("/home-cards", cardHandler.List)
			admin.POST("/home-cards", cardHandler.Create)
			admin.PUT("/home-cards/:id", cardHandler.Update)
			admin.DELETE("/home-cards/:id", cardHandler.Delete)

			admin.GET("/slider", sliderHandler.List)
			admin.POST("/slider", sliderHandler.Create)
			admin.PUT("/slider/:id", sliderHandler.Update)
			admin.DELETE("/slider/:id", sliderHandler.Delete)

			admin.GET("/broadcasts", broadcastHandler.List)
			admin.POST("/broadcasts", broadcastHandler.Create)
			admin.PUT("/broadcasts/:id", broadcastHandler.Update)
			admin.DELETE("/broadcasts/:id", broadcastHandler.Delete)

			admin.GET("/prayer-slides", prayerSlideHandler.List)
			admin.POST("/prayer-slides", prayerSlideHandler.Create)
			admin.PUT("/prayer-slides/:id", prayerSlideHandler.Update)
			admin.DELETE("/prayer-slides/:id", prayerSlideHandler.Delete)

			admin.GET("/music", musicHandler.List)
			admin.POST("/music", musicHandler.Create)
			admin.PUT("/music/:id", musicHandler.Update)
			admin.DELETE("/music/:id", musicHandler.Delete)

			admin.GET("/quiz-questions", quizHandler.List)
			admin.POST("/quiz-questions", quizHandler.Create)
			admin.PUT("/quiz-questions/:id", quizHandler.Update)
			admin.DELETE("/quiz-questions/:id", quizHandler.Delete)

			admin.GET("/prayer-requests", prayerRequestHandler.List)
			admin.POST("/prayer-requests/:id/respond", prayerRequestHandler.Respond)
			admin.PATCH("/prayer-requests/:id/status", prayerRequestHandler.UpdateStatus)
			admin.DELETE("/prayer-requests/:id", prayerRequestHandler.Delete)

			admin.GET("/videos", videoHandler.List)
			admin.POST("/videos", videoHandler.Create)
			admin.PUT("/videos/:id", videoHandler.Update)
			admin.DELETE("/videos/:id", videoHandler.Delete)

			admin.GET("/resources", resourceHandler.List)
			admin.POST("/resources", resourceHandler.Create)
			admin.PUT("/resources/:id", resourceHandler.Update)
			admin.DELETE("/resources/:id", resourceHandler.Delete)
		}
	}

	return r
}
