package server

import (
	"strings"
	"time"

	"anoa.com/classsite/internal/bootstrap"
	"anoa.com/classsite/internal/config"
	"anoa.com/classsite/internal/handler"
	"anoa.com/classsite/internal/middleware"
	"anoa.com/classsite/internal/repository"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/storage"
	validation "anoa.com/classsite/pkg/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
}

// NewServer wires repositories, services and handlers over the injected
// collaborators. Redis, the search index, media storage and the mailer may
// all be nil; the features they back degrade instead of failing.
func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	searchIndex service.ArticleSearchIndex,
	mediaStorage storage.MediaStorage,
	mailer service.Mailer,
) *Server {
	validation.Register()

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	leadershipRepo := repository.NewLeadershipRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	studentHandler := handler.NewStudentHandler(service.NewStudentService(studentRepo, articleRepo, searchIndex))
	teacherHandler := handler.NewTeacherHandler(service.NewTeacherService(teacherRepo))
	articleHandler := handler.NewArticleHandler(service.NewArticleService(articleRepo, studentRepo, searchIndex))
	galleryHandler := handler.NewGalleryHandler(service.NewGalleryService(galleryRepo))
	leadershipHandler := handler.NewLeadershipHandler(service.NewLeadershipService(leadershipRepo))
	settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(settingRepo, redisClient))
	contactHandler := handler.NewContactHandler(service.NewContactService(contactRepo, mailer))
	authHandler := handler.NewAuthHandler(service.NewAuthService(adminRepo, cfg.JWTSecret))
	uploadHandler := handler.NewUploadHandler(mediaStorage)
	resetHandler := handler.NewResetHandler(service.NewResetService(
		studentRepo, teacherRepo, articleRepo, galleryRepo,
		leadershipRepo, settingRepo, contactRepo,
		searchIndex, bootstrap.NewDemoSeeder(db),
	))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	router.GET("/health", handler.Health)

	api := router.Group("/api")
	api.GET("/health", handler.Health)
	api.POST("/auth/login", authHandler.Login)

	// Public reads
	api.GET("/students", studentHandler.List)
	api.GET("/students/:id", studentHandler.Get)
	api.GET("/teachers", teacherHandler.List)
	api.GET("/teachers/:id", teacherHandler.Get)
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/search", articleHandler.Search)
	api.GET("/articles/:id", articleHandler.Get)
	api.GET("/gallery", galleryHandler.List)
	api.GET("/gallery/:id", galleryHandler.Get)
	api.GET("/leadership", leadershipHandler.List)
	api.GET("/leadership/:id", leadershipHandler.Get)
	api.GET("/settings/:page", settingsHandler.GetPage)

	// Public contact form
	api.POST("/contact", contactHandler.Create)

	// Everything that writes is admin-only
	authMiddleware := middleware.NewAuthMiddleware(adminRepo, cfg.JWTSecret)
	admin := api.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/students", studentHandler.Create)
		admin.PUT("/students/:id", studentHandler.Update)
		admin.DELETE("/students/:id", studentHandler.Delete)

		admin.POST("/teachers", teacherHandler.Create)
		admin.PUT("/teachers/:id", teacherHandler.Update)
		admin.DELETE("/teachers/:id", teacherHandler.Delete)

		admin.POST("/articles", articleHandler.Create)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)

		admin.POST("/gallery", galleryHandler.Create)
		admin.PUT("/gallery/reorder", galleryHandler.Reorder)
		admin.PUT("/gallery/:id", galleryHandler.Update)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)

		admin.POST("/leadership", leadershipHandler.Create)
		admin.PUT("/leadership/reorder", leadershipHandler.Reorder)
		admin.PUT("/leadership/:id", leadershipHandler.Update)
		admin.DELETE("/leadership/:id", leadershipHandler.Delete)

		admin.PUT("/settings/:page", settingsHandler.PutPage)

		admin.GET("/contact", contactHandler.List)
		admin.DELETE("/contact/:id", contactHandler.Delete)

		admin.POST("/upload", uploadHandler.Upload)

		admin.DELETE("/reset/:target", resetHandler.Reset)
		admin.POST("/reset/seed", resetHandler.Seed)
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
