package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artmarket.backend/internal/config"
	"artmarket.backend/internal/infrastructure/mail"
	"artmarket.backend/internal/infrastructure/repositories"
	"artmarket.backend/internal/interfaces/http/handlers"
	"artmarket.backend/internal/interfaces/http/middleware"
	"artmarket.backend/internal/interfaces/http/views"
	"artmarket.backend/internal/metrics"
	"artmarket.backend/internal/usecases"
	"artmarket.backend/pkg/jwt"
	"artmarket.backend/pkg/logger"
	"artmarket.backend/pkg/redis"
	"artmarket.backend/pkg/urlsigner"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis backs idempotency only; the server runs without it
	redisUp := true
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		redisUp = false
		logger.Warn(context.Background(), "Redis unavailable, idempotency disabled", zap.Error(err))
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	signer := urlsigner.New(cfg.App.SigningSecret)
	m := metrics.New()

	var mailer mail.Mailer
	if cfg.Mail.Enabled {
		mailer, err = mail.NewSMTPMailer(cfg.Mail)
		if err != nil {
			return fmt.Errorf("failed to initialize mailer: %w", err)
		}
	} else {
		log.Println("📭 Mail disabled, outbound messages will be logged only")
		mailer = mail.NewLogMailer()
	}

	// Repositories
	inquiryRepo := repositories.NewInquiryRepository(db)
	artworkRepo := repositories.NewArtworkRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	artistRepo := repositories.NewArtistRepository(db)
	userRepo := repositories.NewUserRepository(db)
	actionLogRepo := repositories.NewActionLogRepository(db)
	savedArtworkRepo := repositories.NewSavedArtworkRepository(db)

	// Usecases
	audit := usecases.NewAuditTrail(actionLogRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(
		inquiryRepo, artworkRepo, audit, mailer, signer, m,
		cfg.App.BaseURL, cfg.App.VerificationTTL,
	)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	galleryInquiryUsecase := usecases.NewGalleryInquiryUsecase(inquiryRepo, artworkRepo, galleryRepo, audit)
	adminUsecase := usecases.NewAdminUsecase(inquiryRepo, artworkRepo, actionLogRepo, audit)
	catalogUsecase := usecases.NewCatalogUsecase(artworkRepo, artistRepo, galleryRepo, savedArtworkRepo)

	// Handlers
	inquiryHandler := handlers.NewInquiryHandler(inquiryUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)
	galleryInquiryHandler := handlers.NewGalleryInquiryHandler(galleryInquiryUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(m.GinMiddleware())
	r.SetHTMLTemplate(views.Templates())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Verification link target lives outside the API prefix, it is opened
	// in a browser from the email
	r.GET("/inquiry/verify/:id", inquiryHandler.Verify)

	registerAPIV1Routes(r, routeDeps{
		inquiryHandler:        inquiryHandler,
		authHandler:           authHandler,
		galleryInquiryHandler: galleryInquiryHandler,
		adminHandler:          adminHandler,
		catalogHandler:        catalogHandler,
		authMiddleware:        middleware.AuthMiddleware(jwtService),
		idempotencyEnabled:    redisUp,
	})

	log.Printf("🚀 Artmarket backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
