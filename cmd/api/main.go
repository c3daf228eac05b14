package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"careerquest/internal/config"
	"careerquest/internal/db"
	"careerquest/internal/email"
	apihttp "careerquest/internal/http"
	"careerquest/internal/repository"
	"careerquest/internal/service"
	"careerquest/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	studentRepo := repository.NewPgStudentRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)

	flowTTL := time.Duration(cfg.FlowTTLMinutes) * time.Minute
	var (
		flowStore  service.FlowStore
		tokenStore service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			flowStore = service.NewRedisFlowStore(redisClient, flowTTL)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if flowStore == nil {
		flowStore = service.NewMemoryFlowStore(flowTTL)
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var photoStore storage.PhotoStore = storage.NewDisabledPhotoStore("photo bucket not configured")
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3PhotoStore(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicBaseURL)
		if err != nil {
			logger.Warn("s3 photo store init failed", zap.Error(err))
		} else {
			photoStore = s3Store
		}
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshHours)*time.Hour,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo)
	studentSvc := service.NewStudentService(studentRepo, photoStore, logger)
	assessSvc := service.NewAssessmentService(flowStore, resultRepo, emailSender, logger)

	authHandler := apihttp.NewAuthHandler(logger, userSvc, jwtSvc)
	studentHandler := apihttp.NewStudentHandler(logger, studentSvc)
	assessHandler := apihttp.NewAssessmentHandler(logger, assessSvc)
	router := apihttp.NewRouter(logger, pool, jwtSvc, authHandler, studentHandler, assessHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
