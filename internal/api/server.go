package api

import (
	"context"
	"log"

	"maintenance-backend/internal/app/config"
	"maintenance-backend/internal/app/dsn"
	"maintenance-backend/internal/app/handler"
	"maintenance-backend/internal/app/middleware"
	"maintenance-backend/internal/app/redis"
	"maintenance-backend/internal/app/repository"
	"maintenance-backend/internal/app/storage"
	"maintenance-backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка загрузки конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("ошибка подключения к Redis: ", err)
	}

	// MinIO опционален: без него недоступна только загрузка фото
	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Warn("MinIO недоступен, загрузка фото отключена: ", err)
		minioClient = nil
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()

	// CORS для фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	apiHandler.RegisterAPIRoutes(r, authMiddleware)

	app := pkg.NewApp(cfg, r, apiHandler)
	app.RunApp()

	log.Println("Server down")
}
