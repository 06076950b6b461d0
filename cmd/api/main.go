package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yourusername/quiz-portal/internal/config"
	"github.com/yourusername/quiz-portal/internal/handler"
	"github.com/yourusername/quiz-portal/internal/middleware"
	"github.com/yourusername/quiz-portal/internal/repository/csvfile"
	"github.com/yourusername/quiz-portal/internal/repository/memory"
	"github.com/yourusername/quiz-portal/internal/repository/sqlite"
	"github.com/yourusername/quiz-portal/internal/service"
	"github.com/yourusername/quiz-portal/pkg/database"
)

func main() {
	// Подхватываем локальный .env, если он есть
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к SQLite
	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionSource := csvfile.NewQuestionSource(cfg.Quiz.QuestionsFile, cfg.Quiz.QuestionsPerTest)
	sessionRepo := memory.NewSessionRepo()
	resultRepo := sqlite.NewResultRepo(db)

	// Инициализируем сервисы
	attemptService := service.NewAttemptService(
		questionSource,
		sessionRepo,
		resultRepo,
		cfg.Quiz.QuestionsPerTest,
		time.Duration(cfg.Quiz.DurationSec)*time.Second,
	)
	exportService := service.NewExportService(resultRepo, sessionRepo, cfg.Admin.Key, cfg.Admin.ExportPath)

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(attemptService)
	adminHandler := handler.NewAdminHandler(exportService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8000", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Идентификатор запроса в каждом ответе
	router.Use(middleware.RequestID())

	// HTML-шаблоны стартовой формы, теста и результата
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	// Настраиваем маршруты
	router.GET("/", quizHandler.ShowStartForm)
	router.POST("/start", quizHandler.BeginAttempt)

	// Маршруты, требующие токен сессии
	tokenParam := middleware.ExtractTokenParam("token", "sessionToken", memory.TokenHexLen)
	router.GET("/quiz/:token", tokenParam, quizHandler.ShowAttempt)
	router.POST("/submit/:token", tokenParam, quizHandler.SubmitAttempt)

	// Административные маршруты (ключ проверяется в сервисе)
	admin := router.Group("/admin")
	{
		admin.GET("/export", adminHandler.ExportResults)
		admin.GET("/results", adminHandler.ListResults)
		admin.GET("/stats", adminHandler.GetStats)
	}

	router.GET("/ping", quizHandler.Ping)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
