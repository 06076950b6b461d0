package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Quiz     QuizConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port          string
	ReadTimeout   int    `mapstructure:"read_timeout"`
	WriteTimeout  int    `mapstructure:"write_timeout"`
	TemplatesGlob string `mapstructure:"templates_glob"`
}

// QuizConfig содержит настройки прохождения теста
type QuizConfig struct {
	// QuestionsFile: путь к CSV-файлу с вопросами.
	QuestionsFile string `mapstructure:"questions_file"`

	// QuestionsPerTest: сколько вопросов выдается на одну попытку.
	QuestionsPerTest int `mapstructure:"questions_per_test"`

	// DurationSec: рекомендуемая длительность попытки в секундах.
	// Используется только для обратного отсчета на клиенте.
	DurationSec int `mapstructure:"duration_sec"`
}

// DatabaseConfig содержит настройки локальной базы результатов
type DatabaseConfig struct {
	Path string
}

// AdminConfig содержит настройки административного доступа
type AdminConfig struct {
	Key        string
	ExportPath string `mapstructure:"export_path"`
}

// Load загружает конфигурацию из файла
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Устанавливаем значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("server.templates_glob", "web/templates/*.html")
	vip.SetDefault("quiz.questions_file", "questions.csv")
	vip.SetDefault("quiz.questions_per_test", 10)
	vip.SetDefault("quiz.duration_sec", 600)
	vip.SetDefault("database.path", "results.db")
	vip.SetDefault("admin.export_path", "results.xlsx")

	// 2. Привязываем переменные окружения ЯВНО
	// Привязка для секции Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	vip.BindEnv("server.templates_glob", "SERVER_TEMPLATES_GLOB")

	// Привязка для секции Quiz
	vip.BindEnv("quiz.questions_file", "QUIZ_QUESTIONS_FILE")
	vip.BindEnv("quiz.questions_per_test", "QUIZ_QUESTIONS_PER_TEST")
	vip.BindEnv("quiz.duration_sec", "QUIZ_DURATION_SEC")

	// Привязка для секции Database
	vip.BindEnv("database.path", "DATABASE_PATH")

	// Привязка для секции Admin
	vip.BindEnv("admin.key", "ADMIN_KEY")
	vip.BindEnv("admin.export_path", "ADMIN_EXPORT_PATH")

	// 3. Устанавливаем путь к файлу конфигурации
	if configPath != "" {
		vip.SetConfigFile(configPath)
		// 4. Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 5. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Templates Glob: %s", cfg.Server.TemplatesGlob)
		log.Printf("Questions File: %s", cfg.Quiz.QuestionsFile)
		log.Printf("Questions Per Test: %d", cfg.Quiz.QuestionsPerTest)
		log.Printf("Duration Sec: %d", cfg.Quiz.DurationSec)
		log.Printf("Database Path: %s", cfg.Database.Path)
		log.Printf("Admin Key Set: %t", cfg.Admin.Key != "")
		log.Printf("Export Path: %s", cfg.Admin.ExportPath)
		log.Printf("-----------------------------------------")
	}

	// 7. Проверка обязательных параметров
	if cfg.Admin.Key == "" {
		return nil, fmt.Errorf("admin key is required in config (check ADMIN_KEY env var)")
	}
	if cfg.Quiz.QuestionsPerTest < 1 {
		return nil, fmt.Errorf("quiz.questions_per_test must be at least 1 (got %d)", cfg.Quiz.QuestionsPerTest)
	}
	if cfg.Quiz.DurationSec < 1 {
		return nil, fmt.Errorf("quiz.duration_sec must be at least 1 (got %d)", cfg.Quiz.DurationSec)
	}

	return &cfg, nil
}
