package database

import (
	"errors"
	"fmt"
	"log"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	migrateSqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/quiz-portal/migrations"
)

// NewSQLiteDB создает новое подключение к локальной базе SQLite
func NewSQLiteDB(path string) (*gorm.DB, error) {
	// loc=auto: отметки времени читаются в локальной зоне, как и записываются
	dsn := fmt.Sprintf("%s?loc=auto&_busy_timeout=5000", path)

	db, err := gorm.Open(gormSqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite допускает одну пишущую транзакцию на файл; одно соединение
	// избавляет от ошибок SQLITE_BUSY при параллельных запросах
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// MigrateDB применяет встроенные SQL-миграции к базе результатов.
// Вызов идемпотентен: повторный запуск на актуальной схеме — no-op.
func MigrateDB(db *gorm.DB) error {
	log.Println("Запуск применения миграций базы данных...")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("не удалось получить *sql.DB из *gorm.DB: %w", err)
	}

	// Убедимся, что подключение к БД активно
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("не удалось проверить подключение к БД перед миграцией: %w", err)
	}

	driver, err := migrateSqlite.WithInstance(sqlDB, &migrateSqlite.Config{})
	if err != nil {
		return fmt.Errorf("не удалось создать драйвер sqlite для migrate: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("не удалось открыть встроенные миграции: %w", err)
	}

	m, err := migrateV4.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrateV4.ErrNoChange) {
		log.Printf("Ошибка применения миграций: %v", err)
		return fmt.Errorf("ошибка применения миграций 'up': %w", err)
	} else if errors.Is(err, migrateV4.ErrNoChange) {
		log.Println("Изменений в миграциях не найдено, база данных уже актуальна.")
	} else {
		log.Println("Миграции успешно применены.")
	}

	return nil
}
