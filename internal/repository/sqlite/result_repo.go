package sqlite

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save добавляет одну запись результата.
// Отметка времени — локальные часы с точностью до секунды. Ограничения
// уникальности нет: повторно отправленный запрос даёт дубликат строки.
func (r *ResultRepo) Save(result *entity.Result) error {
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().Truncate(time.Second)
	}
	return r.db.Create(result).Error
}

// ListAll возвращает все результаты, последние по порядку вставки — первыми.
// Сортировка по id, а не по отметке времени: порядок вставки первичен.
func (r *ResultRepo) ListAll() ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Order("id DESC").Find(&results).Error
	// Пустой слайс — валидный результат, ErrRecordNotFound здесь не проверяем
	return results, err
}

// Count возвращает число сохранённых результатов.
func (r *ResultRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Result{}).Count(&total).Error
	return total, err
}
