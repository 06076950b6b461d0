package repository

import (
	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// ResultRepository определяет методы для работы с сохранёнными результатами.
// Журнал только пополняется: изменение и удаление записей не предусмотрены.
type ResultRepository interface {
	// Save добавляет одну запись результата. Ключа идемпотентности нет —
	// повторная отправка создаёт дубликат строки.
	Save(result *entity.Result) error

	// ListAll возвращает все результаты, самые свежие по порядку вставки — первыми.
	ListAll() ([]entity.Result, error)

	// Count возвращает число сохранённых результатов.
	Count() (int64, error)
}
