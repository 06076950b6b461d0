package repository

import (
	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// QuestionSource определяет методы для загрузки банка вопросов.
// Банк читается заново при каждом старте попытки — реализация не должна
// кэшировать результат между вызовами.
type QuestionSource interface {
	// LoadAll возвращает все валидные вопросы источника в порядке следования.
	// Возвращает ErrSourceUnavailable, если файл недоступен;
	// ErrMalformedSource, если отсутствуют обязательные колонки;
	// ErrInsufficientQuestions, если валидных строк меньше требуемого минимума.
	LoadAll() ([]entity.Question, error)
}
