package repository

import (
	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// AttemptSessionRepository определяет методы реестра активных попыток.
// Реестр хранится в памяти процесса и не переживает перезапуск — решение
// осознанное и корректное только для развёртывания в один экземпляр.
type AttemptSessionRepository interface {
	// Create генерирует криптографически непредсказуемый токен (токен —
	// предъявительские учётные данные попытки), проставляет время старта
	// и сохраняет сессию. Возвращает токен.
	Create(session *entity.AttemptSession) (string, error)

	// GetByToken возвращает сессию по токену или ErrNotFound.
	GetByToken(token string) (*entity.AttemptSession, error)

	// Delete удаляет сессию. Идемпотентна: удаление отсутствующего токена — no-op.
	Delete(token string)

	// Count возвращает число активных сессий.
	Count() int
}
