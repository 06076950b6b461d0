package memory

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
)

// tokenBytes — длина случайной части токена сессии в байтах.
// Токен предъявительский, поэтому генерируется из crypto/rand.
const tokenBytes = 32

// TokenHexLen — длина токена сессии в шестнадцатеричной записи.
const TokenHexLen = tokenBytes * 2

// SessionRepo реализует repository.AttemptSessionRepository поверх карты в
// памяти процесса под одним мьютексом. Записи не вытесняются по таймеру:
// брошенная попытка занимает память до перезапуска процесса.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*entity.AttemptSession
}

// NewSessionRepo создает новый реестр сессий
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*entity.AttemptSession),
	}
}

// Create генерирует токен, проставляет время старта и сохраняет сессию.
func (r *SessionRepo) Create(session *entity.AttemptSession) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	session.Token = token
	session.StartedAt = time.Now()

	r.mu.Lock()
	r.sessions[token] = session
	r.mu.Unlock()

	return token, nil
}

// GetByToken возвращает сессию по токену или ErrNotFound.
func (r *SessionRepo) GetByToken(token string) (*entity.AttemptSession, error) {
	r.mu.RLock()
	session, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

// Delete удаляет сессию; удаление отсутствующего токена — no-op.
func (r *SessionRepo) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Count возвращает число активных сессий.
func (r *SessionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// generateToken генерирует случайный токен в hex формате
func generateToken() (string, error) {
	randomBytes := make([]byte, tokenBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(randomBytes), nil
}
