package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
)

func TestSessionRepo_CreateAndGet(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()
	session := &entity.AttemptSession{
		Surname: "Иванов",
		Name:    "Иван",
		Group:   "ИС-21",
		Questions: []entity.Question{
			{Text: "Вопрос", Options: []string{"1", "2", "3", "4"}, Correct: "A"},
		},
	}

	// Act
	token, err := repo.Create(session)

	// Assert
	require.NoError(t, err)
	assert.Len(t, token, TokenHexLen, "Токен должен иметь фиксированную длину")
	assert.Equal(t, token, session.Token, "Create должен проставить токен в сессию")
	assert.WithinDuration(t, time.Now(), session.StartedAt, time.Second, "Create должен проставить время старта")

	got, err := repo.GetByToken(token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionRepo_TokensAreUnique(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()
	seen := make(map[string]bool)

	// Act & Assert
	for i := 0; i < 100; i++ {
		token, err := repo.Create(&entity.AttemptSession{})
		require.NoError(t, err)
		assert.False(t, seen[token], "Токены не должны повторяться")
		seen[token] = true
	}
}

func TestSessionRepo_GetByToken_Unknown(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()

	// Act
	session, err := repo.GetByToken("deadbeef")

	// Assert
	assert.Nil(t, session)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionRepo_Delete_Idempotent(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()
	token, err := repo.Create(&entity.AttemptSession{Surname: "Петров"})
	require.NoError(t, err)

	// Act: повторное удаление — no-op, не ошибка
	repo.Delete(token)
	repo.Delete(token)

	// Assert
	_, err = repo.GetByToken(token)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "После удаления сессия не должна находиться")
}

func TestSessionRepo_Count(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()
	assert.Equal(t, 0, repo.Count())

	// Act
	tokenA, err := repo.Create(&entity.AttemptSession{})
	require.NoError(t, err)
	_, err = repo.Create(&entity.AttemptSession{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, repo.Count())

	repo.Delete(tokenA)
	assert.Equal(t, 1, repo.Count())
}

func TestSessionRepo_ConcurrentAccess(t *testing.T) {
	// Arrange
	repo := NewSessionRepo()
	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)

	// Act: параллельные create/get/delete не должны портить реестр
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			token, err := repo.Create(&entity.AttemptSession{Surname: "Сидоров"})
			if !assert.NoError(t, err) {
				return
			}

			_, err = repo.GetByToken(token)
			assert.NoError(t, err)

			repo.Delete(token)
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 0, repo.Count(), "После завершения всех горутин реестр должен быть пуст")
}
