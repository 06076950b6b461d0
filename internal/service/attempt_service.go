package service

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
	"github.com/yourusername/quiz-portal/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
)

// AttemptService управляет жизненным циклом попытки: старт, выдача вопросов,
// проверка ответов и сохранение результата
type AttemptService struct {
	source           repository.QuestionSource
	sessions         repository.AttemptSessionRepository
	results          repository.ResultRepository
	questionsPerTest int
	duration         time.Duration
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(
	source repository.QuestionSource,
	sessions repository.AttemptSessionRepository,
	results repository.ResultRepository,
	questionsPerTest int,
	duration time.Duration,
) *AttemptService {
	return &AttemptService{
		source:           source,
		sessions:         sessions,
		results:          results,
		questionsPerTest: questionsPerTest,
		duration:         duration,
	}
}

// QuestionsPerTest возвращает настроенное число вопросов в одной попытке
func (s *AttemptService) QuestionsPerTest() int {
	return s.questionsPerTest
}

// DurationSeconds возвращает рекомендуемую длительность попытки в секундах
func (s *AttemptService) DurationSeconds() int {
	return int(s.duration.Seconds())
}

// BeginAttempt проверяет данные участника, набирает случайные вопросы из
// источника и регистрирует новую сессию. Возвращает токен сессии.
func (s *AttemptService) BeginAttempt(surname, name, group string) (string, error) {
	surname = strings.TrimSpace(surname)
	name = strings.TrimSpace(name)
	group = strings.TrimSpace(group)

	if surname == "" || name == "" || group == "" {
		return "", fmt.Errorf("%w: фамилия, имя и группа обязательны", apperrors.ErrValidation)
	}

	// Банк читается заново на каждый старт; идущие сессии хранят свой снимок вопросов
	bank, err := s.source.LoadAll()
	if err != nil {
		return "", err
	}

	session := &entity.AttemptSession{
		Surname:   surname,
		Name:      name,
		Group:     group,
		Questions: sampleQuestions(bank, s.questionsPerTest),
	}

	token, err := s.sessions.Create(session)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("[AttemptService] Начата попытка для %s %s (группа %s), вопросов: %d", surname, name, group, len(session.Questions))
	return token, nil
}

// GetAttempt возвращает сессию по токену и оставшееся время в секундах.
// Оставшееся время носит справочный характер: сервер не отклоняет поздние
// отправки
func (s *AttemptService) GetAttempt(token string) (*entity.AttemptSession, int, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, 0, err
	}
	return session, session.Remaining(s.duration, time.Now()), nil
}

// SubmitAnswers сверяет ответы с назначенными вопросами сессии, сохраняет
// результат и удаляет сессию. Ответы сопоставляются позиционно: отсутствующий
// ответ считается неверным, лишние ответы игнорируются
func (s *AttemptService) SubmitAnswers(token string, answers []string) (*entity.Result, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}

	score := 0
	for i, q := range session.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		if q.IsCorrect(answer) {
			score++
		}
	}

	result := &entity.Result{
		Surname: session.Surname,
		Name:    session.Name,
		Group:   session.Group,
		Score:   score,
		Total:   len(session.Questions),
	}

	// При ошибке записи сессия остается зарегистрированной, ошибка уходит клиенту
	if err := s.results.Save(result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	s.sessions.Delete(token)

	log.Printf("[AttemptService] Попытка завершена: %s %s (группа %s), результат %d/%d", session.Surname, session.Name, session.Group, score, result.Total)
	return result, nil
}

// sampleQuestions выбирает n случайных вопросов без повторов. Исходный срез
// не изменяется; при n >= len(bank) возвращаются все вопросы в случайном порядке
func sampleQuestions(bank []entity.Question, n int) []entity.Question {
	shuffled := make([]entity.Question, len(bank))
	copy(shuffled, bank)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
