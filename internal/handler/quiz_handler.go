package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/handler/dto"
	"github.com/yourusername/quiz-portal/internal/handler/helper"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
	"github.com/yourusername/quiz-portal/internal/service"
)

// QuizHandler обрабатывает веб-сценарий прохождения теста: стартовая форма,
// страница вопросов и прием ответов
type QuizHandler struct {
	attemptService *service.AttemptService
}

// NewQuizHandler создает новый обработчик теста
func NewQuizHandler(attemptService *service.AttemptService) *QuizHandler {
	return &QuizHandler{
		attemptService: attemptService,
	}
}

// ShowStartForm отображает стартовую форму с параметрами теста
func (h *QuizHandler) ShowStartForm(c *gin.Context) {
	c.HTML(http.StatusOK, "start.html", gin.H{
		"QuestionsPerTest": h.attemptService.QuestionsPerTest(),
		"DurationSec":      h.attemptService.DurationSeconds(),
	})
}

// BeginAttempt создает сессию по данным формы и перенаправляет на страницу теста
func (h *QuizHandler) BeginAttempt(c *gin.Context) {
	var req dto.StartAttemptRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, err := h.attemptService.BeginAttempt(req.Surname, req.Name, req.Group)
	if err != nil {
		h.handleAttemptError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/quiz/"+token)
}

// ShowAttempt отображает вопросы сессии и оставшееся время
func (h *QuizHandler) ShowAttempt(c *gin.Context) {
	token := c.MustGet("sessionToken").(string) // Получаем из контекста

	session, remaining, err := h.attemptService.GetAttempt(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Неизвестный или уже использованный токен возвращает на старт
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.handleAttemptError(c, err)
		return
	}

	c.HTML(http.StatusOK, "quiz.html", gin.H{
		"Token":        token,
		"Surname":      session.Surname,
		"Name":         session.Name,
		"Group":        session.Group,
		"Questions":    helper.ConvertQuestionsToViews(session.Questions),
		"RemainingSec": remaining,
	})
}

// SubmitAttempt принимает ответы формы, сохраняет результат и показывает итог
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	token := c.MustGet("sessionToken").(string) // Получаем из контекста
	answers := c.PostFormArray("answers")

	result, err := h.attemptService.SubmitAnswers(token, answers)
	if err != nil {
		h.handleAttemptError(c, err)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Surname": result.Surname,
		"Name":    result.Name,
		"Group":   result.Group,
		"Score":   result.Score,
		"Total":   result.Total,
	})
}

// Ping проверка доступности сервиса
func (h *QuizHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// handleAttemptError преобразует ошибки сервиса в HTTP-ответы.
// Незаполненные поля и неизвестный токен молча возвращают на стартовую форму,
// ошибки источника вопросов и хранилища уходят клиенту как 500
func (h *QuizHandler) handleAttemptError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrValidation) {
		c.Redirect(http.StatusSeeOther, "/")
	} else if errors.Is(err, apperrors.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, "/")
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
