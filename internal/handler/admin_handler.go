package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-portal/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
	"github.com/yourusername/quiz-portal/internal/service"
)

// AdminHandler обрабатывает административные запросы: выгрузка результатов
// в Excel, просмотр результатов и сводных счетчиков. Все запросы требуют
// ключ администратора в параметре key
type AdminHandler struct {
	exportService *service.ExportService
}

// NewAdminHandler создает новый административный обработчик
func NewAdminHandler(exportService *service.ExportService) *AdminHandler {
	return &AdminHandler{
		exportService: exportService,
	}
}

// ExportResults формирует XLSX-файл со всеми результатами и отдает его на скачивание
func (h *AdminHandler) ExportResults(c *gin.Context) {
	path, err := h.exportService.Export(c.Query("key"))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	filename := fmt.Sprintf("results_%s.xlsx", time.Now().Format("2006-01-02"))
	c.FileAttachment(path, filename)
}

// ListResults возвращает все результаты в JSON, от новых к старым
func (h *AdminHandler) ListResults(c *gin.Context) {
	results, err := h.exportService.ListResults(c.Query("key"))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResultResponse(results))
}

// GetStats возвращает число сохраненных результатов и активных сессий
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.exportService.Stats(c.Query("key"))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Results:        stats.Results,
		ActiveSessions: stats.ActiveSessions,
	})
}

// handleAdminError преобразует ошибки сервиса экспорта в HTTP-ответы
func (h *AdminHandler) handleAdminError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Доступ запрещен"})
	} else {
		log.Printf("ERROR: Internal server error in AdminHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
