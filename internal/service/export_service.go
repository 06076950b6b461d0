package service

import (
	"crypto/subtle"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
	"github.com/yourusername/quiz-portal/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
)

// ExportService выгружает сохраненные результаты для администратора.
// Каждая операция защищена общим секретом: ключ проверяется до любого
// обращения к хранилищу
type ExportService struct {
	results    repository.ResultRepository
	sessions   repository.AttemptSessionRepository
	adminKey   string
	exportPath string
}

// ExportStats сводные счетчики для административной панели
type ExportStats struct {
	Results        int64
	ActiveSessions int
}

// NewExportService создает новый сервис экспорта
func NewExportService(
	results repository.ResultRepository,
	sessions repository.AttemptSessionRepository,
	adminKey string,
	exportPath string,
) *ExportService {
	return &ExportService{
		results:    results,
		sessions:   sessions,
		adminKey:   adminKey,
		exportPath: exportPath,
	}
}

// checkKey сравнивает предъявленный ключ с настроенным секретом за
// постоянное время
func (s *ExportService) checkKey(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return apperrors.ErrForbidden
	}
	return nil
}

// Export читает все результаты и пишет их в XLSX-файл по настроенному пути.
// Существующий файл перезаписывается. Возвращает путь к готовому файлу
func (s *ExportService) Export(key string) (string, error) {
	if err := s.checkKey(key); err != nil {
		return "", err
	}

	results, err := s.results.ListAll()
	if err != nil {
		return "", fmt.Errorf("failed to list results: %w", err)
	}

	// Используем StreamWriter для эффективной работы с большими файлами
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Результаты"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create stream writer: %w", err)
	}

	// Заголовки
	headers := []interface{}{"Дата и время", "Фамилия", "Имя", "Группа", "Баллы", "Всего вопросов"}
	if err := sw.SetRow("A1", headers); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	// Данные
	for i, r := range results {
		rowNum := i + 2 // Начинаем со 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			r.FormatTimestamp(),
			sanitizeForExcel(r.Surname),
			sanitizeForExcel(r.Name),
			sanitizeForExcel(r.Group),
			r.Score,
			r.Total,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush stream writer: %w", err)
	}

	if err := f.SaveAs(s.exportPath); err != nil {
		return "", fmt.Errorf("failed to save export file: %w", err)
	}

	log.Printf("[ExportService] Экспортировано результатов: %d, файл: %s", len(results), s.exportPath)
	return s.exportPath, nil
}

// ListResults возвращает все результаты, от новых к старым
func (s *ExportService) ListResults(key string) ([]entity.Result, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.results.ListAll()
}

// Stats возвращает число сохраненных результатов и живых сессий
func (s *ExportService) Stats(key string) (*ExportStats, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}

	count, err := s.results.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	return &ExportStats{
		Results:        count,
		ActiveSessions: s.sessions.Count(),
	}, nil
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
