package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/yourusername/quiz-portal/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-portal/internal/pkg/errors"
)

// requiredColumns — обязательные колонки файла вопросов.
// Имена сравниваются без учёта регистра и крайних пробелов.
var requiredColumns = []string{"question", "option_a", "option_b", "option_c", "option_d", "correct"}

// QuestionSource реализует repository.QuestionSource поверх CSV-файла.
// Файл читается целиком при каждом вызове LoadAll: банк вопросов для каждой
// новой попытки берётся свежим, без кэширования между стартами.
type QuestionSource struct {
	path        string
	minRequired int
}

// NewQuestionSource создает новый источник вопросов.
// minRequired — минимально допустимое число валидных строк
// (равно настроенному числу вопросов на попытку).
func NewQuestionSource(path string, minRequired int) *QuestionSource {
	return &QuestionSource{path: path, minRequired: minRequired}
}

// LoadAll читает и валидирует все вопросы из файла.
func (s *QuestionSource) LoadAll() ([]entity.Question, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSourceUnavailable, s.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	// Строки с неполным числом полей не ломают разбор: недостающие значения
	// считаются пустыми, и такая строка отбрасывается как невалидная
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedSource, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: отсутствует строка заголовков", apperrors.ErrMalformedSource)
	}

	// Сопоставляем имена колонок с их позициями
	headerMap := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, exists := headerMap[col]; !exists {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: нет колонок: %s", apperrors.ErrMalformedSource, strings.Join(missing, ", "))
	}

	questions := make([]entity.Question, 0, len(records)-1)
	for _, record := range records[1:] {
		question, ok := parseRow(record, headerMap)
		if !ok {
			continue // Невалидные строки молча пропускаются
		}
		questions = append(questions, question)
	}

	if len(questions) < s.minRequired {
		return nil, fmt.Errorf("%w: валидных вопросов %d, требуется не меньше %d",
			apperrors.ErrInsufficientQuestions, len(questions), s.minRequired)
	}

	return questions, nil
}

// parseRow преобразует одну строку файла в вопрос.
// Строка отбрасывается, если метка правильного ответа после нормализации
// не входит в A–D либо текст вопроса или любой вариант пусты после обрезки.
func parseRow(record []string, headerMap map[string]int) (entity.Question, bool) {
	correct := entity.NormalizeAnswer(field(record, headerMap, "correct"))
	if !entity.IsValidLabel(correct) {
		return entity.Question{}, false
	}

	text := strings.TrimSpace(field(record, headerMap, "question"))
	if text == "" {
		return entity.Question{}, false
	}

	options := make([]string, 0, entity.OptionCount)
	for _, col := range []string{"option_a", "option_b", "option_c", "option_d"} {
		option := strings.TrimSpace(field(record, headerMap, col))
		if option == "" {
			return entity.Question{}, false
		}
		options = append(options, option)
	}

	return entity.Question{Text: text, Options: options, Correct: correct}, true
}

// field возвращает значение колонки или пустую строку, если строка короче заголовка.
func field(record []string, headerMap map[string]int, column string) string {
	idx := headerMap[column]
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
