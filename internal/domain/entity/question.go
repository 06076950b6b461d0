package entity

import "strings"

// OptionLabels — буквенные метки вариантов ответа в порядке следования.
// Колонка correct в файле вопросов содержит одну из этих меток.
var OptionLabels = []string{"A", "B", "C", "D"}

// OptionCount — фиксированное число вариантов ответа на вопрос.
const OptionCount = 4

// Question представляет один вопрос теста.
// Вопросы загружаются из CSV-файла при каждом старте попытки и нигде не
// сохраняются; структура намеренно не является моделью БД.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"` // Ровно четыре варианта, по меткам A–D
	Correct string   `json:"-"`       // Скрыто от клиента
}

// NormalizeAnswer приводит ответ кандидата к канонической форме метки:
// обрезает пробелы и переводит в верхний регистр.
func NormalizeAnswer(answer string) string {
	return strings.ToUpper(strings.TrimSpace(answer))
}

// IsValidLabel проверяет, является ли строка допустимой меткой варианта (A–D).
// Строка должна быть уже нормализована через NormalizeAnswer.
func IsValidLabel(label string) bool {
	for _, l := range OptionLabels {
		if label == l {
			return true
		}
	}
	return false
}

// IsCorrect проверяет, совпадает ли ответ кандидата с правильной меткой.
// Ответ нормализуется; пустая строка (пропущенный ответ) всегда неверна.
func (q *Question) IsCorrect(answer string) bool {
	normalized := NormalizeAnswer(answer)
	return normalized != "" && normalized == q.Correct
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}
