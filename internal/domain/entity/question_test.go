package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCorrect_CorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		Text:    "Сколько бит в одном байте?",
		Options: []string{"4", "8", "16", "32"},
		Correct: "B",
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("B"), "IsCorrect должен вернуть true для правильной метки")
}

func TestQuestion_IsCorrect_NormalizesAnswer(t *testing.T) {
	// Arrange
	question := &Question{Correct: "C"}

	// Act & Assert: регистр и крайние пробелы не влияют на сравнение
	assert.True(t, question.IsCorrect("c"), "Строчная метка должна засчитываться")
	assert.True(t, question.IsCorrect(" C "), "Пробелы вокруг метки должны игнорироваться")
	assert.True(t, question.IsCorrect("\tc\n"), "Табуляция и перевод строки должны игнорироваться")
}

func TestQuestion_IsCorrect_IncorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{Correct: "A"}

	// Act & Assert
	assert.False(t, question.IsCorrect("B"), "IsCorrect должен вернуть false для неправильной метки")
	assert.False(t, question.IsCorrect("D"), "IsCorrect должен вернуть false для неправильной метки")
	assert.False(t, question.IsCorrect("E"), "Метка вне диапазона A–D не может быть правильной")
}

func TestQuestion_IsCorrect_EmptyAnswer(t *testing.T) {
	// Arrange
	question := &Question{Correct: "A"}

	// Act & Assert: пропущенный ответ всегда неверен
	assert.False(t, question.IsCorrect(""), "Пустой ответ должен считаться неверным")
	assert.False(t, question.IsCorrect("   "), "Ответ из одних пробелов должен считаться неверным")
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "A", NormalizeAnswer(" a "))
	assert.Equal(t, "D", NormalizeAnswer("d"))
	assert.Equal(t, "B", NormalizeAnswer("B"))
	assert.Equal(t, "", NormalizeAnswer("   "))
}

func TestIsValidLabel(t *testing.T) {
	// Act & Assert: все метки из OptionLabels валидны
	for _, label := range OptionLabels {
		assert.True(t, IsValidLabel(label), "Метка %s должна быть валидной", label)
	}

	// Assert: всё остальное невалидно
	assert.False(t, IsValidLabel("E"), "Метка за пределами A–D невалидна")
	assert.False(t, IsValidLabel(""), "Пустая метка невалидна")
	assert.False(t, IsValidLabel("AB"), "Две метки сразу невалидны")
	assert.False(t, IsValidLabel("a"), "IsValidLabel ожидает уже нормализованную метку")
}

func TestQuestion_OptionsCount(t *testing.T) {
	// Arrange
	question := &Question{Options: []string{"1", "2", "3", "4"}}

	// Act & Assert
	assert.Equal(t, 4, question.OptionsCount())
}
