package helper

import (
	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// LabeledOption представляет вариант ответа с буквенной меткой для шаблона
type LabeledOption struct {
	Label string
	Text  string
}

// QuestionView представляет вопрос в виде, удобном для HTML-шаблона
type QuestionView struct {
	Number  int
	Text    string
	Options []LabeledOption
}

// ConvertQuestionsToViews преобразует вопросы сессии в модели для шаблона.
// Нумерация вопросов с единицы; метки вариантов берутся из entity.OptionLabels
func ConvertQuestionsToViews(questions []entity.Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		opts := make([]LabeledOption, len(q.Options))
		for j, text := range q.Options {
			label := ""
			if j < len(entity.OptionLabels) {
				label = entity.OptionLabels[j]
			}
			opts[j] = LabeledOption{Label: label, Text: text}
		}
		views[i] = QuestionView{Number: i + 1, Text: q.Text, Options: opts}
	}
	return views
}
