package dto

// StartAttemptRequest представляет поля стартовой формы.
// Обязательность полей не проверяется на уровне биндинга: пустые значения
// отклоняет сервис, чтобы клиент получил редирект, а не 400
type StartAttemptRequest struct {
	Surname string `form:"surname"`
	Name    string `form:"name"`
	Group   string `form:"group"`
}
