package entity

import (
	"time"
)

// AttemptSession представляет незавершённую попытку прохождения теста.
// Сессия живёт только в памяти процесса: создаётся на старте попытки и
// удаляется при сдаче ответов. Идентифицируется исключительно токеном —
// повторные попытки одного кандидата никак не дедуплицируются.
type AttemptSession struct {
	Token     string     `json:"token"`
	Surname   string     `json:"surname"`
	Name      string     `json:"name"`
	Group     string     `json:"group"`
	Questions []Question `json:"questions"` // Зафиксированный снимок: правки банка вопросов на сессию не влияют
	StartedAt time.Time  `json:"started_at"`
}

// Remaining возвращает оставшееся время попытки в целых секундах.
// Значение чисто информационное: сервер не прерывает попытку по дедлайну,
// обратный отсчёт ведёт клиент.
func (s *AttemptSession) Remaining(duration time.Duration, now time.Time) int {
	remaining := duration - now.Sub(s.StartedAt)
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}
