package entity

import (
	"time"
)

// TimestampLayout — формат отметки времени результата для экспорта и выдачи
// администратору: локальное время с точностью до секунды.
const TimestampLayout = "2006-01-02 15:04:05"

// Result представляет сохранённый результат одной завершённой попытки.
// Записи только добавляются; приложение их не изменяет и не удаляет.
type Result struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompletedAt time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	Surname     string    `gorm:"size:100;not null" json:"surname"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Group       string    `gorm:"column:group;size:100;not null" json:"group"`
	Score       int       `gorm:"not null" json:"score"`
	Total       int       `gorm:"not null" json:"total"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}

// FormatTimestamp возвращает отметку времени в форме TimestampLayout.
func (r *Result) FormatTimestamp() string {
	return r.CompletedAt.Format(TimestampLayout)
}
