package dto

import (
	"github.com/yourusername/quiz-portal/internal/domain/entity"
)

// ResultResponse представляет сохраненный результат в формате для ответа клиенту
type ResultResponse struct {
	ID        uint   `json:"id"`
	Timestamp string `json:"timestamp"`
	Surname   string `json:"surname"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
}

// StatsResponse представляет сводные счетчики для администратора
type StatsResponse struct {
	Results        int64 `json:"results"`
	ActiveSessions int   `json:"active_sessions"`
}

// NewResultResponse создает DTO для результата
func NewResultResponse(result *entity.Result) *ResultResponse {
	if result == nil {
		return nil
	}
	return &ResultResponse{
		ID:        result.ID,
		Timestamp: result.FormatTimestamp(),
		Surname:   result.Surname,
		Name:      result.Name,
		Group:     result.Group,
		Score:     result.Score,
		Total:     result.Total,
	}
}

// NewListResultResponse создает слайс DTO для списка результатов
func NewListResultResponse(results []entity.Result) []*ResultResponse {
	list := make([]*ResultResponse, len(results))
	for i, result := range results {
		list[i] = NewResultResponse(&result)
	}
	return list
}
