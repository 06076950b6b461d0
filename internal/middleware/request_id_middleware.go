package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey - ключ контекста Gin, под которым хранится идентификатор запроса
const RequestIDKey = "requestID"

// RequestIDHeader - HTTP-заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID создает middleware, присваивающее каждому запросу уникальный
// идентификатор. Идентификатор кладется в контекст Gin и в заголовок ответа.
// Входящий X-Request-ID сохраняется, если клиент его прислал
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
