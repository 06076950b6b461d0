package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExtractTokenParam создает middleware для извлечения и проверки токена сессии из URL.
// paramName - имя параметра в URL (например, "token").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// hexLen - ожидаемая длина токена в шестнадцатеричной записи.
// Токен, не похожий на выданный реестром, равнозначен неизвестному:
// клиент возвращается на стартовую форму.
func ExtractTokenParam(paramName, contextKey string, hexLen int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param(paramName)
		if !isHexToken(token, hexLen) {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set(contextKey, token)
		c.Next()
	}
}

// isHexToken проверяет, что строка является шестнадцатеричной записью длины n
func isHexToken(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}
