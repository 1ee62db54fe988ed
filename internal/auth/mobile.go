package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MobileParamCookie é definido pelo frontend quando a sessão foi iniciada por
// um cliente móvel; "1" significa verdadeiro.
const MobileParamCookie = "mobile_param"

// IsMobileRequest decide se a requisição vem de um cliente móvel. O cookie de
// sessão tem precedência; na ausência dele, cai para a detecção por user-agent.
func IsMobileRequest(c *gin.Context) bool {
	if v, err := c.Cookie(MobileParamCookie); err == nil && v != "" {
		return v == "1"
	}
	ua := strings.ToLower(c.Request.UserAgent())
	return strings.Contains(ua, "ios") || strings.Contains(ua, "android")
}

// MobileGateMiddleware rejeita requisições de clientes não-móveis antes de
// qualquer resolução de recurso.
func MobileGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsMobileRequest(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Mobile clients only"})
			return
		}
		c.Next()
	}
}
