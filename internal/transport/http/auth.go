package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

const basicRealm = `Basic realm="foodcart manager"`

// managerAuth — HTTP Basic для бэк-офиса: пускает только сотрудников (is_staff).
// Имя менеджера кладётся в контекст запроса для логов.
func (h *Handler) managerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || username == "" {
			c.Header("WWW-Authenticate", basicRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		ctx, cancel := h.requestContext(c)
		manager, err := h.office.Authenticate(ctx, username, password)
		cancel()

		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.Header("WWW-Authenticate", basicRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		case err != nil:
			h.log.Errorf(c.Request.Context(), "Authenticate failed username=%s err=%v", username, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Request = c.Request.WithContext(ctxmeta.WithManager(c.Request.Context(), manager.Username))
		c.Next()
	}
}
