package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

func AuthMiddleware(issuer *auth.Issuer, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			httperr.Internal(c, "session_check_failed", "Erro ao validar sessão.")
			c.Abort()
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "Sessão encerrada. Faça login novamente.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRole deve ser registrado depois do AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Você não tem permissão para acessar este recurso.")
		c.Abort()
	}
}

func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}

func TokenID(c *gin.Context) string {
	return c.GetString(ContextTokenID)
}

func TokenExpiry(c *gin.Context) time.Time {
	if v, ok := c.Get(ContextTokenExp); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Now().Add(24 * time.Hour)
}
