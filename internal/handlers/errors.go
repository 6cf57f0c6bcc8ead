package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
)

// statusByCode cobre os códigos de negócio que não são 400.
var statusByCode = map[string]int{
	"invalid_credentials": http.StatusUnauthorized,
	"sem_permissao":       http.StatusForbidden,
	"not_profissional":    http.StatusForbidden,
	"duplicado":           http.StatusConflict,
	"em_uso":              http.StatusConflict,
}

var defaultMessages = map[string]string{
	"invalid_state": "Transição de status inválida.",
}

// writeError traduz erros de caso de uso para a resposta HTTP.
func writeError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		status, found := statusByCode[be.Code]
		switch {
		case found:
		case be.Code == "not_found" || strings.HasSuffix(be.Code, "_not_found"):
			status = http.StatusNotFound
		default:
			status = http.StatusBadRequest
		}

		msg := be.Message
		if msg == "" {
			msg = defaultMessages[be.Code]
		}
		if msg == "" {
			msg = "Requisição inválida."
		}
		httperr.Write(c, status, be.Code, msg)
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("erro inesperado")
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}
