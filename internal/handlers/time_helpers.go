package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/timezone"
)

// --------------------------------------------------
// Parâmetros de rota e query
// --------------------------------------------------

// paramID lê :name como uint e responde 400 quando inválido.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// optionalUint devolve nil para vazio ou não numérico.
func optionalUint(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

// --------------------------------------------------
// Datas no fuso padrão
// --------------------------------------------------

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := timezone.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateTime aceita RFC3339 ou "2006-01-02 15:04" em loc.
func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(
		"2006-01-02 15:04",
		strings.Replace(raw, "T", " ", 1),
		loc,
	)
}
