package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/timezone"
)

type auditFilter struct {
	Action    string
	Entity    string
	UsuarioID *uint
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

func (f auditFilter) offset() int {
	return (f.Page - 1) * f.Limit
}

// parseAuditFilter ignora datas inválidas e limita a página a 200 itens.
func parseAuditFilter(c *gin.Context) auditFilter {
	f := auditFilter{
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
		UsuarioID: optionalUint(c.Query("usuario")),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	return f
}
