package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	ucServico "github.com/BruksfildServices01/profissionais-api/internal/usecase/servico"
)

// ======================================================
// HANDLER
// ======================================================

type ServicoHandler struct {
	agendar  *ucServico.Agendar
	listar   *ucServico.Listar
	realizar *ucServico.Realizar
	cancelar *ucServico.Cancelar

	// loc interpreta datas de agendamento sem fuso explícito.
	loc *time.Location
}

func NewServicoHandler(
	agendar *ucServico.Agendar,
	listar *ucServico.Listar,
	realizar *ucServico.Realizar,
	cancelar *ucServico.Cancelar,
	loc *time.Location,
) *ServicoHandler {
	return &ServicoHandler{
		agendar:  agendar,
		listar:   listar,
		realizar: realizar,
		cancelar: cancelar,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AgendarRequest struct {
	DataAgendamento string `json:"data_agendamento" form:"data_agendamento" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ServicoHandler) Agendar(c *gin.Context) {
	profissionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AgendarRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a data do agendamento.")
		return
	}

	data, err := parseDateTime(req.DataAgendamento, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	s, err := h.agendar.Execute(c.Request.Context(), middleware.UserID(c), profissionalID, data)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.NewServicoListDTO(*s))
}

// ======================================================
// LIST
// ======================================================

// List aceita ?status=AGENDADO|REALIZADO|CANCELADO.
func (h *ServicoHandler) List(c *gin.Context) {
	var status servicoDomain.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, ok := servicoDomain.ParseStatus(strings.ToUpper(raw))
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		status = st
	}

	out, err := h.listar.Execute(c.Request.Context(), middleware.UserID(c), status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"como_cliente":      dto.NewServicoList(out.ComoCliente),
		"como_profissional": dto.NewServicoList(out.ComoProfissional),
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *ServicoHandler) Realizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.realizar.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewServicoListDTO(*s))
}

func (h *ServicoHandler) Cancelar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.cancelar.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewServicoListDTO(*s))
}
