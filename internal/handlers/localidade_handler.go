package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	ucLocalidade "github.com/BruksfildServices01/profissionais-api/internal/usecase/localidade"
)

type LocalidadeHandler struct {
	svc *ucLocalidade.Service
}

func NewLocalidadeHandler(svc *ucLocalidade.Service) *LocalidadeHandler {
	return &LocalidadeHandler{svc: svc}
}

// ======================================================
// PÚBLICO
// ======================================================

func (h *LocalidadeHandler) Estados(c *gin.Context) {
	out, err := h.svc.ListEstados(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

// Cidades devolve [{id, nome}] do estado em ?estado=.
func (h *LocalidadeHandler) Cidades(c *gin.Context) {
	out, err := h.svc.ListCidades(c.Request.Context(), optionalUint(c.Query("estado")))
	if err != nil {
		writeError(c, err)
		return
	}
	if out == nil {
		out = []ucLocalidade.CidadeItem{}
	}
	httpresp.OK(c, out)
}

func (h *LocalidadeHandler) Especialidades(c *gin.Context) {
	out, err := h.svc.ListEspecialidades(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// ADMIN
// ======================================================

type EstadoRequest struct {
	Nome  string `json:"nome" form:"nome"`
	Sigla string `json:"sigla" form:"sigla"`
}

type CidadeRequest struct {
	Nome   string `json:"nome" form:"nome"`
	Estado *uint  `json:"estado" form:"estado"`
}

type EspecialidadeRequest struct {
	Nome      string `json:"nome" form:"nome"`
	Descricao string `json:"descricao" form:"descricao"`
}

func (h *LocalidadeHandler) CreateEstado(c *gin.Context) {
	var req EstadoRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	e, err := h.svc.CreateEstado(c.Request.Context(), middleware.UserID(c), req.Nome, req.Sigla)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, e)
}

func (h *LocalidadeHandler) DeleteEstado(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEstado(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Success(c, "Estado excluído.", nil)
}

func (h *LocalidadeHandler) CreateCidade(c *gin.Context) {
	var req CidadeRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cidade, err := h.svc.CreateCidade(c.Request.Context(), middleware.UserID(c), req.Nome, nonZero(req.Estado))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, cidade)
}

func (h *LocalidadeHandler) DeleteCidade(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCidade(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Success(c, "Cidade excluída.", nil)
}

func (h *LocalidadeHandler) CreateEspecialidade(c *gin.Context) {
	var req EspecialidadeRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	e, err := h.svc.CreateEspecialidade(c.Request.Context(), middleware.UserID(c), req.Nome, req.Descricao)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, e)
}

func (h *LocalidadeHandler) DeleteEspecialidade(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEspecialidade(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	httpresp.Success(c, "Especialidade excluída.", nil)
}
