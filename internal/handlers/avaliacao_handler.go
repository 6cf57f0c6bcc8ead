package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	ucAvaliacao "github.com/BruksfildServices01/profissionais-api/internal/usecase/avaliacao"
)

type AvaliacaoHandler struct {
	avaliar           *ucAvaliacao.Avaliar
	excluir           *ucAvaliacao.ExcluirAvaliacao
	comentar          *ucAvaliacao.AdicionarComentario
	excluirComentario *ucAvaliacao.ExcluirComentario
}

func NewAvaliacaoHandler(
	avaliar *ucAvaliacao.Avaliar,
	excluir *ucAvaliacao.ExcluirAvaliacao,
	comentar *ucAvaliacao.AdicionarComentario,
	excluirComentario *ucAvaliacao.ExcluirComentario,
) *AvaliacaoHandler {
	return &AvaliacaoHandler{
		avaliar:           avaliar,
		excluir:           excluir,
		comentar:          comentar,
		excluirComentario: excluirComentario,
	}
}

// --------- Requests ---------

type AvaliarRequest struct {
	Nota       int    `json:"nota" form:"nota"`
	Titulo     string `json:"titulo" form:"titulo"`
	Comentario string `json:"comentario" form:"comentario"`
	Recomenda  string `json:"recomenda" form:"recomenda"`
}

type ComentarioRequest struct {
	Texto string `json:"texto" form:"texto"`
}

// --------- Handlers ---------

func (h *AvaliacaoHandler) Avaliar(c *gin.Context) {
	profissionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AvaliarRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.avaliar.Execute(c.Request.Context(), middleware.UserID(c), profissionalID, ucAvaliacao.AvaliarInput{
		Nota:       req.Nota,
		Titulo:     req.Titulo,
		Comentario: req.Comentario,
		Recomenda:  req.Recomenda,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Avaliação adicionada com sucesso!", gin.H{"avaliacao": out})
}

func (h *AvaliacaoHandler) Excluir(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.excluir.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Avaliação excluída com sucesso!", nil)
}

func (h *AvaliacaoHandler) Comentar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ComentarioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.comentar.Execute(c.Request.Context(), middleware.UserID(c), id, req.Texto)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "", gin.H{"comentario": out})
}

func (h *AvaliacaoHandler) ExcluirComentario(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.excluirComentario.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Comentário excluído com sucesso!", nil)
}
