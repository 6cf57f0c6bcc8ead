package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
	ucLocalidade "github.com/BruksfildServices01/profissionais-api/internal/usecase/localidade"
	ucProfissional "github.com/BruksfildServices01/profissionais-api/internal/usecase/profissional"
)

type ProfissionalHandler struct {
	list       *ucProfissional.ListProfissionais
	detalhes   *ucProfissional.GetDetalhes
	agendar    *ucProfissional.LinkAgendamento
	localidade *ucLocalidade.Service
}

func NewProfissionalHandler(
	list *ucProfissional.ListProfissionais,
	detalhes *ucProfissional.GetDetalhes,
	agendar *ucProfissional.LinkAgendamento,
	localidade *ucLocalidade.Service,
) *ProfissionalHandler {
	return &ProfissionalHandler{
		list:       list,
		detalhes:   detalhes,
		agendar:    agendar,
		localidade: localidade,
	}
}

type profissionalPage struct {
	httpresp.PageResponse[dto.ProfissionalListDTO]
	Especialidades []models.Especialidade `json:"especialidades"`
}

// List aceita ?nome=&especialidade=&ordem=&page=.
func (h *ProfissionalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.list.Execute(ctx, ucProfissional.ListInput{
		Nome:            c.Query("nome"),
		EspecialidadeID: optionalUint(c.Query("especialidade")),
		Ordem:           c.Query("ordem"),
		Page:            c.Query("page"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	especialidades, err := h.localidade.ListEspecialidades(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	if especialidades == nil {
		especialidades = []models.Especialidade{}
	}

	httpresp.OK(c, profissionalPage{
		PageResponse: httpresp.PageResponse[dto.ProfissionalListDTO]{
			Data:        out.Items,
			Page:        out.Page.Number,
			NumPages:    out.Page.NumPages,
			Total:       out.Page.Total,
			HasNext:     out.Page.HasNext(),
			HasPrevious: out.Page.HasPrevious(),
			IsPaginated: out.Page.HasOtherPages(),
		},
		Especialidades: especialidades,
	})
}

func (h *ProfissionalHandler) Detalhes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.detalhes.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// LinkAgendamento devolve o link do Gmail para pedir agendamento por e-mail.
func (h *ProfissionalHandler) LinkAgendamento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	link, err := h.agendar.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "", gin.H{"gmail_link": link})
}
