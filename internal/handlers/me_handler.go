package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	"github.com/BruksfildServices01/profissionais-api/internal/storage"
	ucUsuario "github.com/BruksfildServices01/profissionais-api/internal/usecase/usuario"
)

type MeHandler struct {
	get                *ucUsuario.GetPerfil
	update             *ucUsuario.UpdatePerfil
	updateProfissional *ucUsuario.UpdatePerfilProfissional
	imagem             *ucUsuario.UpdateImagem
	imagemProfissional *ucUsuario.UpdateImagem
	deleteConta        *ucUsuario.DeleteConta
}

func NewMeHandler(
	get *ucUsuario.GetPerfil,
	update *ucUsuario.UpdatePerfil,
	updateProfissional *ucUsuario.UpdatePerfilProfissional,
	imagem *ucUsuario.UpdateImagem,
	imagemProfissional *ucUsuario.UpdateImagem,
	deleteConta *ucUsuario.DeleteConta,
) *MeHandler {
	return &MeHandler{
		get:                get,
		update:             update,
		updateProfissional: updateProfissional,
		imagem:             imagem,
		imagemProfissional: imagemProfissional,
		deleteConta:        deleteConta,
	}
}

// --------- Requests ---------

type PerfilRequest struct {
	Email          string `json:"email" form:"email"`
	Telefone       string `json:"telefone" form:"telefone"`
	DataNascimento string `json:"data_nascimento" form:"data_nascimento"`
	enderecoRequest
}

type PerfilProfissionalRequest struct {
	Biografia            *string `json:"biografia" form:"biografia"`
	PrecoServico         *string `json:"preco_servico" form:"preco_servico"`
	Especialidade        *uint   `json:"especialidade" form:"especialidade"`
	LimparEspecialidade  bool    `json:"limpar_especialidade" form:"limpar_especialidade"`
	TelefoneProfissional *bool   `json:"telefone_profissional" form:"telefone_profissional"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"usuario": u, "role": u.Role()})
}

func (h *MeHandler) Update(c *gin.Context) {
	var req PerfilRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ve := &httperr.ValidationError{}
	nasc, err := parseOptionalDate(req.DataNascimento)
	if err != nil {
		ve.Add("data_nascimento", "Informe uma data válida (AAAA-MM-DD).")
	}
	if err := ve.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	u, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), usuarioDomain.PerfilInput{
		Email:          req.Email,
		Telefone:       req.Telefone,
		DataNascimento: nasc,
		Endereco:       req.enderecoRequest.input(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Perfil atualizado com sucesso!", gin.H{"usuario": u})
}

func (h *MeHandler) UpdateProfissional(c *gin.Context) {
	var req PerfilProfissionalRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := usuarioDomain.PerfilProfissionalInput{
		Biografia:            req.Biografia,
		EspecialidadeID:      nonZero(req.Especialidade),
		LimparEspecialidade:  req.LimparEspecialidade,
		TelefoneProfissional: req.TelefoneProfissional,
	}

	if req.PrecoServico != nil {
		preco, err := parsePreco(*req.PrecoServico)
		if err != nil {
			ve := &httperr.ValidationError{}
			ve.Add("preco_servico", "Informe um valor numérico.")
			writeError(c, ve)
			return
		}
		in.PrecoServico = preco
	}

	u, err := h.updateProfissional.Execute(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Perfil profissional atualizado com sucesso!", gin.H{"usuario": u})
}

func (h *MeHandler) UpdateImagem(c *gin.Context) {
	h.upload(c, h.imagem)
}

func (h *MeHandler) UpdateImagemProfissional(c *gin.Context) {
	h.upload(c, h.imagemProfissional)
}

func (h *MeHandler) upload(c *gin.Context, uc *ucUsuario.UpdateImagem) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("imagem")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo \"imagem\".")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	url, err := uc.Execute(c.Request.Context(), middleware.UserID(c), f)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Imagem atualizada.", gin.H{"url": url})
}

func (h *MeHandler) Delete(c *gin.Context) {
	if err := h.deleteConta.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		middleware.TokenID(c),
		middleware.TokenExpiry(c),
	); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Conta excluída com sucesso.", nil)
}
