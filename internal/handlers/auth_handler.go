package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/httpresp"
	"github.com/BruksfildServices01/profissionais-api/internal/middleware"
	ucUsuario "github.com/BruksfildServices01/profissionais-api/internal/usecase/usuario"
)

type AuthHandler struct {
	registerCliente      *ucUsuario.RegisterCliente
	registerProfissional *ucUsuario.RegisterProfissional
	login                *ucUsuario.Login
	logout               *ucUsuario.Logout
}

func NewAuthHandler(
	registerCliente *ucUsuario.RegisterCliente,
	registerProfissional *ucUsuario.RegisterProfissional,
	login *ucUsuario.Login,
	logout *ucUsuario.Logout,
) *AuthHandler {
	return &AuthHandler{
		registerCliente:      registerCliente,
		registerProfissional: registerProfissional,
		login:                login,
		logout:               logout,
	}
}

// --------- Requests ---------

type enderecoRequest struct {
	Estado *uint  `json:"estado" form:"estado"`
	Cidade *uint  `json:"cidade" form:"cidade"`
	Rua    string `json:"rua" form:"rua"`
	Numero string `json:"numero" form:"numero"`
	Bairro string `json:"bairro" form:"bairro"`
	CEP    string `json:"cep" form:"cep"`
}

func (r enderecoRequest) input() usuarioDomain.EnderecoInput {
	return usuarioDomain.EnderecoInput{
		EstadoID: nonZero(r.Estado),
		CidadeID: nonZero(r.Cidade),
		Rua:      r.Rua,
		Numero:   r.Numero,
		Bairro:   r.Bairro,
		CEP:      r.CEP,
	}
}

type CadastroClienteRequest struct {
	Username       string `json:"username" form:"username"`
	FirstName      string `json:"first_name" form:"first_name"`
	LastName       string `json:"last_name" form:"last_name"`
	Email          string `json:"email" form:"email"`
	Password1      string `json:"password1" form:"password1"`
	Password2      string `json:"password2" form:"password2"`
	Telefone       string `json:"telefone" form:"telefone"`
	DataNascimento string `json:"data_nascimento" form:"data_nascimento"`
	enderecoRequest
}

type CadastroProfissionalRequest struct {
	CadastroClienteRequest
	TelefoneProfissional bool   `json:"telefone_profissional" form:"telefone_profissional"`
	CRM                  *int   `json:"crm" form:"crm"`
	Especialidade        *uint  `json:"especialidade" form:"especialidade"`
	Biografia            string `json:"biografia" form:"biografia"`
	PrecoServico         string `json:"preco_servico" form:"preco_servico"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// cadastroInput converte a requisição; erros de formato de data entram no
// mesmo ValidationError dos demais campos.
func (r CadastroClienteRequest) cadastroInput(ve *httperr.ValidationError) usuarioDomain.CadastroInput {
	in := usuarioDomain.CadastroInput{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password1: r.Password1,
		Password2: r.Password2,
		Telefone:  r.Telefone,
		Endereco:  r.enderecoRequest.input(),
	}

	nasc, err := parseOptionalDate(r.DataNascimento)
	if err != nil {
		ve.Add("data_nascimento", "Informe uma data válida (AAAA-MM-DD).")
	}
	in.DataNascimento = nasc
	return in
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterCliente(c *gin.Context) {
	var req CadastroClienteRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ve := &httperr.ValidationError{}
	in := req.cadastroInput(ve)
	if err := ve.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	u, err := h.registerCliente.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"usuario": u})
}

func (h *AuthHandler) RegisterProfissional(c *gin.Context) {
	var req CadastroProfissionalRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ve := &httperr.ValidationError{}
	in := usuarioDomain.CadastroProfissionalInput{
		CadastroInput:        req.cadastroInput(ve),
		TelefoneProfissional: req.TelefoneProfissional,
		CRM:                  req.CRM,
		EspecialidadeID:      nonZero(req.Especialidade),
		Biografia:            req.Biografia,
	}
	if in.CRM != nil && *in.CRM == 0 {
		in.CRM = nil
	}

	preco, err := parsePreco(req.PrecoServico)
	if err != nil {
		ve.Add("preco_servico", "Informe um valor numérico.")
	}
	in.PrecoServico = preco

	if err := ve.OrNil(); err != nil {
		writeError(c, err)
		return
	}

	u, err := h.registerProfissional.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"usuario": u})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      out.Token,
		"expires_at": out.ExpiresAt,
		"usuario":    out.Usuario,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.logout.Execute(
		c.Request.Context(),
		userID,
		middleware.TokenID(c),
		middleware.TokenExpiry(c),
	); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Success(c, "Sessão encerrada.", nil)
}

// TiposUsuario lista os dois tipos de cadastro disponíveis.
func (h *AuthHandler) TiposUsuario(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"tipos": []gin.H{
			{"tipo": "cliente", "descricao": "Cliente", "cadastro": "/api/cadastro/cliente"},
			{"tipo": "profissional", "descricao": "Profissional", "cadastro": "/api/cadastro/profissional"},
		},
	})
}

// --------- Helpers ---------

func nonZero(v *uint) *uint {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func parsePreco(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
