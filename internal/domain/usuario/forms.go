package usuario

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/validators"
)

const (
	MsgSenhasDiferentes = "As senhas não coincidem."
	MsgUsernameEmUso    = "Este nome de usuário já está cadastrado."
	MsgEmailEmUso       = "Este e-mail já está cadastrado."
	MsgCRMEmUso         = "O CRM informado já está em uso."
	MsgPrecoInvalido    = "O preço do serviço deve ser maior que zero."
	MsgCampoObrigatorio = "Este campo é obrigatório."
)

type EnderecoInput struct {
	EstadoID *uint
	CidadeID *uint
	Rua      string
	Numero   string
	Bairro   string
	CEP      string
}

// Any: qualquer campo preenchido cria endereço no cadastro.
func (e EnderecoInput) Any() bool {
	return e.EstadoID != nil || e.CidadeID != nil ||
		e.Rua != "" || e.Numero != "" || e.Bairro != "" || e.CEP != ""
}

// Complete: na edição de perfil o endereço só é gravado com rua, CEP,
// estado e cidade.
func (e EnderecoInput) Complete() bool {
	return e.Rua != "" && e.CEP != "" && e.EstadoID != nil && e.CidadeID != nil
}

func (e *EnderecoInput) normalize() {
	e.Rua = strings.TrimSpace(e.Rua)
	e.Numero = strings.TrimSpace(e.Numero)
	e.Bairro = strings.TrimSpace(e.Bairro)
	e.CEP = validators.NormalizeCEP(e.CEP)
}

func (e EnderecoInput) validate(ve *httperr.ValidationError) {
	if !validators.MaxLen(e.Rua, validators.MaxRua) {
		ve.Add("rua", "Máximo de 100 caracteres.")
	}
	if !validators.MaxLen(e.Numero, validators.MaxNumero) {
		ve.Add("numero", "Máximo de 10 caracteres.")
	}
	if !validators.MaxLen(e.Bairro, validators.MaxBairro) {
		ve.Add("bairro", "Máximo de 100 caracteres.")
	}
	if e.CEP != "" && !validators.IsCEPValid(e.CEP) {
		ve.Add("cep", "CEP inválido.")
	}
}

type CadastroInput struct {
	Username       string
	FirstName      string
	LastName       string
	Email          string
	Password1      string
	Password2      string
	Telefone       string
	DataNascimento *time.Time
	Endereco       EnderecoInput
}

func (in *CadastroInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = validators.NormalizeEmail(in.Email)
	in.Telefone = strings.TrimSpace(in.Telefone)
	in.Endereco.normalize()
}

// Validate cobre as regras que não dependem do banco.
func (in CadastroInput) Validate(ve *httperr.ValidationError) {
	required := map[string]string{
		"username":   in.Username,
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"password1":  in.Password1,
		"password2":  in.Password2,
	}
	for field, v := range required {
		if v == "" {
			ve.Add(field, MsgCampoObrigatorio)
		}
	}

	if in.Username != "" && !validators.IsUsernameValid(in.Username) {
		ve.Add("username", "Use até 150 caracteres: letras, números e @/./+/-/_.")
	}
	if !validators.MaxLen(in.FirstName, validators.MaxNome) {
		ve.Add("first_name", "Máximo de 150 caracteres.")
	}
	if !validators.MaxLen(in.LastName, validators.MaxNome) {
		ve.Add("last_name", "Máximo de 150 caracteres.")
	}
	if in.Email != "" && !validators.IsEmailSyntaxValid(in.Email) {
		ve.Add("email", "Informe um endereço de e-mail válido.")
	}
	if in.Password1 != "" && in.Password2 != "" && in.Password1 != in.Password2 {
		ve.Add("__all__", MsgSenhasDiferentes)
	}
	if !validators.MaxLen(in.Telefone, validators.MaxTelefone) {
		ve.Add("telefone", "Máximo de 15 caracteres.")
	}
	if in.DataNascimento != nil && in.DataNascimento.After(time.Now()) {
		ve.Add("data_nascimento", "A data de nascimento não pode estar no futuro.")
	}

	in.Endereco.validate(ve)
	if in.Endereco.Any() && in.Endereco.CidadeID == nil {
		ve.Add("cidade", "Selecione a cidade do endereço.")
	}
}

type CadastroProfissionalInput struct {
	CadastroInput
	TelefoneProfissional bool
	CRM                  *int
	EspecialidadeID      *uint
	Biografia            string
	PrecoServico         *decimal.Decimal
}

func (in CadastroProfissionalInput) Validate(ve *httperr.ValidationError) {
	in.CadastroInput.Validate(ve)

	if in.CRM == nil {
		ve.Add("crm", MsgCampoObrigatorio)
	} else if *in.CRM <= 0 {
		ve.Add("crm", "Informe um número de CRM válido.")
	}
	ValidatePreco(in.PrecoServico, ve)
}

// ValidatePreco: preço é opcional, mas quando informado deve ser positivo
// e caber em numeric(10,2).
func ValidatePreco(preco *decimal.Decimal, ve *httperr.ValidationError) {
	if preco == nil {
		return
	}
	if !preco.IsPositive() {
		ve.Add("preco_servico", MsgPrecoInvalido)
		return
	}
	if preco.Exponent() < -2 && !preco.Equal(preco.Round(2)) {
		ve.Add("preco_servico", "Use no máximo duas casas decimais.")
		return
	}
	if preco.GreaterThanOrEqual(decimal.New(1, 8)) {
		ve.Add("preco_servico", "Valor acima do permitido.")
	}
}

type PerfilInput struct {
	Email          string
	Telefone       string
	DataNascimento *time.Time
	Endereco       EnderecoInput
}

func (in *PerfilInput) Normalize() {
	in.Email = validators.NormalizeEmail(in.Email)
	in.Telefone = strings.TrimSpace(in.Telefone)
	in.Endereco.normalize()
}

func (in PerfilInput) Validate(ve *httperr.ValidationError) {
	if in.Email == "" {
		ve.Add("email", MsgCampoObrigatorio)
	} else if !validators.IsEmailSyntaxValid(in.Email) {
		ve.Add("email", "Informe um endereço de e-mail válido.")
	}
	if !validators.MaxLen(in.Telefone, validators.MaxTelefone) {
		ve.Add("telefone", "Máximo de 15 caracteres.")
	}
	if in.DataNascimento != nil && in.DataNascimento.After(time.Now()) {
		ve.Add("data_nascimento", "A data de nascimento não pode estar no futuro.")
	}
	in.Endereco.validate(ve)
}

type PerfilProfissionalInput struct {
	Biografia            *string
	PrecoServico         *decimal.Decimal
	EspecialidadeID      *uint
	LimparEspecialidade  bool
	TelefoneProfissional *bool
}
