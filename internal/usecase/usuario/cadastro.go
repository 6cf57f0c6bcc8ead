package usuario

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
	"github.com/BruksfildServices01/profissionais-api/internal/validators"
)

// ======================================================
// CLIENTE
// ======================================================

type RegisterCliente struct {
	repo        usuarioDomain.Repository
	audit       audit.Publisher
	checkDomain validators.EmailDomainChecker
}

func NewRegisterCliente(
	repo usuarioDomain.Repository,
	audit audit.Publisher,
	checkDomain validators.EmailDomainChecker,
) *RegisterCliente {
	return &RegisterCliente{
		repo:        repo,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *RegisterCliente) Execute(
	ctx context.Context,
	in usuarioDomain.CadastroInput,
) (*models.Usuario, error) {

	in.Normalize()

	ve := &httperr.ValidationError{}
	in.Validate(ve)
	if err := checkCadastro(ctx, uc.repo, uc.checkDomain, in, ve); err != nil {
		return nil, err
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	u, err := newUsuario(in)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, u, newEndereco(in.Endereco), nil); err != nil {
		return nil, translateCreate(err)
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "cliente_cadastrado",
		Entity:    "usuario",
		EntityID:  &u.ID,
	})

	return uc.repo.GetByID(ctx, u.ID)
}

// ======================================================
// PROFISSIONAL
// ======================================================

type RegisterProfissional struct {
	repo        usuarioDomain.Repository
	audit       audit.Publisher
	checkDomain validators.EmailDomainChecker
}

func NewRegisterProfissional(
	repo usuarioDomain.Repository,
	audit audit.Publisher,
	checkDomain validators.EmailDomainChecker,
) *RegisterProfissional {
	return &RegisterProfissional{
		repo:        repo,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *RegisterProfissional) Execute(
	ctx context.Context,
	in usuarioDomain.CadastroProfissionalInput,
) (*models.Usuario, error) {

	in.Normalize()
	in.Biografia = strings.TrimSpace(in.Biografia)

	ve := &httperr.ValidationError{}
	in.Validate(ve)
	if err := checkCadastro(ctx, uc.repo, uc.checkDomain, in.CadastroInput, ve); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// CRM e especialidade
	// --------------------------------------------------
	if in.CRM != nil && !ve.Has("crm") {
		exists, err := uc.repo.CRMExists(ctx, *in.CRM)
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("crm", usuarioDomain.MsgCRMEmUso)
		}
	}
	if in.EspecialidadeID != nil {
		if err := checkEspecialidade(ctx, uc.repo, *in.EspecialidadeID, ve); err != nil {
			return nil, err
		}
	}

	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	u, err := newUsuario(in.CadastroInput)
	if err != nil {
		return nil, err
	}
	u.TelefoneProfissional = in.TelefoneProfissional

	p := &models.Profissional{
		EspecialidadeID: in.EspecialidadeID,
		CRM:             *in.CRM,
		Biografia:       optional(in.Biografia),
		PrecoServico:    in.PrecoServico,
	}

	if err := uc.repo.Create(ctx, u, newEndereco(in.Endereco), p); err != nil {
		return nil, translateCreate(err)
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "profissional_cadastrado",
		Entity:    "profissional",
		EntityID:  &p.ID,
		Metadata:  map[string]any{"crm": p.CRM},
	})

	return uc.repo.GetByID(ctx, u.ID)
}

// ======================================================
// HELPERS
// ======================================================

// checkCadastro valida o que depende do banco: unicidade, domínio do
// e-mail e se a cidade pertence ao estado.
func checkCadastro(
	ctx context.Context,
	repo usuarioDomain.Repository,
	checkDomain validators.EmailDomainChecker,
	in usuarioDomain.CadastroInput,
	ve *httperr.ValidationError,
) error {

	if in.Username != "" && !ve.Has("username") {
		exists, err := repo.UsernameExists(ctx, in.Username)
		if err != nil {
			return err
		}
		if exists {
			ve.Add("username", usuarioDomain.MsgUsernameEmUso)
		}
	}

	if err := checkEmail(ctx, repo, checkDomain, in.Email, 0, ve); err != nil {
		return err
	}

	return checkCidade(ctx, repo, in.Endereco, ve)
}

func checkEmail(
	ctx context.Context,
	repo usuarioDomain.Repository,
	checkDomain validators.EmailDomainChecker,
	email string,
	exceptID uint,
	ve *httperr.ValidationError,
) error {

	if email == "" || ve.Has("email") {
		return nil
	}

	exists, err := repo.EmailExists(ctx, email, exceptID)
	if err != nil {
		return err
	}
	if exists {
		ve.Add("email", usuarioDomain.MsgEmailEmUso)
		return nil
	}

	if checkDomain != nil && !checkDomain(email) {
		ve.Add("email", "O domínio do e-mail informado não existe.")
	}
	return nil
}

func checkCidade(
	ctx context.Context,
	repo usuarioDomain.Repository,
	e usuarioDomain.EnderecoInput,
	ve *httperr.ValidationError,
) error {

	if e.CidadeID == nil {
		return nil
	}

	cidade, err := repo.GetCidade(ctx, *e.CidadeID)
	if errors.Is(err, domain.ErrNotFound) {
		ve.Add("cidade", "Selecione uma cidade válida.")
		return nil
	}
	if err != nil {
		return err
	}

	if e.EstadoID != nil && (cidade.EstadoID == nil || *cidade.EstadoID != *e.EstadoID) {
		ve.Add("cidade", "A cidade não pertence ao estado selecionado.")
	}
	return nil
}

func checkEspecialidade(
	ctx context.Context,
	repo usuarioDomain.Repository,
	id uint,
	ve *httperr.ValidationError,
) error {
	_, err := repo.GetEspecialidade(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		ve.Add("especialidade", "Selecione uma especialidade válida.")
		return nil
	}
	return err
}

func newUsuario(in usuarioDomain.CadastroInput) (*models.Usuario, error) {
	hash, err := auth.HashPassword(in.Password1)
	if err != nil {
		return nil, err
	}

	return &models.Usuario{
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PasswordHash:   hash,
		Telefone:       optional(in.Telefone),
		DataNascimento: in.DataNascimento,
		IsActive:       true,
	}, nil
}

// newEndereco devolve nil quando nenhum campo de endereço veio.
func newEndereco(e usuarioDomain.EnderecoInput) *models.Endereco {
	if !e.Any() || e.CidadeID == nil {
		return nil
	}

	return &models.Endereco{
		CidadeID: *e.CidadeID,
		Rua:      optional(e.Rua),
		Numero:   optional(e.Numero),
		Bairro:   optional(e.Bairro),
		CEP:      optional(e.CEP),
	}
}

// translateCreate cobre a corrida entre a checagem e o INSERT.
func translateCreate(err error) error {
	if !httperr.IsUniqueViolation(err, "") {
		return err
	}

	ve := &httperr.ValidationError{}
	if httperr.IsUniqueViolation(err, "idx_profissionais_crm") {
		ve.Add("crm", usuarioDomain.MsgCRMEmUso)
	} else {
		ve.Add("username", usuarioDomain.MsgUsernameEmUso)
	}
	return ve
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
