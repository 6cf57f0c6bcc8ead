package usuario

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
	"github.com/BruksfildServices01/profissionais-api/internal/validators"
)

var (
	ErrUsuarioNaoEncontrado = httperr.ErrBusinessMsg("usuario_not_found", "Usuário não encontrado.")
	ErrNaoProfissional      = httperr.ErrBusinessMsg("not_profissional", "Apenas profissionais podem editar este perfil.")
)

// ======================================================
// GET
// ======================================================

type GetPerfil struct {
	repo usuarioDomain.Repository
}

func NewGetPerfil(repo usuarioDomain.Repository) *GetPerfil {
	return &GetPerfil{repo: repo}
}

func (uc *GetPerfil) Execute(ctx context.Context, userID uint) (*models.Usuario, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUsuarioNaoEncontrado
	}
	return u, err
}

// ======================================================
// UPDATE
// ======================================================

type UpdatePerfil struct {
	repo        usuarioDomain.Repository
	audit       audit.Publisher
	checkDomain validators.EmailDomainChecker
}

func NewUpdatePerfil(
	repo usuarioDomain.Repository,
	audit audit.Publisher,
	checkDomain validators.EmailDomainChecker,
) *UpdatePerfil {
	return &UpdatePerfil{
		repo:        repo,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *UpdatePerfil) Execute(
	ctx context.Context,
	userID uint,
	in usuarioDomain.PerfilInput,
) (*models.Usuario, error) {

	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUsuarioNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	in.Normalize()

	ve := &httperr.ValidationError{}
	in.Validate(ve)

	// o domínio só é consultado quando o e-mail muda
	check := uc.checkDomain
	if in.Email == u.Email {
		check = nil
	}
	if err := checkEmail(ctx, uc.repo, check, in.Email, u.ID, ve); err != nil {
		return nil, err
	}

	var endereco *models.Endereco
	if in.Endereco.Complete() {
		if err := checkCidade(ctx, uc.repo, in.Endereco, ve); err != nil {
			return nil, err
		}
		endereco = mergeEndereco(u.Endereco, in.Endereco)
	}

	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	u.Email = in.Email
	u.Telefone = optional(in.Telefone)
	u.DataNascimento = in.DataNascimento

	if err := uc.repo.Update(ctx, u, endereco); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "perfil_atualizado",
		Entity:    "usuario",
		EntityID:  &u.ID,
	})

	return uc.repo.GetByID(ctx, u.ID)
}

func mergeEndereco(current *models.Endereco, in usuarioDomain.EnderecoInput) *models.Endereco {
	e := &models.Endereco{}
	if current != nil {
		e.ID = current.ID
	}
	e.CidadeID = *in.CidadeID
	e.Rua = optional(in.Rua)
	e.Numero = optional(in.Numero)
	e.Bairro = optional(in.Bairro)
	e.CEP = optional(in.CEP)
	return e
}

// ======================================================
// UPDATE PROFISSIONAL
// ======================================================

type UpdatePerfilProfissional struct {
	repo  usuarioDomain.Repository
	audit audit.Publisher
}

func NewUpdatePerfilProfissional(
	repo usuarioDomain.Repository,
	audit audit.Publisher,
) *UpdatePerfilProfissional {
	return &UpdatePerfilProfissional{repo: repo, audit: audit}
}

func (uc *UpdatePerfilProfissional) Execute(
	ctx context.Context,
	userID uint,
	in usuarioDomain.PerfilProfissionalInput,
) (*models.Usuario, error) {

	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUsuarioNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if u.Profissional == nil {
		return nil, ErrNaoProfissional
	}

	ve := &httperr.ValidationError{}
	usuarioDomain.ValidatePreco(in.PrecoServico, ve)
	if in.EspecialidadeID != nil {
		if err := checkEspecialidade(ctx, uc.repo, *in.EspecialidadeID, ve); err != nil {
			return nil, err
		}
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	p := u.Profissional
	if in.Biografia != nil {
		p.Biografia = optional(*in.Biografia)
	}
	if in.PrecoServico != nil {
		p.PrecoServico = in.PrecoServico
	}
	switch {
	case in.LimparEspecialidade:
		p.EspecialidadeID = nil
	case in.EspecialidadeID != nil:
		p.EspecialidadeID = in.EspecialidadeID
	}

	if err := uc.repo.UpdateProfissional(ctx, p, in.TelefoneProfissional); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "perfil_profissional_atualizado",
		Entity:    "profissional",
		EntityID:  &p.ID,
	})

	return uc.repo.GetByID(ctx, u.ID)
}
