package servico

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

var (
	ErrProfissionalNaoEncontrado = httperr.ErrBusinessMsg("profissional_not_found", "Profissional não encontrado.")
	ErrServicoNaoEncontrado      = httperr.ErrBusinessMsg("servico_not_found", "Serviço não encontrado.")
	ErrAutoAgendamento           = httperr.ErrBusinessMsg("auto_agendamento", "Você não pode agendar com o próprio perfil.")
	ErrDataPassada               = httperr.ErrBusinessMsg("data_no_passado", "A data do agendamento deve estar no futuro.")
	ErrSemPermissao              = httperr.ErrBusinessMsg("sem_permissao", "Você não tem permissão para alterar este serviço.")
)

type Agendar struct {
	repo  servicoDomain.Repository
	audit audit.Publisher
	now   func() time.Time
}

func NewAgendar(repo servicoDomain.Repository, audit audit.Publisher) *Agendar {
	return &Agendar{repo: repo, audit: audit, now: time.Now}
}

func (uc *Agendar) Execute(
	ctx context.Context,
	clienteID uint,
	profissionalID uint,
	data time.Time,
) (*models.Servico, error) {

	p, err := uc.repo.GetProfissional(ctx, profissionalID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrProfissionalNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	if p.UsuarioID == clienteID {
		return nil, ErrAutoAgendamento
	}
	if !data.After(uc.now()) {
		return nil, ErrDataPassada
	}

	s := &models.Servico{
		ProfissionalID:  p.ID,
		ClienteID:       clienteID,
		DataAgendamento: data,
		Status:          string(servicoDomain.InitialStatus()),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &clienteID,
		Action:    "servico_agendado",
		Entity:    "servico",
		EntityID:  &s.ID,
		Metadata:  map[string]any{"profissional_id": p.ID},
	})

	return uc.repo.Get(ctx, s.ID)
}
