package servico

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

// ======================================================
// REALIZAR
// ======================================================

type Realizar struct {
	repo  servicoDomain.Repository
	audit audit.Publisher
	now   func() time.Time
}

func NewRealizar(repo servicoDomain.Repository, audit audit.Publisher) *Realizar {
	return &Realizar{repo: repo, audit: audit, now: time.Now}
}

// Execute: só o profissional do serviço pode concluí-lo.
func (uc *Realizar) Execute(ctx context.Context, userID, servicoID uint) (*models.Servico, error) {
	s, err := load(ctx, uc.repo, servicoID)
	if err != nil {
		return nil, err
	}
	if s.Profissional.UsuarioID != userID {
		return nil, ErrSemPermissao
	}

	from := servicoDomain.Status(s.Status)
	if err := servicoDomain.Realizar(s, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "servico_realizado",
		Entity:    "servico",
		EntityID:  &s.ID,
	})
	return s, nil
}

// ======================================================
// CANCELAR
// ======================================================

type Cancelar struct {
	repo  servicoDomain.Repository
	audit audit.Publisher
}

func NewCancelar(repo servicoDomain.Repository, audit audit.Publisher) *Cancelar {
	return &Cancelar{repo: repo, audit: audit}
}

// Execute: cliente ou profissional do serviço podem cancelar.
func (uc *Cancelar) Execute(ctx context.Context, userID, servicoID uint) (*models.Servico, error) {
	s, err := load(ctx, uc.repo, servicoID)
	if err != nil {
		return nil, err
	}
	if s.ClienteID != userID && s.Profissional.UsuarioID != userID {
		return nil, ErrSemPermissao
	}

	from := servicoDomain.Status(s.Status)
	if err := servicoDomain.Cancelar(s); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "servico_cancelado",
		Entity:    "servico",
		EntityID:  &s.ID,
	})
	return s, nil
}

func load(ctx context.Context, repo servicoDomain.Repository, id uint) (*models.Servico, error) {
	s, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrServicoNaoEncontrado
	}
	return s, err
}
