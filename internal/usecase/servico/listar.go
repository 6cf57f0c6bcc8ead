package servico

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type ListarOutput struct {
	ComoCliente      []models.Servico
	ComoProfissional []models.Servico
}

type Listar struct {
	repo servicoDomain.Repository
}

func NewListar(repo servicoDomain.Repository) *Listar {
	return &Listar{repo: repo}
}

// Execute lista os serviços do usuário nos dois papéis; status vazio
// não filtra.
func (uc *Listar) Execute(ctx context.Context, userID uint, status servicoDomain.Status) (*ListarOutput, error) {
	comoCliente, err := uc.repo.ListByCliente(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	out := &ListarOutput{ComoCliente: comoCliente}

	p, err := uc.repo.GetProfissionalByUsuario(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	out.ComoProfissional, err = uc.repo.ListByProfissional(ctx, p.ID, status)
	if err != nil {
		return nil, err
	}
	return out, nil
}
