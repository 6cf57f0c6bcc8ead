package servico

import (
	"context"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type Repository interface {
	GetProfissional(ctx context.Context, id uint) (*models.Profissional, error)
	GetProfissionalByUsuario(ctx context.Context, usuarioID uint) (*models.Profissional, error)

	Create(ctx context.Context, s *models.Servico) error
	Get(ctx context.Context, id uint) (*models.Servico, error)
	// Update grava status e data de realização só se o status no banco
	// ainda for from; caso contrário devolve ErrTransicaoInvalida.
	Update(ctx context.Context, s *models.Servico, from Status) error

	// status vazio lista todos.
	ListByCliente(ctx context.Context, clienteID uint, status Status) ([]models.Servico, error)
	ListByProfissional(ctx context.Context, profissionalID uint, status Status) ([]models.Servico, error)
}
