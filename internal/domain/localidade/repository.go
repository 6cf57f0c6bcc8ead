package localidade

import (
	"context"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type Repository interface {
	ListEstados(ctx context.Context) ([]models.Estado, error)
	GetEstado(ctx context.Context, id uint) (*models.Estado, error)
	CreateEstado(ctx context.Context, e *models.Estado) error
	DeleteEstado(ctx context.Context, id uint) error

	ListCidades(ctx context.Context, estadoID uint) ([]models.Cidade, error)
	CreateCidade(ctx context.Context, c *models.Cidade) error
	DeleteCidade(ctx context.Context, id uint) (estadoID *uint, err error)

	ListEspecialidades(ctx context.Context) ([]models.Especialidade, error)
	CreateEspecialidade(ctx context.Context, e *models.Especialidade) error
	DeleteEspecialidade(ctx context.Context, id uint) error
}
