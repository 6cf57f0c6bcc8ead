package avaliacao

import (
	"context"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type Repository interface {
	GetProfissional(ctx context.Context, id uint) (*models.Profissional, error)
	GetUsuario(ctx context.Context, id uint) (*models.Usuario, error)

	ExistsForCliente(ctx context.Context, profissionalID, clienteID uint) (bool, error)

	// FindServicoSemAvaliacao devolve o serviço REALIZADO mais antigo do
	// cliente com o profissional que ainda não foi avaliado, ou nil.
	FindServicoSemAvaliacao(ctx context.Context, profissionalID, clienteID uint) (*models.Servico, error)

	// CreateWithServico grava o serviço (quando novo) e a avaliação na
	// mesma transação.
	CreateWithServico(ctx context.Context, s *models.Servico, a *models.Avaliacao) error

	Get(ctx context.Context, id uint) (*models.Avaliacao, error)

	// DeleteWithServico remove o serviço, a avaliação e as respostas.
	DeleteWithServico(ctx context.Context, a *models.Avaliacao) error

	CreateComentario(ctx context.Context, c *models.Comentario) error
	GetComentario(ctx context.Context, id uint) (*models.Comentario, error)
	DeleteComentario(ctx context.Context, id uint) error
}
