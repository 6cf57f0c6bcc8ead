package usuario

import (
	"context"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type Repository interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string, exceptID uint) (bool, error)
	CRMExists(ctx context.Context, crm int) (bool, error)

	GetCidade(ctx context.Context, id uint) (*models.Cidade, error)
	GetEspecialidade(ctx context.Context, id uint) (*models.Especialidade, error)

	// Create grava endereço, usuário e perfil profissional (os dois
	// opcionais) numa transação.
	Create(ctx context.Context, u *models.Usuario, e *models.Endereco, p *models.Profissional) error

	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*models.Usuario, error)

	// Update grava o usuário e, quando e != nil, cria ou atualiza o
	// endereço.
	Update(ctx context.Context, u *models.Usuario, e *models.Endereco) error
	UpdateImagem(ctx context.Context, id uint, url string) error
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error

	// UpdateProfissional grava o perfil e, quando telefoneProfissional != nil,
	// a flag do usuário na mesma transação.
	UpdateProfissional(ctx context.Context, p *models.Profissional, telefoneProfissional *bool) error
	UpdateProfissionalImagem(ctx context.Context, id uint, url string) error

	// DeleteCascade remove o usuário e tudo que depende dele.
	DeleteCascade(ctx context.Context, id uint) error
}
