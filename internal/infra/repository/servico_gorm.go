package repository

import (
	"context"

	"gorm.io/gorm"

	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type ServicoGormRepository struct {
	db *gorm.DB
}

func NewServicoGormRepository(db *gorm.DB) *ServicoGormRepository {
	return &ServicoGormRepository{db: db}
}

func (r *ServicoGormRepository) GetProfissional(ctx context.Context, id uint) (*models.Profissional, error) {
	var p models.Profissional
	if err := r.db.WithContext(ctx).Preload("Usuario").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ServicoGormRepository) GetProfissionalByUsuario(ctx context.Context, usuarioID uint) (*models.Profissional, error) {
	var p models.Profissional
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ServicoGormRepository) Create(ctx context.Context, s *models.Servico) error {
	return r.db.WithContext(ctx).Omit("Profissional", "Cliente", "Avaliacao").Create(s).Error
}

func (r *ServicoGormRepository) Get(ctx context.Context, id uint) (*models.Servico, error) {
	var s models.Servico
	if err := r.db.WithContext(ctx).
		Preload("Profissional.Usuario").
		Preload("Cliente").
		First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ServicoGormRepository) Update(ctx context.Context, s *models.Servico, from servicoDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(s).
		Where("status = ?", string(from)).
		Select("Status", "DataRealizacao").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return servicoDomain.ErrTransicaoInvalida
	}
	return nil
}

func (r *ServicoGormRepository) ListByCliente(
	ctx context.Context,
	clienteID uint,
	status servicoDomain.Status,
) ([]models.Servico, error) {
	return r.list(ctx, "cliente_id = ?", clienteID, status)
}

func (r *ServicoGormRepository) ListByProfissional(
	ctx context.Context,
	profissionalID uint,
	status servicoDomain.Status,
) ([]models.Servico, error) {
	return r.list(ctx, "profissional_id = ?", profissionalID, status)
}

func (r *ServicoGormRepository) list(
	ctx context.Context,
	where string,
	id uint,
	status servicoDomain.Status,
) ([]models.Servico, error) {

	q := r.db.WithContext(ctx).
		Preload("Profissional.Usuario").
		Preload("Profissional.Especialidade").
		Preload("Cliente").
		Where(where, id)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var out []models.Servico
	err := q.Order("data_agendamento DESC").Find(&out).Error
	return out, err
}
