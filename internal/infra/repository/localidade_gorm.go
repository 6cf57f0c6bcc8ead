package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type LocalidadeGormRepository struct {
	db *gorm.DB
}

func NewLocalidadeGormRepository(db *gorm.DB) *LocalidadeGormRepository {
	return &LocalidadeGormRepository{db: db}
}

// --------------------------------------------------
// Estado
// --------------------------------------------------

func (r *LocalidadeGormRepository) ListEstados(ctx context.Context) ([]models.Estado, error) {
	var out []models.Estado
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&out).Error
	return out, err
}

func (r *LocalidadeGormRepository) GetEstado(ctx context.Context, id uint) (*models.Estado, error) {
	var e models.Estado
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *LocalidadeGormRepository) CreateEstado(ctx context.Context, e *models.Estado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LocalidadeGormRepository) DeleteEstado(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Estado{}, id)
}

// --------------------------------------------------
// Cidade
// --------------------------------------------------

func (r *LocalidadeGormRepository) ListCidades(ctx context.Context, estadoID uint) ([]models.Cidade, error) {
	var out []models.Cidade
	err := r.db.WithContext(ctx).
		Select("id", "nome", "estado_id").
		Where("estado_id = ?", estadoID).
		Order("nome ASC").
		Find(&out).Error
	return out, err
}

func (r *LocalidadeGormRepository) CreateCidade(ctx context.Context, c *models.Cidade) error {
	return r.db.WithContext(ctx).Omit("Estado").Create(c).Error
}

func (r *LocalidadeGormRepository) DeleteCidade(ctx context.Context, id uint) (*uint, error) {
	var c models.Cidade
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := deleteByID(r.db.WithContext(ctx), &models.Cidade{}, id); err != nil {
		return nil, err
	}
	return c.EstadoID, nil
}

// --------------------------------------------------
// Especialidade
// --------------------------------------------------

func (r *LocalidadeGormRepository) ListEspecialidades(ctx context.Context) ([]models.Especialidade, error) {
	var out []models.Especialidade
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&out).Error
	return out, err
}

func (r *LocalidadeGormRepository) CreateEspecialidade(ctx context.Context, e *models.Especialidade) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LocalidadeGormRepository) DeleteEspecialidade(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Especialidade{}, id)
}

func deleteByID(db *gorm.DB, model any, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
