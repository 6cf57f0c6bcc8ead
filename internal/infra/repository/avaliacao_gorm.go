package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	avaliacaoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/avaliacao"
	"github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type AvaliacaoGormRepository struct {
	db *gorm.DB
}

func NewAvaliacaoGormRepository(db *gorm.DB) *AvaliacaoGormRepository {
	return &AvaliacaoGormRepository{db: db}
}

func (r *AvaliacaoGormRepository) GetProfissional(ctx context.Context, id uint) (*models.Profissional, error) {
	var p models.Profissional
	if err := r.db.WithContext(ctx).Preload("Usuario").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *AvaliacaoGormRepository) GetUsuario(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *AvaliacaoGormRepository) ExistsForCliente(ctx context.Context, profissionalID, clienteID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Avaliacao{}).
		Where("profissional_id = ? AND cliente_id = ?", profissionalID, clienteID).
		Count(&count).Error
	return count > 0, err
}

func (r *AvaliacaoGormRepository) FindServicoSemAvaliacao(
	ctx context.Context,
	profissionalID, clienteID uint,
) (*models.Servico, error) {

	var s models.Servico
	err := r.db.WithContext(ctx).
		Where("profissional_id = ? AND cliente_id = ? AND status = ?",
			profissionalID, clienteID, string(servico.StatusRealizado)).
		Where("NOT EXISTS (SELECT 1 FROM avaliacoes a WHERE a.servico_id = servicos.id)").
		Order("data_realizacao ASC NULLS LAST").
		Order("id ASC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AvaliacaoGormRepository) CreateWithServico(ctx context.Context, s *models.Servico, a *models.Avaliacao) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.ID == 0 {
			if err := tx.Omit("Profissional", "Cliente", "Avaliacao").Create(s).Error; err != nil {
				return err
			}
		}

		a.ServicoID = s.ID
		return tx.Omit("Profissional", "Cliente", "Servico", "Respostas").Create(a).Error
	})

	// corrida entre duas avaliações do mesmo cliente
	if httperr.IsUniqueViolation(err, "") {
		return avaliacaoDomain.ErrJaAvaliado
	}
	return err
}

func (r *AvaliacaoGormRepository) Get(ctx context.Context, id uint) (*models.Avaliacao, error) {
	var a models.Avaliacao
	if err := r.db.WithContext(ctx).Preload("Cliente").First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AvaliacaoGormRepository) DeleteWithServico(ctx context.Context, a *models.Avaliacao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("avaliacao_id = ?", a.ID).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Avaliacao{}, a.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Delete(&models.Servico{}, a.ServicoID).Error
	})
}

func (r *AvaliacaoGormRepository) CreateComentario(ctx context.Context, c *models.Comentario) error {
	return r.db.WithContext(ctx).Omit("Avaliacao", "Autor").Create(c).Error
}

func (r *AvaliacaoGormRepository) GetComentario(ctx context.Context, id uint) (*models.Comentario, error) {
	var c models.Comentario
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *AvaliacaoGormRepository) DeleteComentario(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comentario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
