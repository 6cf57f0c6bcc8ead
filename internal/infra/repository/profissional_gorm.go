package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/domain/profissional"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type ProfissionalGormRepository struct {
	db *gorm.DB
}

func NewProfissionalGormRepository(db *gorm.DB) *ProfissionalGormRepository {
	return &ProfissionalGormRepository{db: db}
}

func (r *ProfissionalGormRepository) filtered(ctx context.Context, f profissional.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Profissional{}).
		Joins("JOIN usuario ON usuario.id = profissionais.usuario_id")

	if nome := strings.ToLower(strings.TrimSpace(f.Nome)); nome != "" {
		q = q.Where("LOWER(usuario.username) LIKE ?", "%"+escapeLike(nome)+"%")
	}
	if f.EspecialidadeID != nil {
		q = q.Where("profissionais.especialidade_id = ?", *f.EspecialidadeID)
	}
	return q
}

func (r *ProfissionalGormRepository) Count(ctx context.Context, f profissional.Filter) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *ProfissionalGormRepository) List(
	ctx context.Context,
	f profissional.Filter,
	offset, limit int,
) ([]models.Profissional, error) {

	q := r.filtered(ctx, f).
		Preload("Usuario.Endereco.Cidade.Estado").
		Preload("Especialidade")

	switch f.Ordem {
	case profissional.OrdemNomeDesc:
		q = q.Order("usuario.username DESC")
	case profissional.OrdemPreco:
		q = q.Order("profissionais.preco_servico ASC NULLS LAST").Order("usuario.username ASC")
	case profissional.OrdemPrecoDesc:
		q = q.Order("profissionais.preco_servico DESC NULLS LAST").Order("usuario.username ASC")
	case profissional.OrdemNota:
		q = q.Order("(SELECT AVG(a.nota) FROM avaliacoes a WHERE a.profissional_id = profissionais.id) DESC NULLS LAST").
			Order("usuario.username ASC")
	default:
		q = q.Order("usuario.username ASC")
	}

	var out []models.Profissional
	if err := q.
		Order("profissionais.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProfissionalGormRepository) NotasMedias(ctx context.Context, ids []uint) (map[uint]float64, error) {
	out := make(map[uint]float64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		ProfissionalID uint
		Media          float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Avaliacao{}).
		Select("profissional_id, AVG(nota) AS media").
		Where("profissional_id IN ?", ids).
		Group("profissional_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ProfissionalID] = row.Media
	}
	return out, nil
}

func (r *ProfissionalGormRepository) GetDetalhes(ctx context.Context, id uint) (*models.Profissional, error) {
	var p models.Profissional
	if err := r.db.WithContext(ctx).
		Preload("Usuario.Endereco.Cidade.Estado").
		Preload("Especialidade").
		Preload("Avaliacoes", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_avaliacao DESC").Order("id DESC")
		}).
		Preload("Avaliacoes.Cliente").
		Preload("Avaliacoes.Respostas", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_comentario ASC").Order("id ASC")
		}).
		Preload("Avaliacoes.Respostas.Autor").
		First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfissionalGormRepository) GetByID(ctx context.Context, id uint) (*models.Profissional, error) {
	var p models.Profissional
	if err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Especialidade").
		First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
