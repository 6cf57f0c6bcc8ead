package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

// --------------------------------------------------
// Unicidade
// --------------------------------------------------

func (r *UsuarioGormRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

func (r *UsuarioGormRepository) EmailExists(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("LOWER(email) = LOWER(?)", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *UsuarioGormRepository) CRMExists(ctx context.Context, crm int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profissional{}).
		Where("crm = ?", crm).
		Count(&count).Error
	return count > 0, err
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *UsuarioGormRepository) GetCidade(ctx context.Context, id uint) (*models.Cidade, error) {
	var cidade models.Cidade
	if err := r.db.WithContext(ctx).Preload("Estado").First(&cidade, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cidade, nil
}

func (r *UsuarioGormRepository) GetEspecialidade(ctx context.Context, id uint) (*models.Especialidade, error) {
	var esp models.Especialidade
	if err := r.db.WithContext(ctx).First(&esp, id).Error; err != nil {
		return nil, translate(err)
	}
	return &esp, nil
}

// --------------------------------------------------
// Cadastro
// --------------------------------------------------

func (r *UsuarioGormRepository) Create(
	ctx context.Context,
	u *models.Usuario,
	e *models.Endereco,
	p *models.Profissional,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e != nil {
			if err := tx.Omit("Cidade").Create(e).Error; err != nil {
				return err
			}
			u.EnderecoID = &e.ID
		}

		if err := tx.Omit("Endereco", "Profissional").Create(u).Error; err != nil {
			return err
		}

		if p != nil {
			p.UsuarioID = u.ID
			if err := tx.Omit("Usuario", "Especialidade", "Avaliacoes").Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *UsuarioGormRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Preload("Endereco.Cidade.Estado").
		Preload("Profissional.Especialidade").
		First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UsuarioGormRepository) GetByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Preload("Profissional").
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Edição
// --------------------------------------------------

func (r *UsuarioGormRepository) Update(ctx context.Context, u *models.Usuario, e *models.Endereco) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e != nil {
			if e.ID == 0 {
				if err := tx.Omit("Cidade").Create(e).Error; err != nil {
					return err
				}
				u.EnderecoID = &e.ID
			} else if err := tx.Omit("Cidade").Save(e).Error; err != nil {
				return err
			}
		}

		return tx.Model(u).
			Select("Email", "Telefone", "DataNascimento", "EnderecoID").
			Updates(u).Error
	})
}

func (r *UsuarioGormRepository) UpdateImagem(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Update("imagem_perfil", url).Error
}

func (r *UsuarioGormRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *UsuarioGormRepository) UpdateProfissional(
	ctx context.Context,
	p *models.Profissional,
	telefoneProfissional *bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).
			Select("Biografia", "PrecoServico", "EspecialidadeID").
			Updates(p).Error; err != nil {
			return err
		}

		if telefoneProfissional == nil {
			return nil
		}
		return tx.Model(&models.Usuario{}).
			Where("id = ?", p.UsuarioID).
			Update("telefone_profissional", *telefoneProfissional).Error
	})
}

func (r *UsuarioGormRepository) UpdateProfissionalImagem(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Profissional{}).
		Where("id = ?", id).
		Update("imagem", url).Error
}

// --------------------------------------------------
// Exclusão
// --------------------------------------------------

// DeleteCascade segue a ordem: serviços contratados, avaliações feitas,
// comentários escritos, endereço, perfil profissional e o usuário.
func (r *UsuarioGormRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.Usuario
		if err := tx.Preload("Profissional").First(&u, id).Error; err != nil {
			return translate(err)
		}

		clienteServicos := tx.Model(&models.Servico{}).Select("id").Where("cliente_id = ?", id)
		clienteAvaliacoes := tx.Model(&models.Avaliacao{}).Select("id").
			Where("cliente_id = ? OR servico_id IN (?)", id, clienteServicos)

		if err := tx.Where("avaliacao_id IN (?)", clienteAvaliacoes).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cliente_id = ? OR servico_id IN (?)", id, clienteServicos).Delete(&models.Avaliacao{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cliente_id = ?", id).Delete(&models.Servico{}).Error; err != nil {
			return err
		}
		if err := tx.Where("autor_id = ?", id).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}

		if u.EnderecoID != nil {
			if err := tx.Model(&u).Update("endereco_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Endereco{}, *u.EnderecoID).Error; err != nil {
				return err
			}
		}

		if u.Profissional != nil {
			profID := u.Profissional.ID
			profAvaliacoes := tx.Model(&models.Avaliacao{}).Select("id").Where("profissional_id = ?", profID)

			if err := tx.Where("avaliacao_id IN (?)", profAvaliacoes).Delete(&models.Comentario{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profissional_id = ?", profID).Delete(&models.Avaliacao{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profissional_id = ?", profID).Delete(&models.Servico{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Profissional{}, profID).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Usuario{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
