package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Profissional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UsuarioID uint    `gorm:"uniqueIndex;not null" json:"usuario_id"`
	Usuario   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usuario"`

	EspecialidadeID *uint          `json:"especialidade_id"`
	Especialidade   *Especialidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"especialidade,omitempty"`

	Imagem       *string          `gorm:"size:255" json:"imagem"`
	CRM          int              `gorm:"column:crm;uniqueIndex;not null" json:"crm"`
	Biografia    *string          `gorm:"type:text" json:"biografia"`
	PrecoServico *decimal.Decimal `gorm:"type:numeric(10,2)" json:"preco_servico"`

	Avaliacoes []Avaliacao `gorm:"foreignKey:ProfissionalID" json:"avaliacoes,omitempty"`
}

func (Profissional) TableName() string {
	return "profissionais"
}

func (p Profissional) String() string {
	if p.Especialidade != nil {
		return fmt.Sprintf("%s - %s", p.Usuario.Username, p.Especialidade.Nome)
	}
	return p.Usuario.Username
}
