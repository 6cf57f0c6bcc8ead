package models

import "time"

type Avaliacao struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfissionalID uint          `gorm:"uniqueIndex:idx_avaliacao_profissional_cliente;not null" json:"profissional_id"`
	Profissional   *Profissional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profissional,omitempty"`

	ClienteID uint    `gorm:"index;uniqueIndex:idx_avaliacao_profissional_cliente;not null" json:"cliente_id"`
	Cliente   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente"`

	ServicoID uint     `gorm:"uniqueIndex;not null" json:"servico_id"`
	Servico   *Servico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Nota          int       `gorm:"not null;check:nota_range,nota >= 1 AND nota <= 5" json:"nota"`
	Titulo        string    `gorm:"size:100;default:''" json:"titulo"`
	Comentario    *string   `gorm:"type:text" json:"comentario"`
	DataAvaliacao time.Time `gorm:"autoCreateTime" json:"data_avaliacao"`
	Recomenda     bool      `gorm:"not null" json:"recomenda"`

	Respostas []Comentario `gorm:"foreignKey:AvaliacaoID" json:"respostas"`
}

func (Avaliacao) TableName() string {
	return "avaliacoes"
}
