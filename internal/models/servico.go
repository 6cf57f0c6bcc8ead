package models

import "time"

type Servico struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfissionalID uint         `gorm:"index;not null" json:"profissional_id"`
	Profissional   Profissional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profissional"`

	ClienteID uint    `gorm:"index;not null" json:"cliente_id"`
	Cliente   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente"`

	DataAgendamento time.Time  `gorm:"not null" json:"data_agendamento"`
	DataRealizacao  *time.Time `json:"data_realizacao"`

	Status string `gorm:"size:20;default:'AGENDADO'" json:"status"`

	Avaliacao *Avaliacao `gorm:"foreignKey:ServicoID" json:"avaliacao,omitempty"`
}
