package models

import "fmt"

type Cidade struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Nome     string  `gorm:"size:100;not null;uniqueIndex:idx_cidade_estado" json:"nome"`
	EstadoID *uint   `gorm:"uniqueIndex:idx_cidade_estado" json:"estado_id"`
	Estado   *Estado `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"estado,omitempty"`
}

func (c Cidade) String() string {
	if c.Estado == nil {
		return c.Nome
	}
	return fmt.Sprintf("%s - %s", c.Nome, c.Estado.Sigla)
}
