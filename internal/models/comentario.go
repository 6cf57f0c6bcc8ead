package models

import "time"

type Comentario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AvaliacaoID uint       `gorm:"index;not null" json:"avaliacao_id"`
	Avaliacao   *Avaliacao `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AutorID uint    `gorm:"index;not null" json:"autor_id"`
	Autor   Usuario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"autor"`

	Texto          string    `gorm:"type:text;not null" json:"texto"`
	DataComentario time.Time `gorm:"autoCreateTime" json:"data_comentario"`
}
