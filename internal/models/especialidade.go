package models

type Especialidade struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Descricao *string `gorm:"type:text" json:"descricao"`
}
