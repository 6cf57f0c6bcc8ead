package models

type Estado struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:100;uniqueIndex;not null" json:"nome"`
	Sigla string `gorm:"size:2;uniqueIndex;not null" json:"sigla"`
}
