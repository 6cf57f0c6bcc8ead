package models

type Endereco struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CidadeID uint   `gorm:"not null" json:"cidade_id"`
	Cidade   Cidade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cidade"`

	Rua    *string `gorm:"size:100" json:"rua"`
	Numero *string `gorm:"size:10" json:"numero"`
	Bairro *string `gorm:"size:100" json:"bairro"`
	CEP    *string `gorm:"column:cep;size:8" json:"cep"`
}
