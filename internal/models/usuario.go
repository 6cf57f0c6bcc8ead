package models

import (
	"strings"
	"time"
)

// Usuario é tanto o cliente quanto o dono de um perfil profissional.
type Usuario struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`

	FirstName    string `gorm:"size:150" json:"first_name"`
	LastName     string `gorm:"size:150" json:"last_name"`
	Email        string `gorm:"size:254;index" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Telefone             *string    `gorm:"size:15" json:"telefone"`
	TelefoneProfissional bool       `gorm:"default:false" json:"telefone_profissional"`
	DataNascimento       *time.Time `gorm:"type:date" json:"data_nascimento"`
	ImagemPerfil         *string    `gorm:"size:255" json:"imagem_perfil"`

	EnderecoID *uint     `json:"endereco_id"`
	Endereco   *Endereco `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"endereco,omitempty"`

	Profissional *Profissional `gorm:"foreignKey:UsuarioID" json:"profissional,omitempty"`

	IsStaff    bool       `gorm:"default:false" json:"is_staff"`
	IsActive   bool       `gorm:"not null" json:"is_active"`
	DateJoined time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}

func (Usuario) TableName() string {
	return "usuario"
}

// FullName devolve "nome sobrenome"; sem nome cadastrado cai no username.
func (u Usuario) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// Role é o papel gravado no token.
func (u Usuario) Role() string {
	switch {
	case u.IsStaff:
		return RoleAdmin
	case u.Profissional != nil:
		return RoleProfissional
	default:
		return RoleCliente
	}
}

const (
	RoleCliente      = "cliente"
	RoleProfissional = "profissional"
	RoleAdmin        = "admin"
)
