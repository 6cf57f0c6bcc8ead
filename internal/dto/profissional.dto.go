package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
	"github.com/BruksfildServices01/profissionais-api/internal/timezone"
)

type ProfissionalListDTO struct {
	ID            uint                  `json:"id"`
	UsuarioID     uint                  `json:"usuario_id"`
	Username      string                `json:"username"`
	Nome          string                `json:"nome"`
	Especialidade *models.Especialidade `json:"especialidade"`
	Imagem        *string               `json:"imagem"`
	CRM           int                   `json:"crm"`
	Biografia     *string               `json:"biografia"`
	PrecoServico  *decimal.Decimal      `json:"preco_servico"`
	Cidade        string                `json:"cidade,omitempty"`
	NotaMedia     *float64              `json:"nota_media"`
}

func NewProfissionalListDTO(p models.Profissional, notaMedia *float64) ProfissionalListDTO {
	out := ProfissionalListDTO{
		ID:            p.ID,
		UsuarioID:     p.UsuarioID,
		Username:      p.Usuario.Username,
		Nome:          p.Usuario.FullName(),
		Especialidade: p.Especialidade,
		Imagem:        p.Imagem,
		CRM:           p.CRM,
		Biografia:     p.Biografia,
		PrecoServico:  p.PrecoServico,
		NotaMedia:     notaMedia,
	}
	if p.Usuario.Endereco != nil {
		out.Cidade = p.Usuario.Endereco.Cidade.String()
	}
	return out
}

type ProfissionalDetalheDTO struct {
	ProfissionalListDTO

	Email      string           `json:"email"`
	Telefone   *string          `json:"telefone,omitempty"`
	Endereco   *models.Endereco `json:"endereco,omitempty"`
	Avaliacoes []AvaliacaoDTO   `json:"avaliacoes"`
}

// NewProfissionalDetalheDTO espera as avaliações já ordenadas; o telefone
// só aparece quando o profissional o marcou como público.
func NewProfissionalDetalheDTO(p models.Profissional, notaMedia *float64) ProfissionalDetalheDTO {
	out := ProfissionalDetalheDTO{
		ProfissionalListDTO: NewProfissionalListDTO(p, notaMedia),
		Email:               p.Usuario.Email,
		Endereco:            p.Usuario.Endereco,
		Avaliacoes:          make([]AvaliacaoDTO, 0, len(p.Avaliacoes)),
	}
	if p.Usuario.TelefoneProfissional {
		out.Telefone = p.Usuario.Telefone
	}
	for _, a := range p.Avaliacoes {
		out.Avaliacoes = append(out.Avaliacoes, NewAvaliacaoDTO(a))
	}
	return out
}

type AvaliacaoDTO struct {
	ID            uint            `json:"id"`
	AutorID       uint            `json:"autor_id"`
	Autor         string          `json:"autor"`
	Nota          int             `json:"nota"`
	Titulo        string          `json:"titulo"`
	Comentario    *string         `json:"comentario"`
	Data          string          `json:"data"`
	DataAvaliacao time.Time       `json:"data_avaliacao"`
	Recomenda     bool            `json:"recomenda"`
	Respostas     []ComentarioDTO `json:"respostas"`
}

func NewAvaliacaoDTO(a models.Avaliacao) AvaliacaoDTO {
	out := AvaliacaoDTO{
		ID:            a.ID,
		AutorID:       a.ClienteID,
		Autor:         a.Cliente.Username,
		Nota:          a.Nota,
		Titulo:        a.Titulo,
		Comentario:    a.Comentario,
		Data:          timezone.FormatDateBR(a.DataAvaliacao),
		DataAvaliacao: a.DataAvaliacao,
		Recomenda:     a.Recomenda,
		Respostas:     make([]ComentarioDTO, 0, len(a.Respostas)),
	}
	for _, c := range a.Respostas {
		out.Respostas = append(out.Respostas, NewComentarioDTO(c))
	}
	return out
}

type ComentarioDTO struct {
	ID      uint   `json:"id"`
	AutorID uint   `json:"autor_id"`
	Autor   string `json:"autor"`
	Texto   string `json:"texto"`
	Data    string `json:"data"`
}

func NewComentarioDTO(c models.Comentario) ComentarioDTO {
	return ComentarioDTO{
		ID:      c.ID,
		AutorID: c.AutorID,
		Autor:   c.Autor.Username,
		Texto:   c.Texto,
		Data:    timezone.FormatDateBR(c.DataComentario),
	}
}
