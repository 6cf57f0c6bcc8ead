package dto

import (
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type ServicoListDTO struct {
	ID              uint       `json:"id"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	DataAgendamento time.Time  `json:"data_agendamento"`
	DataRealizacao  *time.Time `json:"data_realizacao"`
	ProfissionalID  uint       `json:"profissional_id"`
	Profissional    string     `json:"profissional"`
	ClienteID       uint       `json:"cliente_id"`
	Cliente         string     `json:"cliente"`
}

func NewServicoListDTO(s models.Servico) ServicoListDTO {
	return ServicoListDTO{
		ID:              s.ID,
		Status:          s.Status,
		StatusLabel:     servico.Status(s.Status).Label(),
		DataAgendamento: s.DataAgendamento,
		DataRealizacao:  s.DataRealizacao,
		ProfissionalID:  s.ProfissionalID,
		Profissional:    s.Profissional.String(),
		ClienteID:       s.ClienteID,
		Cliente:         s.Cliente.FullName(),
	}
}

func NewServicoList(items []models.Servico) []ServicoListDTO {
	out := make([]ServicoListDTO, 0, len(items))
	for _, s := range items {
		out = append(out, NewServicoListDTO(s))
	}
	return out
}
