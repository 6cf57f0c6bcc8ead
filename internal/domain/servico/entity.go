package servico

import (
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

func Cancelar(s *models.Servico) error {
	if err := CanCancelar(Status(s.Status)); err != nil {
		return err
	}

	s.Status = string(StatusCancelado)
	return nil
}

func Realizar(s *models.Servico, now time.Time) error {
	if err := CanRealizar(Status(s.Status)); err != nil {
		return err
	}

	s.Status = string(StatusRealizado)
	s.DataRealizacao = &now
	return nil
}

// NovoRealizado é o serviço criado junto com uma avaliação quando o
// cliente ainda não tem atendimento concluído com o profissional.
func NovoRealizado(profissionalID, clienteID uint, now time.Time) *models.Servico {
	return &models.Servico{
		ProfissionalID:  profissionalID,
		ClienteID:       clienteID,
		DataAgendamento: now,
		DataRealizacao:  &now,
		Status:          string(StatusRealizado),
	}
}
