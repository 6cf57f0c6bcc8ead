package servico

import "github.com/BruksfildServices01/profissionais-api/internal/httperr"

type Status string

const (
	StatusAgendado  Status = "AGENDADO"
	StatusRealizado Status = "REALIZADO"
	StatusCancelado Status = "CANCELADO"
)

func (s Status) Label() string {
	switch s {
	case StatusAgendado:
		return "Agendado"
	case StatusRealizado:
		return "Realizado"
	case StatusCancelado:
		return "Cancelado"
	}
	return string(s)
}

// ErrTransicaoInvalida cobre transição fora de AGENDADO e a perda da
// corrida para outra transição concorrente.
var ErrTransicaoInvalida = httperr.ErrBusiness("invalid_state")

// ParseStatus aceita só os valores exatos usados no filtro ?status=.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusAgendado, StatusRealizado, StatusCancelado:
		return Status(s), true
	}
	return "", false
}

// CanCancelar: só serviços agendados podem ser cancelados.
func CanCancelar(current Status) error {
	if current != StatusAgendado {
		return ErrTransicaoInvalida
	}
	return nil
}

// CanRealizar: só serviços agendados podem ser concluídos.
func CanRealizar(current Status) error {
	if current != StatusAgendado {
		return ErrTransicaoInvalida
	}
	return nil
}

func InitialStatus() Status {
	return StatusAgendado
}
