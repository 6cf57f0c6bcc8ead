package avaliacao

import (
	"strings"

	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/validators"
)

var (
	ErrJaAvaliado        = httperr.ErrBusinessMsg("ja_avaliado", "Você já avaliou este profissional")
	ErrNotaInvalida      = httperr.ErrBusinessMsg("nota_invalida", "A nota deve estar entre 1 e 5.")
	ErrTituloLongo       = httperr.ErrBusinessMsg("titulo_muito_longo", "O título deve ter no máximo 100 caracteres.")
	ErrAutoAvaliacao     = httperr.ErrBusinessMsg("auto_avaliacao", "Você não pode avaliar o próprio perfil.")
	ErrTextoVazio        = httperr.ErrBusinessMsg("texto_obrigatorio", "O comentário não pode ser vazio.")
	ErrSemPermissao      = httperr.ErrBusinessMsg("sem_permissao", "Você não tem permissão para excluir esta avaliação")
	ErrComentarioDeOutro = httperr.ErrBusinessMsg("sem_permissao", "Você não tem permissão para excluir este comentário")
)

// ValidateNota aceita de 1 a 5.
func ValidateNota(nota int) error {
	if !validators.NotaValida(nota) {
		return ErrNotaInvalida
	}
	return nil
}

func ValidateTitulo(titulo string) error {
	if !validators.MaxLen(titulo, validators.MaxTitulo) {
		return ErrTituloLongo
	}
	return nil
}

func NormalizeTexto(texto string) (string, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return "", ErrTextoVazio
	}
	return texto, nil
}

// ParseRecomenda segue o formulário: só "true" (ou vazio) recomenda.
func ParseRecomenda(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || raw == "true"
}
