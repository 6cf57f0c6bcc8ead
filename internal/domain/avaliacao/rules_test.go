package avaliacao

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNota(t *testing.T) {
	assert.NoError(t, ValidateNota(1))
	assert.NoError(t, ValidateNota(5))
	assert.ErrorIs(t, ValidateNota(0), ErrNotaInvalida)
	assert.ErrorIs(t, ValidateNota(6), ErrNotaInvalida)
}

func TestValidateTitulo(t *testing.T) {
	assert.NoError(t, ValidateTitulo(""))
	assert.NoError(t, ValidateTitulo(strings.Repeat("á", 100)))
	assert.ErrorIs(t, ValidateTitulo(strings.Repeat("a", 101)), ErrTituloLongo)
}

func TestNormalizeTexto(t *testing.T) {
	txt, err := NormalizeTexto("  Ótimo atendimento \n")
	require.NoError(t, err)
	assert.Equal(t, "Ótimo atendimento", txt)

	_, err = NormalizeTexto("   ")
	assert.ErrorIs(t, err, ErrTextoVazio)
}

func TestParseRecomenda(t *testing.T) {
	assert.True(t, ParseRecomenda(""))
	assert.True(t, ParseRecomenda("true"))
	assert.False(t, ParseRecomenda("false"))
	assert.False(t, ParseRecomenda("on"))
}
