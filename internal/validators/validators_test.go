package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCEP(t *testing.T) {
	assert.Equal(t, "01310100", NormalizeCEP("01310-100"))
	assert.Equal(t, "01310100", NormalizeCEP(" 01.310-100 "))
	assert.Equal(t, "", NormalizeCEP("abc"))
}

func TestIsCEPValid(t *testing.T) {
	assert.True(t, IsCEPValid("01310100"))
	assert.True(t, IsCEPValid("123"))
	assert.False(t, IsCEPValid(""))
	assert.False(t, IsCEPValid("013101000"))
	assert.False(t, IsCEPValid("0131A100"))
}

func TestIsUsernameValid(t *testing.T) {
	assert.True(t, IsUsernameValid("dra.ana_souza"))
	assert.True(t, IsUsernameValid("joão+1@clinica"))
	assert.False(t, IsUsernameValid("com espaço"))
	assert.False(t, IsUsernameValid(""))
}

func TestIsEmailSyntaxValid(t *testing.T) {
	assert.True(t, IsEmailSyntaxValid("ana@clinica.com.br"))
	assert.False(t, IsEmailSyntaxValid("ana@localhost"))
	assert.False(t, IsEmailSyntaxValid("Ana <ana@clinica.com>"))
	assert.False(t, IsEmailSyntaxValid("ana"))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("semarroba"))
	assert.False(t, IsEmailDomainValid("termina@"))
}

func TestNotaValida(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5} {
		assert.True(t, NotaValida(n))
	}
	assert.False(t, NotaValida(0))
	assert.False(t, NotaValida(6))
}

func TestMaxLen_CountsRunes(t *testing.T) {
	assert.True(t, MaxLen("São", 3))
	assert.False(t, MaxLen("Paraná", 5))
}
