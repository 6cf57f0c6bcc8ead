package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxCEP      = 8
	MaxTelefone = 15
	MaxRua      = 100
	MaxNumero   = 10
	MaxBairro   = 100
	MaxUsername = 150
	MaxNome     = 150
	MaxTitulo   = 100
)

// NormalizeCEP remove pontuação ("01310-100" -> "01310100").
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsCEPValid(cep string) bool {
	if cep == "" || len(cep) > MaxCEP {
		return false
	}
	for _, r := range cep {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func MaxLen(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// IsUsernameValid segue as regras do cadastro: letras, dígitos e @.+-_
func IsUsernameValid(username string) bool {
	if username == "" || !MaxLen(username, MaxUsername) {
		return false
	}
	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		if !strings.ContainsRune("@.+-_", r) {
			return false
		}
	}
	return true
}

func NotaValida(nota int) bool {
	return nota >= 1 && nota <= 5
}
