package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("criar avaliação: %w", ErrBusiness("ja_avaliado"))

	assert.True(t, IsBusiness(err, "ja_avaliado"))
	assert.False(t, IsBusiness(err, "outro"))
	assert.False(t, IsBusiness(fmt.Errorf("plain"), "ja_avaliado"))
}

func TestAsBusiness_KeepsMessage(t *testing.T) {
	be, ok := AsBusiness(ErrBusinessMsg("senhas_diferentes", "As senhas não coincidem."))

	assert.True(t, ok)
	assert.Equal(t, "senhas_diferentes", be.Code)
	assert.Equal(t, "As senhas não coincidem.", be.Message)
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_usuario_username"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "idx_usuario_username"))
	assert.False(t, IsUniqueViolation(err, "idx_profissionais_crm"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
}

func TestValidationError(t *testing.T) {
	ve := &ValidationError{}
	assert.NoError(t, ve.OrNil())

	ve.Add("email", "Este e-mail já está cadastrado.")
	ve.Add("email", "segunda mensagem ignorada")
	ve.Add("crm", "O CRM informado já está em uso.")

	err := fmt.Errorf("cadastro: %w", ve.OrNil())
	got, ok := AsValidation(err)
	assert.True(t, ok)
	assert.True(t, got.Has("email"))
	assert.Equal(t, "Este e-mail já está cadastrado.", got.Fields["email"])
	assert.Equal(t, "validation_failed: crm,email", got.Error())
}
