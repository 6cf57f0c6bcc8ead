package httperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError junta os erros de formulário por campo; a chave "__all__"
// guarda os erros que não pertencem a um campo só.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation_failed: " + strings.Join(keys, ",")
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// OrNil devolve nil quando nenhum campo falhou.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func Validation(c *gin.Context, ve *ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error_code": "validation_failed",
		"message":    "Verifique os campos informados.",
		"fields":     ve.Fields,
	})
}
