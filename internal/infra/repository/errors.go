package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
