package profissional

import (
	"context"

	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

// Ordem aceita na listagem.
type Ordem string

const (
	OrdemNome      Ordem = "nome"
	OrdemNomeDesc  Ordem = "-nome"
	OrdemPreco     Ordem = "preco"
	OrdemPrecoDesc Ordem = "-preco"
	OrdemNota      Ordem = "nota"
)

// ParseOrdem cai em OrdemNome para valores desconhecidos.
func ParseOrdem(raw string) Ordem {
	switch o := Ordem(raw); o {
	case OrdemNome, OrdemNomeDesc, OrdemPreco, OrdemPrecoDesc, OrdemNota:
		return o
	}
	return OrdemNome
}

type Filter struct {
	Nome            string
	EspecialidadeID *uint
	Ordem           Ordem
}

type Repository interface {
	Count(ctx context.Context, f Filter) (int64, error)
	List(ctx context.Context, f Filter, offset, limit int) ([]models.Profissional, error)

	// NotasMedias devolve a média de notas por profissional (só quem tem
	// avaliação aparece no mapa).
	NotasMedias(ctx context.Context, ids []uint) (map[uint]float64, error)

	GetDetalhes(ctx context.Context, id uint) (*models.Profissional, error)
	GetByID(ctx context.Context, id uint) (*models.Profissional, error)
}
