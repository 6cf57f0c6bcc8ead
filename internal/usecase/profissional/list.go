package profissional

import (
	"context"

	profissionalDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/profissional"
	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/paginator"
)

// PerPage é o tamanho fixo da página na listagem pública.
const PerPage = 4

type ListInput struct {
	Nome            string
	EspecialidadeID *uint
	Ordem           string
	Page            string
}

type ListOutput struct {
	Items []dto.ProfissionalListDTO
	Page  paginator.Page
}

type ListProfissionais struct {
	repo profissionalDomain.Repository
}

func NewListProfissionais(repo profissionalDomain.Repository) *ListProfissionais {
	return &ListProfissionais{repo: repo}
}

func (uc *ListProfissionais) Execute(ctx context.Context, in ListInput) (*ListOutput, error) {
	filter := profissionalDomain.Filter{
		Nome:            in.Nome,
		EspecialidadeID: in.EspecialidadeID,
		Ordem:           profissionalDomain.ParseOrdem(in.Ordem),
	}

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := paginator.Resolve(in.Page, PerPage, total)

	items, err := uc.repo.List(ctx, filter, page.Offset(), page.PerPage)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	medias, err := uc.repo.NotasMedias(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := &ListOutput{
		Items: make([]dto.ProfissionalListDTO, 0, len(items)),
		Page:  page,
	}
	for _, p := range items {
		var media *float64
		if m, ok := medias[p.ID]; ok {
			media = &m
		}
		out.Items = append(out.Items, dto.NewProfissionalListDTO(p, media))
	}
	return out, nil
}
