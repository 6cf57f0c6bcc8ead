package profissional

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	profissionalDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/profissional"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type fakeRepo struct {
	items  []models.Profissional
	notas  map[uint]float64
	filter profissionalDomain.Filter
}

func (f *fakeRepo) matching(flt profissionalDomain.Filter) []models.Profissional {
	var out []models.Profissional
	for _, p := range f.items {
		if flt.Nome != "" && !strings.Contains(strings.ToLower(p.Usuario.Username), strings.ToLower(flt.Nome)) {
			continue
		}
		if flt.EspecialidadeID != nil && (p.EspecialidadeID == nil || *p.EspecialidadeID != *flt.EspecialidadeID) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Usuario.Username < out[j].Usuario.Username })
	return out
}

func (f *fakeRepo) Count(_ context.Context, flt profissionalDomain.Filter) (int64, error) {
	return int64(len(f.matching(flt))), nil
}

func (f *fakeRepo) List(_ context.Context, flt profissionalDomain.Filter, offset, limit int) ([]models.Profissional, error) {
	f.filter = flt
	all := f.matching(flt)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeRepo) NotasMedias(_ context.Context, ids []uint) (map[uint]float64, error) {
	out := map[uint]float64{}
	for _, id := range ids {
		if n, ok := f.notas[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (f *fakeRepo) GetDetalhes(_ context.Context, id uint) (*models.Profissional, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Profissional, error) {
	for _, p := range f.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func seed() *fakeRepo {
	cardio := uint(1)
	names := []string{"ana", "bruno", "carla", "daniel", "eduarda", "fabio"}
	repo := &fakeRepo{notas: map[uint]float64{1: 4.5}}
	for i, n := range names {
		p := models.Profissional{
			ID:      uint(i + 1),
			CRM:     1000 + i,
			Usuario: models.Usuario{Username: n, FirstName: strings.ToUpper(n[:1]) + n[1:], Email: n + "@clinica.com"},
		}
		if i%2 == 0 {
			p.EspecialidadeID = &cardio
		}
		repo.items = append(repo.items, p)
	}
	return repo
}

func TestListProfissionais_Pagination(t *testing.T) {
	uc := NewListProfissionais(seed())

	out, err := uc.Execute(context.Background(), ListInput{Page: "1"})
	require.NoError(t, err)
	assert.Len(t, out.Items, PerPage)
	assert.Equal(t, 2, out.Page.NumPages)
	assert.True(t, out.Page.HasNext())
	require.NotNil(t, out.Items[0].NotaMedia)
	assert.Equal(t, 4.5, *out.Items[0].NotaMedia)
	assert.Nil(t, out.Items[1].NotaMedia)

	out, err = uc.Execute(context.Background(), ListInput{Page: "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Number)

	out, err = uc.Execute(context.Background(), ListInput{Page: "99"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Number)
	assert.Len(t, out.Items, 2)
}

func TestListProfissionais_Filters(t *testing.T) {
	repo := seed()
	uc := NewListProfissionais(repo)

	cardio := uint(1)
	out, err := uc.Execute(context.Background(), ListInput{EspecialidadeID: &cardio, Ordem: "inventada"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.Equal(t, profissionalDomain.OrdemNome, repo.filter.Ordem)

	out, err = uc.Execute(context.Background(), ListInput{Nome: "CARL", Ordem: "-preco"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "carla", out.Items[0].Username)
	assert.Equal(t, profissionalDomain.OrdemPrecoDesc, repo.filter.Ordem)
}

func TestGetDetalhes(t *testing.T) {
	repo := seed()
	repo.items[0].Avaliacoes = []models.Avaliacao{{Nota: 5}, {Nota: 4}}

	out, err := NewGetDetalhes(repo).Execute(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, out.NotaMedia)
	assert.Equal(t, 4.5, *out.NotaMedia)
	assert.Len(t, out.Avaliacoes, 2)

	_, err = NewGetDetalhes(repo).Execute(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProfissionalNaoEncontrado)
}

func TestNotaMedia_Empty(t *testing.T) {
	assert.Nil(t, NotaMedia(nil))
}

func TestLinkAgendamento(t *testing.T) {
	link, err := NewLinkAgendamento(seed()).Execute(context.Background(), 2)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mail.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "cm", q.Get("view"))
	assert.Equal(t, "bruno@clinica.com", q.Get("to"))
	assert.Equal(t, "Solicitação de Agendamento", q.Get("su"))
	assert.Equal(t, "Olá Dr(a). Bruno, gostaria de agendar uma consulta.", q.Get("body"))

	_, err = NewLinkAgendamento(seed()).Execute(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfissionalNaoEncontrado)
}
