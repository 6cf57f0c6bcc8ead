package localidade

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/cache"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type fakeRepo struct {
	nextID         uint
	estados        []models.Estado
	cidades        []models.Cidade
	especialidades []models.Especialidade
	calls          map[string]int
	failCreate     error
}

func newFakeRepo() *fakeRepo {
	sp := uint(1)
	return &fakeRepo{
		nextID:  100,
		estados: []models.Estado{{ID: 1, Nome: "São Paulo", Sigla: "SP"}},
		cidades: []models.Cidade{{ID: 10, Nome: "Campinas", EstadoID: &sp}},
		calls:   map[string]int{},
	}
}

func (f *fakeRepo) ListEstados(context.Context) ([]models.Estado, error) {
	f.calls["estados"]++
	return append([]models.Estado(nil), f.estados...), nil
}

func (f *fakeRepo) GetEstado(_ context.Context, id uint) (*models.Estado, error) {
	for _, e := range f.estados {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) CreateEstado(_ context.Context, e *models.Estado) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	e.ID = f.nextID
	f.estados = append(f.estados, *e)
	return nil
}

func (f *fakeRepo) DeleteEstado(_ context.Context, id uint) error {
	for i, e := range f.estados {
		if e.ID == id {
			f.estados = append(f.estados[:i], f.estados[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRepo) ListCidades(_ context.Context, estadoID uint) ([]models.Cidade, error) {
	f.calls["cidades"]++
	var out []models.Cidade
	for _, c := range f.cidades {
		if c.EstadoID != nil && *c.EstadoID == estadoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateCidade(_ context.Context, c *models.Cidade) error {
	f.nextID++
	c.ID = f.nextID
	f.cidades = append(f.cidades, *c)
	return nil
}

func (f *fakeRepo) DeleteCidade(_ context.Context, id uint) (*uint, error) {
	for i, c := range f.cidades {
		if c.ID == id {
			f.cidades = append(f.cidades[:i], f.cidades[i+1:]...)
			return c.EstadoID, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) ListEspecialidades(context.Context) ([]models.Especialidade, error) {
	f.calls["especialidades"]++
	return append([]models.Especialidade(nil), f.especialidades...), nil
}

func (f *fakeRepo) CreateEspecialidade(_ context.Context, e *models.Especialidade) error {
	f.nextID++
	e.ID = f.nextID
	f.especialidades = append(f.especialidades, *e)
	return nil
}

func (f *fakeRepo) DeleteEspecialidade(_ context.Context, id uint) error {
	for i, e := range f.especialidades {
		if e.ID == id {
			f.especialidades = append(f.especialidades[:i], f.especialidades[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakePublisher struct{ events []audit.Event }

func (p *fakePublisher) Dispatch(ev audit.Event) { p.events = append(p.events, ev) }

func newService(repo *fakeRepo) (*Service, *fakePublisher) {
	pub := &fakePublisher{}
	return NewService(repo, cache.NewMemoryStore(), time.Hour, pub), pub
}

func TestListEstados_CachedUntilWrite(t *testing.T) {
	repo := newFakeRepo()
	svc, pub := newService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := svc.ListEstados(ctx)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	}
	assert.Equal(t, 1, repo.calls["estados"])

	_, err := svc.CreateEstado(ctx, 1, "Rio de Janeiro", "rj")
	require.NoError(t, err)

	out, err := svc.ListEstados(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "RJ", out[1].Sigla)
	assert.Equal(t, 2, repo.calls["estados"])
	assert.Equal(t, "estado_criado", pub.events[0].Action)
}

func TestListCidades(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(repo)
	ctx := context.Background()

	out, err := svc.ListCidades(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)

	sp := uint(1)
	out, err = svc.ListCidades(ctx, &sp)
	require.NoError(t, err)
	assert.Equal(t, []CidadeItem{{ID: 10, Nome: "Campinas"}}, out)

	_, err = svc.CreateCidade(ctx, 1, "Santos", &sp)
	require.NoError(t, err)

	out, err = svc.ListCidades(ctx, &sp)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, repo.calls["cidades"])

	missing := uint(99)
	out, err = svc.ListCidades(ctx, &missing)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreateCidade_Validation(t *testing.T) {
	svc, _ := newService(newFakeRepo())

	missing := uint(99)
	_, err := svc.CreateCidade(context.Background(), 1, " ", &missing)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "nome")
	assert.Contains(t, ve.Fields, "estado")
}

func TestEspecialidades(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(repo)
	ctx := context.Background()

	out, err := svc.ListEspecialidades(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	e, err := svc.CreateEspecialidade(ctx, 1, "Dermatologia", "Pele")
	require.NoError(t, err)
	assert.Equal(t, "Pele", *e.Descricao)

	out, err = svc.ListEspecialidades(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	require.NoError(t, svc.DeleteEspecialidade(ctx, 1, e.ID))
	assert.ErrorIs(t, svc.DeleteEspecialidade(ctx, 1, e.ID), ErrNaoEncontrado)

	out, err = svc.ListEspecialidades(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreateEstado_Duplicate(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = &pgconn.PgError{Code: "23505", ConstraintName: "idx_estados_sigla"}
	svc, _ := newService(repo)

	_, err := svc.CreateEstado(context.Background(), 1, "São Paulo", "SP")
	assert.ErrorIs(t, err, ErrDuplicado)

	_, err = svc.CreateEstado(context.Background(), 1, "X", "XYZ")
	_, ok := httperr.AsValidation(err)
	assert.True(t, ok)
}

func TestDeleteCidade_InvalidatesEstadoCache(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(repo)
	ctx := context.Background()

	sp := uint(1)
	_, err := svc.ListCidades(ctx, &sp)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCidade(ctx, 1, 10))

	out, err := svc.ListCidades(ctx, &sp)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, svc.DeleteCidade(ctx, 1, 10), ErrNaoEncontrado)
}
