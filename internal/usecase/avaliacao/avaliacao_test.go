package avaliacao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	avaliacaoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/avaliacao"
	servicoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

const (
	clienteID  = uint(10)
	medicoUser = uint(20)
	medicoID   = uint(2)
)

type fakeRepo struct {
	nextID      uint
	servicos    map[uint]*models.Servico
	avaliacoes  map[uint]*models.Avaliacao
	comentarios map[uint]*models.Comentario
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		servicos:    map[uint]*models.Servico{},
		avaliacoes:  map[uint]*models.Avaliacao{},
		comentarios: map[uint]*models.Comentario{},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) GetProfissional(_ context.Context, id uint) (*models.Profissional, error) {
	if id != medicoID {
		return nil, domain.ErrNotFound
	}
	return &models.Profissional{ID: medicoID, UsuarioID: medicoUser}, nil
}

func (f *fakeRepo) GetUsuario(_ context.Context, id uint) (*models.Usuario, error) {
	return &models.Usuario{ID: id, Username: map[uint]string{clienteID: "ana", medicoUser: "drjose"}[id]}, nil
}

func (f *fakeRepo) ExistsForCliente(_ context.Context, profissionalID, clienteID uint) (bool, error) {
	for _, a := range f.avaliacoes {
		if a.ProfissionalID == profissionalID && a.ClienteID == clienteID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) FindServicoSemAvaliacao(_ context.Context, profissionalID, clienteID uint) (*models.Servico, error) {
	var found *models.Servico
	for _, s := range f.servicos {
		if s.ProfissionalID != profissionalID || s.ClienteID != clienteID || s.Status != string(servicoDomain.StatusRealizado) {
			continue
		}
		avaliado := false
		for _, a := range f.avaliacoes {
			if a.ServicoID == s.ID {
				avaliado = true
			}
		}
		if !avaliado && (found == nil || s.ID < found.ID) {
			found = s
		}
	}
	return found, nil
}

func (f *fakeRepo) CreateWithServico(_ context.Context, s *models.Servico, a *models.Avaliacao) error {
	if s.ID == 0 {
		s.ID = f.id()
		f.servicos[s.ID] = s
	}
	a.ServicoID = s.ID
	a.ID = f.id()
	f.avaliacoes[a.ID] = a
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Avaliacao, error) {
	if a, ok := f.avaliacoes[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) DeleteWithServico(_ context.Context, a *models.Avaliacao) error {
	for id, c := range f.comentarios {
		if c.AvaliacaoID == a.ID {
			delete(f.comentarios, id)
		}
	}
	delete(f.avaliacoes, a.ID)
	delete(f.servicos, a.ServicoID)
	return nil
}

func (f *fakeRepo) CreateComentario(_ context.Context, c *models.Comentario) error {
	c.ID = f.id()
	f.comentarios[c.ID] = c
	return nil
}

func (f *fakeRepo) GetComentario(_ context.Context, id uint) (*models.Comentario, error) {
	if c, ok := f.comentarios[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) DeleteComentario(_ context.Context, id uint) error {
	if _, ok := f.comentarios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.comentarios, id)
	return nil
}

type fakePublisher struct{ events []audit.Event }

func (p *fakePublisher) Dispatch(ev audit.Event) { p.events = append(p.events, ev) }

func fixedNow() time.Time {
	return time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC)
}

func newAvaliar(repo *fakeRepo) *Avaliar {
	uc := NewAvaliar(repo, &fakePublisher{})
	uc.now = fixedNow
	return uc
}

func TestAvaliar_CreatesServicoWhenNoneRealizado(t *testing.T) {
	repo := newFakeRepo()

	out, err := newAvaliar(repo).Execute(context.Background(), clienteID, medicoID, AvaliarInput{
		Nota:       5,
		Titulo:     "  Excelente ",
		Comentario: "Muito atencioso",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana", out.Autor)
	assert.Equal(t, "Excelente", out.Titulo)
	assert.Equal(t, "15/04/2026", out.Data)
	assert.True(t, out.Recomenda)

	require.Len(t, repo.servicos, 1)
	for _, s := range repo.servicos {
		assert.Equal(t, string(servicoDomain.StatusRealizado), s.Status)
		assert.Equal(t, fixedNow(), s.DataAgendamento)
	}
}

func TestAvaliar_AttachesToOldestRealizado(t *testing.T) {
	repo := newFakeRepo()
	repo.servicos[7] = &models.Servico{ID: 7, ProfissionalID: medicoID, ClienteID: clienteID, Status: string(servicoDomain.StatusRealizado)}
	repo.servicos[3] = &models.Servico{ID: 3, ProfissionalID: medicoID, ClienteID: clienteID, Status: string(servicoDomain.StatusRealizado)}
	repo.servicos[5] = &models.Servico{ID: 5, ProfissionalID: medicoID, ClienteID: clienteID, Status: string(servicoDomain.StatusAgendado)}
	repo.nextID = 10

	out, err := newAvaliar(repo).Execute(context.Background(), clienteID, medicoID, AvaliarInput{Nota: 4, Recomenda: "false"})
	require.NoError(t, err)
	assert.False(t, out.Recomenda)

	assert.Len(t, repo.servicos, 3)
	assert.Equal(t, uint(3), repo.avaliacoes[out.ID].ServicoID)
}

func TestAvaliar_Rejections(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvaliar(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, clienteID, medicoID, AvaliarInput{Nota: 6})
	assert.ErrorIs(t, err, avaliacaoDomain.ErrNotaInvalida)

	_, err = uc.Execute(ctx, medicoUser, medicoID, AvaliarInput{Nota: 5})
	assert.ErrorIs(t, err, avaliacaoDomain.ErrAutoAvaliacao)

	_, err = uc.Execute(ctx, clienteID, 404, AvaliarInput{Nota: 5})
	assert.ErrorIs(t, err, ErrProfissionalNaoEncontrado)

	_, err = uc.Execute(ctx, clienteID, medicoID, AvaliarInput{Nota: 5})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, clienteID, medicoID, AvaliarInput{Nota: 3})
	assert.ErrorIs(t, err, avaliacaoDomain.ErrJaAvaliado)
}

func TestExcluirAvaliacao(t *testing.T) {
	repo := newFakeRepo()
	out, err := newAvaliar(repo).Execute(context.Background(), clienteID, medicoID, AvaliarInput{Nota: 5})
	require.NoError(t, err)

	_, err = NewAdicionarComentario(repo, &fakePublisher{}).Execute(context.Background(), medicoUser, out.ID, "Obrigado")
	require.NoError(t, err)

	uc := NewExcluirAvaliacao(repo, &fakePublisher{})
	assert.ErrorIs(t, uc.Execute(context.Background(), medicoUser, out.ID), avaliacaoDomain.ErrSemPermissao)

	require.NoError(t, uc.Execute(context.Background(), clienteID, out.ID))
	assert.Empty(t, repo.avaliacoes)
	assert.Empty(t, repo.servicos)
	assert.Empty(t, repo.comentarios)

	assert.ErrorIs(t, uc.Execute(context.Background(), clienteID, out.ID), ErrAvaliacaoNaoEncontrada)
}

func TestComentarios(t *testing.T) {
	repo := newFakeRepo()
	av, err := newAvaliar(repo).Execute(context.Background(), clienteID, medicoID, AvaliarInput{Nota: 5})
	require.NoError(t, err)

	add := NewAdicionarComentario(repo, &fakePublisher{})
	add.now = fixedNow

	_, err = add.Execute(context.Background(), medicoUser, av.ID, "   ")
	assert.ErrorIs(t, err, avaliacaoDomain.ErrTextoVazio)

	_, err = add.Execute(context.Background(), medicoUser, 999, "oi")
	assert.ErrorIs(t, err, ErrAvaliacaoNaoEncontrada)

	c, err := add.Execute(context.Background(), medicoUser, av.ID, " Obrigado pela avaliação ")
	require.NoError(t, err)
	assert.Equal(t, "drjose", c.Autor)
	assert.Equal(t, "Obrigado pela avaliação", c.Texto)
	assert.Equal(t, "15/04/2026", c.Data)

	del := NewExcluirComentario(repo, &fakePublisher{})
	assert.ErrorIs(t, del.Execute(context.Background(), clienteID, c.ID), avaliacaoDomain.ErrComentarioDeOutro)
	require.NoError(t, del.Execute(context.Background(), medicoUser, c.ID))
	assert.ErrorIs(t, del.Execute(context.Background(), medicoUser, c.ID), ErrComentarioNaoEncontrado)
}
