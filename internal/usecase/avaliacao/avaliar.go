package avaliacao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	avaliacaoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/avaliacao"
	"github.com/BruksfildServices01/profissionais-api/internal/domain/servico"
	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

var (
	ErrProfissionalNaoEncontrado = httperr.ErrBusinessMsg("profissional_not_found", "Profissional não encontrado.")
	ErrAvaliacaoNaoEncontrada    = httperr.ErrBusinessMsg("avaliacao_not_found", "Avaliação não encontrada.")
	ErrComentarioNaoEncontrado   = httperr.ErrBusinessMsg("comentario_not_found", "Comentário não encontrado.")
)

// ======================================================
// INPUT
// ======================================================

type AvaliarInput struct {
	Nota       int
	Titulo     string
	Comentario string
	Recomenda  string
}

// ======================================================
// USE CASE
// ======================================================

type Avaliar struct {
	repo  avaliacaoDomain.Repository
	audit audit.Publisher
	now   func() time.Time
}

func NewAvaliar(repo avaliacaoDomain.Repository, audit audit.Publisher) *Avaliar {
	return &Avaliar{repo: repo, audit: audit, now: time.Now}
}

func (uc *Avaliar) Execute(
	ctx context.Context,
	clienteID uint,
	profissionalID uint,
	in AvaliarInput,
) (*dto.AvaliacaoDTO, error) {

	// --------------------------------------------------
	// Profissional
	// --------------------------------------------------
	p, err := uc.repo.GetProfissional(ctx, profissionalID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrProfissionalNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if p.UsuarioID == clienteID {
		return nil, avaliacaoDomain.ErrAutoAvaliacao
	}

	// --------------------------------------------------
	// Campos
	// --------------------------------------------------
	titulo := strings.TrimSpace(in.Titulo)
	if err := avaliacaoDomain.ValidateNota(in.Nota); err != nil {
		return nil, err
	}
	if err := avaliacaoDomain.ValidateTitulo(titulo); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Uma avaliação por cliente
	// --------------------------------------------------
	exists, err := uc.repo.ExistsForCliente(ctx, p.ID, clienteID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, avaliacaoDomain.ErrJaAvaliado
	}

	cliente, err := uc.repo.GetUsuario(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Serviço realizado (ou criado agora)
	// --------------------------------------------------
	now := uc.now()
	s, err := uc.repo.FindServicoSemAvaliacao(ctx, p.ID, clienteID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = servico.NovoRealizado(p.ID, clienteID, now)
	}

	a := &models.Avaliacao{
		ProfissionalID: p.ID,
		ClienteID:      clienteID,
		Nota:           in.Nota,
		Titulo:         titulo,
		Recomenda:      avaliacaoDomain.ParseRecomenda(in.Recomenda),
	}
	if c := strings.TrimSpace(in.Comentario); c != "" {
		a.Comentario = &c
	}

	if err := uc.repo.CreateWithServico(ctx, s, a); err != nil {
		return nil, err
	}
	if a.DataAvaliacao.IsZero() {
		a.DataAvaliacao = now
	}
	a.Cliente = *cliente

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &clienteID,
		Action:    "avaliacao_criada",
		Entity:    "avaliacao",
		EntityID:  &a.ID,
		Metadata:  map[string]any{"profissional_id": p.ID, "nota": a.Nota},
	})

	out := dto.NewAvaliacaoDTO(*a)
	return &out, nil
}

// ======================================================
// EXCLUSÃO
// ======================================================

type ExcluirAvaliacao struct {
	repo  avaliacaoDomain.Repository
	audit audit.Publisher
}

func NewExcluirAvaliacao(repo avaliacaoDomain.Repository, audit audit.Publisher) *ExcluirAvaliacao {
	return &ExcluirAvaliacao{repo: repo, audit: audit}
}

// Execute remove o serviço junto com a avaliação e as respostas.
func (uc *ExcluirAvaliacao) Execute(ctx context.Context, userID, avaliacaoID uint) error {
	a, err := uc.repo.Get(ctx, avaliacaoID)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrAvaliacaoNaoEncontrada
	}
	if err != nil {
		return err
	}
	if a.ClienteID != userID {
		return avaliacaoDomain.ErrSemPermissao
	}

	if err := uc.repo.DeleteWithServico(ctx, a); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "avaliacao_excluida",
		Entity:    "avaliacao",
		EntityID:  &a.ID,
		Metadata:  map[string]any{"servico_id": a.ServicoID},
	})
	return nil
}
