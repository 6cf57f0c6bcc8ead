package avaliacao

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	avaliacaoDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/avaliacao"
	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type AdicionarComentario struct {
	repo  avaliacaoDomain.Repository
	audit audit.Publisher
	now   func() time.Time
}

func NewAdicionarComentario(repo avaliacaoDomain.Repository, audit audit.Publisher) *AdicionarComentario {
	return &AdicionarComentario{repo: repo, audit: audit, now: time.Now}
}

func (uc *AdicionarComentario) Execute(
	ctx context.Context,
	autorID uint,
	avaliacaoID uint,
	texto string,
) (*dto.ComentarioDTO, error) {

	texto, err := avaliacaoDomain.NormalizeTexto(texto)
	if err != nil {
		return nil, err
	}

	a, err := uc.repo.Get(ctx, avaliacaoID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrAvaliacaoNaoEncontrada
	}
	if err != nil {
		return nil, err
	}

	autor, err := uc.repo.GetUsuario(ctx, autorID)
	if err != nil {
		return nil, err
	}

	c := &models.Comentario{
		AvaliacaoID: a.ID,
		AutorID:     autorID,
		Texto:       texto,
	}
	if err := uc.repo.CreateComentario(ctx, c); err != nil {
		return nil, err
	}
	if c.DataComentario.IsZero() {
		c.DataComentario = uc.now()
	}
	c.Autor = *autor

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &autorID,
		Action:    "comentario_criado",
		Entity:    "comentario",
		EntityID:  &c.ID,
		Metadata:  map[string]any{"avaliacao_id": a.ID},
	})

	out := dto.NewComentarioDTO(*c)
	return &out, nil
}

type ExcluirComentario struct {
	repo  avaliacaoDomain.Repository
	audit audit.Publisher
}

func NewExcluirComentario(repo avaliacaoDomain.Repository, audit audit.Publisher) *ExcluirComentario {
	return &ExcluirComentario{repo: repo, audit: audit}
}

// Execute: só o autor exclui o próprio comentário.
func (uc *ExcluirComentario) Execute(ctx context.Context, userID, comentarioID uint) error {
	c, err := uc.repo.GetComentario(ctx, comentarioID)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrComentarioNaoEncontrado
	}
	if err != nil {
		return err
	}
	if c.AutorID != userID {
		return avaliacaoDomain.ErrComentarioDeOutro
	}

	if err := uc.repo.DeleteComentario(ctx, c.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrComentarioNaoEncontrado
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "comentario_excluido",
		Entity:    "comentario",
		EntityID:  &c.ID,
	})
	return nil
}
