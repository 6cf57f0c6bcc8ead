package usuario

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/storage"
)

type DeleteConta struct {
	repo    usuarioDomain.Repository
	revoker auth.Revoker
	store   storage.ImageStore
	audit   audit.Publisher
}

func NewDeleteConta(
	repo usuarioDomain.Repository,
	revoker auth.Revoker,
	store storage.ImageStore,
	audit audit.Publisher,
) *DeleteConta {
	return &DeleteConta{
		repo:    repo,
		revoker: revoker,
		store:   store,
		audit:   audit,
	}
}

func (uc *DeleteConta) Execute(ctx context.Context, userID uint, jti string, until time.Time) error {
	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrUsuarioNaoEncontrado
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteCascade(ctx, u.ID); err != nil {
		return err
	}

	if jti != "" {
		if err := uc.revoker.Revoke(ctx, jti, until); err != nil {
			log.Warn().Err(err).Uint("usuario_id", u.ID).Msg("falha ao revogar token")
		}
	}

	var imagens []*string
	imagens = append(imagens, u.ImagemPerfil)
	if u.Profissional != nil {
		imagens = append(imagens, u.Profissional.Imagem)
	}
	for _, img := range imagens {
		if img == nil || *img == "" {
			continue
		}
		if err := uc.store.Delete(ctx, *img); err != nil {
			log.Warn().Err(err).Str("url", *img).Msg("falha ao remover imagem")
		}
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: nil,
		Action:    "conta_excluida",
		Entity:    "usuario",
		EntityID:  &u.ID,
		Metadata:  map[string]any{"username": u.Username},
	})

	return nil
}
