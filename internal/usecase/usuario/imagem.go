package usuario

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/storage"
)

var ErrImagemInvalida = httperr.ErrBusinessMsg("invalid_image", "Envie uma imagem JPEG, PNG, GIF ou WebP válida.")

// UpdateImagem troca a foto do usuário ou, com profissional=true, a imagem
// do perfil profissional.
type UpdateImagem struct {
	repo         usuarioDomain.Repository
	store        storage.ImageStore
	audit        audit.Publisher
	maxSide      int
	profissional bool
}

func NewUpdateImagem(
	repo usuarioDomain.Repository,
	store storage.ImageStore,
	audit audit.Publisher,
	maxSide int,
) *UpdateImagem {
	return &UpdateImagem{repo: repo, store: store, audit: audit, maxSide: maxSide}
}

func NewUpdateImagemProfissional(
	repo usuarioDomain.Repository,
	store storage.ImageStore,
	audit audit.Publisher,
	maxSide int,
) *UpdateImagem {
	uc := NewUpdateImagem(repo, store, audit, maxSide)
	uc.profissional = true
	return uc
}

func (uc *UpdateImagem) Execute(ctx context.Context, userID uint, r io.Reader) (string, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrUsuarioNaoEncontrado
	}
	if err != nil {
		return "", err
	}
	if uc.profissional && u.Profissional == nil {
		return "", ErrNaoProfissional
	}

	data, err := storage.ProcessImage(r, uc.maxSide)
	if errors.Is(err, storage.ErrInvalidImage) {
		return "", ErrImagemInvalida
	}
	if err != nil {
		return "", err
	}

	folder, previous := "usuarios", u.ImagemPerfil
	if uc.profissional {
		folder, previous = "profissionais", u.Profissional.Imagem
	}

	url, err := uc.store.Put(ctx, storage.NewKey(folder, u.ID), data, storage.ContentTypeWebP)
	if err != nil {
		return "", err
	}

	if uc.profissional {
		err = uc.repo.UpdateProfissionalImagem(ctx, u.Profissional.ID, url)
	} else {
		err = uc.repo.UpdateImagem(ctx, u.ID, url)
	}
	if err != nil {
		_ = uc.store.Delete(ctx, url)
		return "", err
	}

	if previous != nil && *previous != "" {
		if err := uc.store.Delete(ctx, *previous); err != nil {
			log.Warn().Err(err).Str("url", *previous).Msg("falha ao remover imagem antiga")
		}
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "imagem_atualizada",
		Entity:    folder,
		EntityID:  &u.ID,
	})

	return url, nil
}
