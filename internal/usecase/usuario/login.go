package usuario

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/auth"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	usuarioDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/usuario"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

var ErrCredenciaisInvalidas = httperr.ErrBusinessMsg("invalid_credentials", "Credenciais inválidas")

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Usuario   *models.Usuario
}

type Login struct {
	repo   usuarioDomain.Repository
	issuer *auth.Issuer
	audit  audit.Publisher
	now    func() time.Time
}

func NewLogin(
	repo usuarioDomain.Repository,
	issuer *auth.Issuer,
	audit audit.Publisher,
) *Login {
	return &Login{
		repo:   repo,
		issuer: issuer,
		audit:  audit,
		now:    time.Now,
	}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginOutput, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredenciaisInvalidas
	}

	u, err := uc.repo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrCredenciaisInvalidas
	}
	if err != nil {
		return nil, err
	}

	if !u.IsActive || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrCredenciaisInvalidas
	}

	token, claims, err := uc.issuer.Generate(u.ID, u.Role())
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    "login",
		Entity:    "usuario",
		EntityID:  &u.ID,
	})

	return &LoginOutput{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Usuario:   u,
	}, nil
}

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	revoker auth.Revoker
	audit   audit.Publisher
}

func NewLogout(revoker auth.Revoker, audit audit.Publisher) *Logout {
	return &Logout{revoker: revoker, audit: audit}
}

func (uc *Logout) Execute(ctx context.Context, userID uint, jti string, until time.Time) error {
	if err := uc.revoker.Revoke(ctx, jti, until); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &userID,
		Action:    "logout",
		Entity:    "usuario",
		EntityID:  &userID,
	})
	return nil
}
