package profissional

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	profissionalDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/profissional"
	"github.com/BruksfildServices01/profissionais-api/internal/dto"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

var ErrProfissionalNaoEncontrado = httperr.ErrBusinessMsg("profissional_not_found", "Profissional não encontrado.")

type GetDetalhes struct {
	repo profissionalDomain.Repository
}

func NewGetDetalhes(repo profissionalDomain.Repository) *GetDetalhes {
	return &GetDetalhes{repo: repo}
}

func (uc *GetDetalhes) Execute(ctx context.Context, id uint) (*dto.ProfissionalDetalheDTO, error) {
	p, err := uc.repo.GetDetalhes(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrProfissionalNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	out := dto.NewProfissionalDetalheDTO(*p, NotaMedia(p.Avaliacoes))
	return &out, nil
}

// NotaMedia devolve nil quando não há avaliações.
func NotaMedia(avaliacoes []models.Avaliacao) *float64 {
	if len(avaliacoes) == 0 {
		return nil
	}
	sum := 0
	for _, a := range avaliacoes {
		sum += a.Nota
	}
	media := float64(sum) / float64(len(avaliacoes))
	return &media
}

// ======================================================
// LINK DE AGENDAMENTO
// ======================================================

const (
	gmailComposeURL    = "https://mail.google.com/mail/"
	assuntoAgendamento = "Solicitação de Agendamento"
)

type LinkAgendamento struct {
	repo profissionalDomain.Repository
}

func NewLinkAgendamento(repo profissionalDomain.Repository) *LinkAgendamento {
	return &LinkAgendamento{repo: repo}
}

func (uc *LinkAgendamento) Execute(ctx context.Context, id uint) (string, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrProfissionalNaoEncontrado
	}
	if err != nil {
		return "", err
	}

	return GmailLink(p.Usuario), nil
}

// GmailLink monta o link de composição do Gmail já com assunto e corpo.
func GmailLink(u models.Usuario) string {
	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")
	q.Set("to", u.Email)
	q.Set("su", assuntoAgendamento)
	q.Set("body", fmt.Sprintf("Olá Dr(a). %s, gostaria de agendar uma consulta.", u.FullName()))

	return gmailComposeURL + "?" + q.Encode()
}
