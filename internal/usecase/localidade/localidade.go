// Package localidade serve as listas de referência (estados, cidades e
// especialidades) com cache e as operações administrativas sobre elas.
package localidade

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/cache"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	localidadeDomain "github.com/BruksfildServices01/profissionais-api/internal/domain/localidade"
	"github.com/BruksfildServices01/profissionais-api/internal/httperr"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

const (
	keyEstados        = "estados"
	keyEspecialidades = "especialidades"
)

func keyCidades(estadoID uint) string {
	return fmt.Sprintf("cidades:%d", estadoID)
}

var (
	ErrNaoEncontrado = httperr.ErrBusinessMsg("not_found", "Registro não encontrado.")
	ErrDuplicado     = httperr.ErrBusinessMsg("duplicado", "Já existe um registro com esses dados.")
	ErrEmUso         = httperr.ErrBusinessMsg("em_uso", "O registro está em uso e não pode ser excluído.")
)

// CidadeItem é o formato enxuto devolvido ao carregar cidades de um estado.
type CidadeItem struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type Service struct {
	repo  localidadeDomain.Repository
	cache cache.Store
	ttl   time.Duration
	audit audit.Publisher
}

func NewService(
	repo localidadeDomain.Repository,
	store cache.Store,
	ttl time.Duration,
	audit audit.Publisher,
) *Service {
	return &Service{
		repo:  repo,
		cache: store,
		ttl:   ttl,
		audit: audit,
	}
}

// ======================================================
// LEITURA
// ======================================================

func (s *Service) ListEstados(ctx context.Context) ([]models.Estado, error) {
	return cache.Remember(ctx, s.cache, keyEstados, s.ttl, s.repo.ListEstados)
}

// ListCidades devolve lista vazia para estado nulo ou inexistente.
func (s *Service) ListCidades(ctx context.Context, estadoID *uint) ([]CidadeItem, error) {
	if estadoID == nil {
		return []CidadeItem{}, nil
	}

	return cache.Remember(ctx, s.cache, keyCidades(*estadoID), s.ttl, func(ctx context.Context) ([]CidadeItem, error) {
		cidades, err := s.repo.ListCidades(ctx, *estadoID)
		if err != nil {
			return nil, err
		}
		out := make([]CidadeItem, 0, len(cidades))
		for _, c := range cidades {
			out = append(out, CidadeItem{ID: c.ID, Nome: c.Nome})
		}
		return out, nil
	})
}

func (s *Service) ListEspecialidades(ctx context.Context) ([]models.Especialidade, error) {
	return cache.Remember(ctx, s.cache, keyEspecialidades, s.ttl, s.repo.ListEspecialidades)
}

// ======================================================
// ADMIN
// ======================================================

func (s *Service) CreateEstado(ctx context.Context, adminID uint, nome, sigla string) (*models.Estado, error) {
	nome = strings.TrimSpace(nome)
	sigla = strings.ToUpper(strings.TrimSpace(sigla))

	ve := &httperr.ValidationError{}
	if nome == "" || len([]rune(nome)) > 100 {
		ve.Add("nome", "Informe um nome com até 100 caracteres.")
	}
	if len(sigla) != 2 {
		ve.Add("sigla", "A sigla deve ter 2 letras.")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	e := &models.Estado{Nome: nome, Sigla: sigla}
	if err := s.repo.CreateEstado(ctx, e); err != nil {
		return nil, translateWrite(err)
	}

	s.invalidate(ctx, keyEstados)
	s.dispatch(adminID, "estado_criado", "estado", e.ID)
	return e, nil
}

func (s *Service) DeleteEstado(ctx context.Context, adminID, id uint) error {
	if err := s.repo.DeleteEstado(ctx, id); err != nil {
		return translateWrite(err)
	}

	s.invalidate(ctx, keyEstados, keyCidades(id))
	s.dispatch(adminID, "estado_excluido", "estado", id)
	return nil
}

func (s *Service) CreateCidade(ctx context.Context, adminID uint, nome string, estadoID *uint) (*models.Cidade, error) {
	nome = strings.TrimSpace(nome)

	ve := &httperr.ValidationError{}
	if nome == "" || len([]rune(nome)) > 100 {
		ve.Add("nome", "Informe um nome com até 100 caracteres.")
	}
	if estadoID != nil {
		if _, err := s.repo.GetEstado(ctx, *estadoID); errors.Is(err, domain.ErrNotFound) {
			ve.Add("estado", "Selecione um estado válido.")
		} else if err != nil {
			return nil, err
		}
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	c := &models.Cidade{Nome: nome, EstadoID: estadoID}
	if err := s.repo.CreateCidade(ctx, c); err != nil {
		return nil, translateWrite(err)
	}

	if estadoID != nil {
		s.invalidate(ctx, keyCidades(*estadoID))
	}
	s.dispatch(adminID, "cidade_criada", "cidade", c.ID)
	return c, nil
}

func (s *Service) DeleteCidade(ctx context.Context, adminID, id uint) error {
	estadoID, err := s.repo.DeleteCidade(ctx, id)
	if err != nil {
		return translateWrite(err)
	}

	if estadoID != nil {
		s.invalidate(ctx, keyCidades(*estadoID))
	}
	s.dispatch(adminID, "cidade_excluida", "cidade", id)
	return nil
}

func (s *Service) CreateEspecialidade(ctx context.Context, adminID uint, nome, descricao string) (*models.Especialidade, error) {
	nome = strings.TrimSpace(nome)
	descricao = strings.TrimSpace(descricao)

	if nome == "" || len([]rune(nome)) > 100 {
		ve := &httperr.ValidationError{}
		ve.Add("nome", "Informe um nome com até 100 caracteres.")
		return nil, ve
	}

	e := &models.Especialidade{Nome: nome}
	if descricao != "" {
		e.Descricao = &descricao
	}
	if err := s.repo.CreateEspecialidade(ctx, e); err != nil {
		return nil, translateWrite(err)
	}

	s.invalidate(ctx, keyEspecialidades)
	s.dispatch(adminID, "especialidade_criada", "especialidade", e.ID)
	return e, nil
}

func (s *Service) DeleteEspecialidade(ctx context.Context, adminID, id uint) error {
	if err := s.repo.DeleteEspecialidade(ctx, id); err != nil {
		return translateWrite(err)
	}

	s.invalidate(ctx, keyEspecialidades)
	s.dispatch(adminID, "especialidade_excluida", "especialidade", id)
	return nil
}

// ======================================================
// HELPERS
// ======================================================

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("falha ao invalidar cache")
	}
}

func (s *Service) dispatch(adminID uint, action, entity string, id uint) {
	s.audit.Dispatch(audit.Event{
		UsuarioID: &adminID,
		Action:    action,
		Entity:    entity,
		EntityID:  &id,
	})
}

func translateWrite(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrNaoEncontrado
	case httperr.IsUniqueViolation(err, ""):
		return ErrDuplicado
	case httperr.IsForeignKeyViolation(err):
		return ErrEmUso
	}
	return err
}
