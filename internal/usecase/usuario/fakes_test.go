package usuario

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/profissionais-api/internal/audit"
	"github.com/BruksfildServices01/profissionais-api/internal/domain"
	"github.com/BruksfildServices01/profissionais-api/internal/models"
)

type fakeRepo struct {
	mu        sync.Mutex
	nextID    uint
	usuarios  map[uint]*models.Usuario
	cidades   map[uint]*models.Cidade
	especs    map[uint]*models.Especialidade
	crms      map[int]bool
	deleted   []uint
	lastLogin map[uint]time.Time
}

func newFakeRepo() *fakeRepo {
	sp, rj := uint(1), uint(2)
	return &fakeRepo{
		nextID:   100,
		usuarios: map[uint]*models.Usuario{},
		cidades: map[uint]*models.Cidade{
			10: {ID: 10, Nome: "São Paulo", EstadoID: &sp},
			20: {ID: 20, Nome: "Niterói", EstadoID: &rj},
		},
		especs: map[uint]*models.Especialidade{
			5: {ID: 5, Nome: "Cardiologia"},
		},
		crms:      map[int]bool{},
		lastLogin: map[uint]time.Time{},
	}
}

func (f *fakeRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.usuarios {
		if strings.EqualFold(u.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) EmailExists(_ context.Context, email string, exceptID uint) (bool, error) {
	for _, u := range f.usuarios {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CRMExists(_ context.Context, crm int) (bool, error) {
	return f.crms[crm], nil
}

func (f *fakeRepo) GetCidade(_ context.Context, id uint) (*models.Cidade, error) {
	if c, ok := f.cidades[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetEspecialidade(_ context.Context, id uint) (*models.Especialidade, error) {
	if e, ok := f.especs[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, u *models.Usuario, e *models.Endereco, p *models.Profissional) error {
	f.nextID++
	if e != nil {
		e.ID = f.nextID
		u.EnderecoID = &e.ID
		u.Endereco = e
	}
	f.nextID++
	u.ID = f.nextID
	if p != nil {
		f.nextID++
		p.ID = f.nextID
		p.UsuarioID = u.ID
		u.Profissional = p
		f.crms[p.CRM] = true
	}
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Usuario, error) {
	if u, ok := f.usuarios[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*models.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) Update(_ context.Context, u *models.Usuario, e *models.Endereco) error {
	if e != nil {
		if e.ID == 0 {
			f.nextID++
			e.ID = f.nextID
		}
		u.EnderecoID = &e.ID
		u.Endereco = e
	}
	cp := *u
	f.usuarios[u.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateImagem(_ context.Context, id uint, url string) error {
	f.usuarios[id].ImagemPerfil = &url
	return nil
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	f.lastLogin[id] = at
	return nil
}

func (f *fakeRepo) UpdateProfissional(_ context.Context, p *models.Profissional, telefoneProfissional *bool) error {
	for _, u := range f.usuarios {
		if u.Profissional != nil && u.Profissional.ID == p.ID {
			cp := *p
			u.Profissional = &cp
			if telefoneProfissional != nil {
				u.TelefoneProfissional = *telefoneProfissional
			}
		}
	}
	return nil
}

func (f *fakeRepo) UpdateProfissionalImagem(_ context.Context, id uint, url string) error {
	for _, u := range f.usuarios {
		if u.Profissional != nil && u.Profissional.ID == id {
			u.Profissional.Imagem = &url
		}
	}
	return nil
}

func (f *fakeRepo) DeleteCascade(_ context.Context, id uint) error {
	if _, ok := f.usuarios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.usuarios, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePublisher struct {
	events []audit.Event
}

func (p *fakePublisher) Dispatch(ev audit.Event) {
	p.events = append(p.events, ev)
}

func (p *fakePublisher) actions() []string {
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Action
	}
	return out
}

type fakeStore struct {
	puts    []string
	deleted []string
}

func (s *fakeStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	url := "https://cdn.test/" + key
	s.puts = append(s.puts, url)
	return url, nil
}

func (s *fakeStore) Delete(_ context.Context, url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}
