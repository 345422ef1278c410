package service

import (
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ScopeService управляет реестром клиентов и шаблонов.
type ScopeService struct {
	repo   repo.ScopeRepository
	logger *zap.SugaredLogger
}

func NewScopeService(r repo.ScopeRepository, logger *zap.SugaredLogger) *ScopeService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ScopeService{repo: r, logger: logger}
}

// CreateClient регистрирует приглашение клиента. Slug — латиница, цифры и дефисы.
func (s *ScopeService) CreateClient(ctx context.Context, slug, name string) (*model.Client, error) {
	slug, name = strings.TrimSpace(strings.ToLower(slug)), strings.TrimSpace(name)
	if !slugRe.MatchString(slug) {
		return nil, fmt.Errorf("%w: slug %q", ErrInvalidInput, slug)
	}
	if name == "" {
		name = slug
	}
	c := &model.Client{ID: uuid.NewString(), Slug: slug, Name: name}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: client %q", ErrAlreadyExists, slug)
		}
		return nil, err
	}
	s.logger.Infow("client created", "id", c.ID, "slug", c.Slug)
	return c, nil
}

// CreateTemplate регистрирует шаблон каталога.
func (s *ScopeService) CreateTemplate(ctx context.Context, name string) (*model.Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty template name", ErrInvalidInput)
	}
	t := &model.Template{ID: uuid.NewString(), Name: name}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: template %q", ErrAlreadyExists, name)
		}
		return nil, err
	}
	s.logger.Infow("template created", "id", t.ID, "name", t.Name)
	return t, nil
}

func (s *ScopeService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *ScopeService) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return s.repo.ListTemplates(ctx)
}

// GetClient возвращает ErrScopeNotFound для неизвестного id.
func (s *ScopeService) GetClient(ctx context.Context, id string) (*model.Client, error) {
	c, err := s.repo.GetClient(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScopeNotFound
	}
	return c, err
}

// GetTemplate возвращает ErrScopeNotFound для неизвестного id.
func (s *ScopeService) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	t, err := s.repo.GetTemplate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScopeNotFound
	}
	return t, err
}
