package repo

import (
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/ornament"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ScopeRepository — реестр владельцев коллекций: клиенты и шаблоны каталога.
type ScopeRepository interface {
	CreateClient(ctx context.Context, c *model.Client) error
	CreateTemplate(ctx context.Context, t *model.Template) error
	ListClients(ctx context.Context) ([]model.Client, error)
	ListTemplates(ctx context.Context) ([]model.Template, error)
	// GetClient возвращает gorm.ErrRecordNotFound, если клиента нет.
	GetClient(ctx context.Context, id string) (*model.Client, error)
	GetTemplate(ctx context.Context, id string) (*model.Template, error)
	// Exists сообщает, зарегистрирован ли scope.
	Exists(ctx context.Context, scope ornament.Scope) (bool, error)
}

type scopeRepo struct {
	db *gorm.DB
}

// NewScopeRepository создаёт реализацию реестра scope.
func NewScopeRepository(db *gorm.DB) ScopeRepository {
	return &scopeRepo{db: db}
}

func (r *scopeRepo) CreateClient(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *scopeRepo) CreateTemplate(ctx context.Context, t *model.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *scopeRepo) ListClients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	if err := r.db.WithContext(ctx).Order("created_at ASC, slug ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scopeRepo) ListTemplates(ctx context.Context) ([]model.Template, error) {
	var out []model.Template
	if err := r.db.WithContext(ctx).Order("created_at ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scopeRepo) GetClient(ctx context.Context, id string) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *scopeRepo) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	var t model.Template
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *scopeRepo) Exists(ctx context.Context, scope ornament.Scope) (bool, error) {
	err := scopeExists(r.db.WithContext(ctx), scope)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// scopeExists возвращает gorm.ErrRecordNotFound, если владельца scope нет.
func scopeExists(tx *gorm.DB, scope ornament.Scope) error {
	var count int64
	var q *gorm.DB
	switch scope.Kind {
	case ornament.ScopeClient:
		q = tx.Model(&model.Client{})
	case ornament.ScopeTemplate:
		q = tx.Model(&model.Template{})
	default:
		return fmt.Errorf("unknown scope kind %d", scope.Kind)
	}
	if err := q.Where("id = ?", scope.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
