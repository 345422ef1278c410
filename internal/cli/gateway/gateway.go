package gateway

import (
	"MyWeddBlue/internal/cli/api"
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/ornament"
	"context"
	"fmt"
	"net/url"
)

// Gateway — HTTP-реализация ornament.Gateway поверх API сервера.
type Gateway struct {
	api *api.Client
}

var _ ornament.Gateway = (*Gateway)(nil)

func New(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

func ornamentsPath(scope ornament.Scope) string {
	return fmt.Sprintf("/api/%s/%s/ornaments", scope.Kind.PathSegment(), url.PathEscape(scope.ID))
}

// Load читает сохранённую коллекцию scope.
func (g *Gateway) Load(ctx context.Context, scope ornament.Scope) (ornament.Data, error) {
	var data ornament.Data
	if err := g.api.GetJSON(ctx, ornamentsPath(scope), &data); err != nil {
		return ornament.Data{}, err
	}
	return data, nil
}

// Save заменяет коллекцию scope целиком.
func (g *Gateway) Save(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	if data.Ornaments == nil {
		data.Ornaments = []ornament.Ornament{}
	}
	return g.api.PutJSON(ctx, ornamentsPath(scope), data, nil)
}

// Sections возвращает число видимых орнаментов по секциям.
func (g *Gateway) Sections(ctx context.Context, scope ornament.Scope) (map[string]int, error) {
	var counts map[string]int
	path := fmt.Sprintf("/api/%s/%s/sections", scope.Kind.PathSegment(), url.PathEscape(scope.ID))
	if err := g.api.GetJSON(ctx, path, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (g *Gateway) Clients(ctx context.Context) ([]model.Client, error) {
	var list []model.Client
	err := g.api.GetJSON(ctx, "/api/clients", &list)
	return list, err
}

func (g *Gateway) CreateClient(ctx context.Context, slug, name string) (model.Client, error) {
	var c model.Client
	err := g.api.PostJSON(ctx, "/api/clients", map[string]string{"slug": slug, "name": name}, &c)
	return c, err
}

func (g *Gateway) Templates(ctx context.Context) ([]model.Template, error) {
	var list []model.Template
	err := g.api.GetJSON(ctx, "/api/templates", &list)
	return list, err
}

func (g *Gateway) CreateTemplate(ctx context.Context, name string) (model.Template, error) {
	var t model.Template
	err := g.api.PostJSON(ctx, "/api/templates", map[string]string{"name": name}, &t)
	return t, err
}
