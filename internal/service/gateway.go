package service

import (
	"MyWeddBlue/internal/ornament"
	"context"
)

// Gateway даёт редакторской сессии доступ к сервису в том же процессе.
type Gateway struct {
	svc *OrnamentService
}

var _ ornament.Gateway = (*Gateway)(nil)

func NewGateway(svc *OrnamentService) *Gateway {
	return &Gateway{svc: svc}
}

func (g *Gateway) Load(ctx context.Context, scope ornament.Scope) (ornament.Data, error) {
	return g.svc.Get(ctx, scope)
}

func (g *Gateway) Save(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	return g.svc.Save(ctx, scope, data)
}
