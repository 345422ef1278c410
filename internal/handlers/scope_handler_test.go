package handlers_test

import (
	"MyWeddBlue/internal/handlers"
	"MyWeddBlue/internal/model"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHandlers_CreateClient(t *testing.T) {
	env := newHandlersTestRouter(t, handlers.Options{})
	env.scopes.On("CreateClient", mock.Anything, mock.MatchedBy(func(c *model.Client) bool {
		return c.Slug == "anna-budi"
	})).Return(nil).Once()

	rr := do(t, env.router, http.MethodPost, "/api/clients", `{"slug":"anna-budi","name":"Anna & Budi"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var c model.Client
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "anna-budi", c.Slug)
	assert.NotEmpty(t, c.ID)

	rr = do(t, env.router, http.MethodPost, "/api/clients", `{"slug":"Bad Slug!"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env.scopes.On("CreateClient", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	rr = do(t, env.router, http.MethodPost, "/api/clients", `{"slug":"anna-budi"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandlers_GetClientAndLists(t *testing.T) {
	env := newHandlersTestRouter(t, handlers.Options{})
	env.scopes.On("GetClient", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound).Once()
	env.scopes.On("ListClients", mock.Anything).Return([]model.Client{{ID: "c1", Slug: "a", Name: "A"}}, nil).Once()
	env.scopes.On("ListTemplates", mock.Anything).Return([]model.Template{}, nil).Once()

	rr := do(t, env.router, http.MethodGet, "/api/clients/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, env.router, http.MethodGet, "/api/clients", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var list []model.Client
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = do(t, env.router, http.MethodGet, "/api/templates", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHandlers_CreateTemplate(t *testing.T) {
	env := newHandlersTestRouter(t, handlers.Options{})
	env.scopes.On("CreateTemplate", mock.Anything, mock.Anything).Return(nil).Once()

	rr := do(t, env.router, http.MethodPost, "/api/templates", `{"name":"Rustic"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, env.router, http.MethodPost, "/api/templates", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
