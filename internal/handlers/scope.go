package handlers

import (
	"MyWeddBlue/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScopeHandler — реестр клиентов и шаблонов.
type ScopeHandler struct {
	ScopeService *service.ScopeService
	Logger       *zap.SugaredLogger
}

func NewScopeHandler(scopeService *service.ScopeService, logger *zap.SugaredLogger) *ScopeHandler {
	return &ScopeHandler{ScopeService: scopeService, Logger: logger}
}

type createClientRequest struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type createTemplateRequest struct {
	Name string `json:"name"`
}

// CreateClient регистрирует приглашение клиента
func (h *ScopeHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateClient: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	c, err := h.ScopeService.CreateClient(r.Context(), req.Slug, req.Name)
	if err != nil {
		h.Logger.Warnw("CreateClient: service error", "slug", req.Slug, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ScopeHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.ScopeService.ListClients(r.Context())
	if err != nil {
		h.Logger.Errorw("ListClients: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ScopeHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	c, err := h.ScopeService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateTemplate регистрирует шаблон каталога
func (h *ScopeHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateTemplate: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	t, err := h.ScopeService.CreateTemplate(r.Context(), req.Name)
	if err != nil {
		h.Logger.Warnw("CreateTemplate: service error", "name", req.Name, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *ScopeHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.ScopeService.ListTemplates(r.Context())
	if err != nil {
		h.Logger.Errorw("ListTemplates: service error", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
