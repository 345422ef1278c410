package handlers

import (
	"MyWeddBlue/internal/ornament"
	"MyWeddBlue/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ErrorResponse — тело ответа об ошибке.
type ErrorResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error"`
	Invalid []ornament.FieldError `json:"invalid,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError маппит ошибки сервиса в коды ответа.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *ornament.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Invalid: ve.Problems})
	case errors.Is(err, service.ErrScopeNotFound):
		writeError(w, http.StatusNotFound, "scope not found")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// scopeFromRequest разбирает {kind}/{id} из пути.
func scopeFromRequest(r *http.Request) (ornament.Scope, bool) {
	kind, err := ornament.ParseScopeKind(chi.URLParam(r, "kind"))
	if err != nil {
		return ornament.Scope{}, false
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		return ornament.Scope{}, false
	}
	return ornament.Scope{Kind: kind, ID: id}, true
}
