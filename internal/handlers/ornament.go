package handlers

import (
	"MyWeddBlue/internal/ornament"
	"MyWeddBlue/internal/service"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxOrnamentsBody - лимит тела запроса сохранения (изображения идут data URI внутри JSON).
const maxOrnamentsBody = 32 << 20

// Контейнер по умолчанию - мобильная ширина приглашения.
var defaultContainer = ornament.Size{Width: 400, Height: 800}

// OrnamentHandler - чтение, сохранение и рендер коллекций орнаментов.
type OrnamentHandler struct {
	OrnamentService *service.OrnamentService
	Logger          *zap.SugaredLogger
}

func NewOrnamentHandler(ornamentService *service.OrnamentService, logger *zap.SugaredLogger) *OrnamentHandler {
	return &OrnamentHandler{OrnamentService: ornamentService, Logger: logger}
}

// SaveResponse - ответ на успешное сохранение.
type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Get отдаёт сохранённую коллекцию scope
func (h *OrnamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scope kind")
		return
	}
	data, err := h.OrnamentService.Get(r.Context(), scope)
	if err != nil {
		h.Logger.Warnw("Get ornaments: service error", "scope", scope.String(), "error", err)
		writeServiceError(w, err)
		return
	}
	if data.Ornaments == nil {
		data.Ornaments = []ornament.Ornament{}
	}
	writeJSON(w, http.StatusOK, data)
}

// Save полностью заменяет коллекцию scope
func (h *OrnamentHandler) Save(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scope kind")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxOrnamentsBody)
	var data ornament.Data
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.Logger.Warnw("Save ornaments: invalid request body", "scope", scope.String(), "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.OrnamentService.Save(r.Context(), scope, data); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveResponse{
		Success: true,
		Message: "Ornaments saved successfully",
		Count:   len(data.Ornaments),
	})
}

// Reset удаляет все орнаменты scope. Требует явного ?confirm=true.
func (h *OrnamentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scope kind")
		return
	}
	if confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirm {
		writeError(w, http.StatusPreconditionRequired, "reset requires confirm=true")
		return
	}
	if err := h.OrnamentService.Reset(r.Context(), scope); err != nil {
		writeServiceError(w, err)
		return
	}
	h.Logger.Infow("ornaments reset", "scope", scope.String())
	writeJSON(w, http.StatusOK, SaveResponse{Success: true, Message: "Ornaments reset"})
}

// Sections отдаёт число видимых орнаментов по секциям
func (h *OrnamentHandler) Sections(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scope kind")
		return
	}
	counts, err := h.OrnamentService.SectionCounts(r.Context(), scope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make(map[string]int, len(ornament.Sections()))
	for _, s := range ornament.Sections() {
		out[s.String()] = counts[s]
	}
	writeJSON(w, http.StatusOK, out)
}

// Render отдаёт рендер секции только для чтения в виде слоёв
func (h *OrnamentHandler) Render(w http.ResponseWriter, r *http.Request) {
	views, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// RenderHTML отдаёт тот же рендер HTML-фрагментом
func (h *OrnamentHandler) RenderHTML(w http.ResponseWriter, r *http.Request) {
	views, ok := h.render(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderFragment(w, views); err != nil {
		h.Logger.Errorw("RenderHTML: template error", "error", err)
	}
}

func (h *OrnamentHandler) render(w http.ResponseWriter, r *http.Request) ([]ornament.View, bool) {
	scope, ok := scopeFromRequest(r)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scope kind")
		return nil, false
	}
	section, known := ornament.ParseSection(chi.URLParam(r, "section"))
	if !known {
		writeError(w, http.StatusNotFound, "unknown section")
		return nil, false
	}
	container, err := containerFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	views, err := h.OrnamentService.Render(r.Context(), scope, section, service.RenderOptions{
		Container:       container,
		IntrinsicAspect: r.URL.Query().Get("aspect") == "intrinsic",
	})
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return views, true
}

type queryError string

func (e queryError) Error() string { return string(e) }

func containerFromQuery(r *http.Request) (ornament.Size, error) {
	c := defaultContainer
	q := r.URL.Query()
	if v := q.Get("width"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return c, queryError("width must be a positive number")
		}
		c.Width = f
	}
	if v := q.Get("height"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return c, queryError("height must be a positive number")
		}
		c.Height = f
	}
	return c, nil
}
