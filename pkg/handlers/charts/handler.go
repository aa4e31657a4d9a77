package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/chart-atlas/pkg/adapters"
	"github.com/de-tools/chart-atlas/pkg/models/api"
	"github.com/de-tools/chart-atlas/pkg/models/domain"
	chartservice "github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/de-tools/chart-atlas/pkg/services/config"
	"github.com/de-tools/chart-atlas/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry chartservice.Registry
	sessions session.Manager
	presets  config.PresetRegistry
}

func NewHandler(registry chartservice.Registry, sessions session.Manager, presets config.PresetRegistry) *Handler {
	return &Handler{
		registry: registry,
		sessions: sessions,
		presets:  presets,
	}
}

func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	descriptors := h.registry.List()
	response := make([]api.ChartDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		response = append(response, adapters.MapChartDescriptorDomainToApi(d))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetChartData(w http.ResponseWriter, r *http.Request) {
	kind := domain.ChartKind(chi.URLParam(r, "kind"))

	c, err := h.registry.Get(kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapPointViewsDomainToApi(c.Data()))
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presets.GetPresets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Preset, 0, len(presets))
	for _, p := range presets {
		response = append(response, adapters.MapPresetDomainToApi(p))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.sessions.List(r.Context())
	response := make([]api.Session, 0, len(sessions))
	for _, s := range sessions {
		response = append(response, adapters.MapSessionViewDomainToApi(s))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if req.Kind == "" {
		writeError(w, r, fmt.Errorf("%w: kind is required", domain.ErrInvalidInput))
		return
	}

	var preset *domain.Preset
	if req.Preset != "" {
		p, err := h.presets.GetPreset(ctx, req.Preset)
		if err != nil {
			writeError(w, r, err)
			return
		}
		preset = p
	}

	view, err := h.sessions.Open(ctx, domain.ChartKind(req.Kind), preset, domain.Size{Width: req.Width, Height: req.Height})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapSessionViewDomainToApi(view))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Get(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSessionViewDomainToApi(view))
}

func (h *Handler) PostEvent(w http.ResponseWriter, r *http.Request) {
	var req api.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	in, err := adapters.MapEventApiToDomain(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.sessions.Dispatch(r.Context(), chi.URLParam(r, "session"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSessionViewDomainToApi(view))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(r.Context(), chi.URLParam(r, "session")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StreamSession pushes the session view as server-sent events until the client
// disconnects or the session is closed.
func (h *Handler) StreamSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "session")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates, cancel, err := h.sessions.Subscribe(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-updates:
			if !ok {
				return
			}
			data, err := json.Marshal(adapters.MapSessionViewDomainToApi(view))
			if err != nil {
				logger.Error().Err(err).Str("session", id).Msg("failed to encode session view")
				return
			}
			if _, err := fmt.Fprintf(w, "event: view\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownChart),
		errors.Is(err, domain.ErrPresetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnsupportedSort):
		status = http.StatusBadRequest
	}

	event := zerolog.Ctx(r.Context()).Warn()
	if status == http.StatusInternalServerError {
		event = zerolog.Ctx(r.Context()).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	http.Error(w, err.Error(), status)
}
