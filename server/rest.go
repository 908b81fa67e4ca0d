package server

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"transit-ops/contract"
	"transit-ops/domain"
	"transit-ops/errors"
	"transit-ops/observability"
)

// Handlers is the REST collaborator layer: it mutates incident records
// through the store and drives the dispatcher's four notify entrypoints.
// Store errors propagate to the HTTP response unmodified since the
// caller's outcome depends on them.
type Handlers struct {
	log        *slog.Logger
	incidents  contract.IIncidentStore
	dispatcher contract.IDispatcher
	registry   contract.IRegistry
	stats      *observability.Stats
	validate   *validator.Validate
}

func NewHandlers(log *slog.Logger, incidents contract.IIncidentStore,
	dispatcher contract.IDispatcher, registry contract.IRegistry,
	stats *observability.Stats) *Handlers {
	return &Handlers{
		log:        log,
		incidents:  incidents,
		dispatcher: dispatcher,
		registry:   registry,
		stats:      stats,
		validate:   validator.New(),
	}
}

// NewRouter mounts the REST surface plus the websocket upgrade route.
func NewRouter(h *Handlers, socket *SocketServer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Get("/ws", socket.HandleConnection)

	r.Route("/api/incidents", func(r chi.Router) {
		r.Post("/", h.CreateIncident)
		r.Get("/", h.ListIncidents)
		r.Get("/critical", h.ListCritical)
		r.Get("/search", h.SearchIncidents)
		r.Get("/{id}", h.GetIncident)
		r.Post("/{id}/escalate", h.EscalateIncident)
		r.Post("/{id}/assign", h.AssignIncident)
		r.Post("/{id}/resolve", h.ResolveIncident)
		r.Post("/{id}/close", h.CloseIncident)
	})
	r.Post("/api/broadcast", h.Broadcast)

	return r
}

type CreateIncidentRequest struct {
	Type          string `json:"type" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Priority      string `json:"priority" validate:"required,oneof=low medium high critical"`
	Severity      string `json:"severity" validate:"required,oneof=low medium high critical"`
	ReportedBy    string `json:"reportedBy" validate:"required"`
	AffectedUsers int    `json:"affectedUsers" validate:"gte=0"`
}

type actorRequest struct {
	Actor string `json:"actor" validate:"required"`
}

type assignRequest struct {
	Team  string `json:"team" validate:"required"`
	Actor string `json:"actor" validate:"required"`
}

type resolveRequest struct {
	Resolution string `json:"resolution" validate:"required"`
	Actor      string `json:"actor" validate:"required"`
}

type BroadcastRequest struct {
	Message         string   `json:"message" validate:"required"`
	Priority        string   `json:"priority" validate:"required,oneof=low medium high critical"`
	RecipientGroups []string `json:"recipientGroups" validate:"required,min=1"`
}

type notifiedResponse struct {
	Incident  domain.Incident `json:"incident"`
	Recipients int            `json:"recipients"`
}

func (h *Handlers) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var req CreateIncidentRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	incident := domain.NewIncident(uuid.NewString(), req.Type, req.Title,
		req.Description, req.Location, req.ReportedBy,
		domain.Priority(req.Priority), domain.Severity(req.Severity), req.AffectedUsers)

	created, err := h.incidents.Create(incident)
	if err != nil {
		h.writeError(w, err)
		return
	}

	recipients := h.dispatcher.OnIncidentCreated(created)
	h.writeJSON(w, http.StatusCreated, notifiedResponse{Incident: created, Recipients: recipients})
}

func (h *Handlers) GetIncident(w http.ResponseWriter, r *http.Request) {
	incident, err := h.incidents.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handlers) ListIncidents(w http.ResponseWriter, _ *http.Request) {
	incidents, err := h.incidents.FindActiveAndResponded()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, incidents)
}

func (h *Handlers) ListCritical(w http.ResponseWriter, _ *http.Request) {
	incidents, err := h.incidents.FindCritical()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, incidents)
}

func (h *Handlers) SearchIncidents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, errors.ErrInvalidPayload)
		return
	}
	incidents, err := h.incidents.Search(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, incidents)
}

func (h *Handlers) EscalateIncident(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.incidents.Escalate(chi.URLParam(r, "id"), req.Actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	recipients := h.dispatcher.OnIncidentEscalated(updated)
	h.writeJSON(w, http.StatusOK, notifiedResponse{Incident: updated, Recipients: recipients})
}

func (h *Handlers) AssignIncident(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.incidents.AssignTeam(chi.URLParam(r, "id"), req.Team, req.Actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) ResolveIncident(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.incidents.Resolve(chi.URLParam(r, "id"), req.Resolution, req.Actor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	recipients := h.dispatcher.OnIncidentResolved(updated)
	h.writeJSON(w, http.StatusOK, notifiedResponse{Incident: updated, Recipients: recipients})
}

func (h *Handlers) CloseIncident(w http.ResponseWriter, r *http.Request) {
	var req actorRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	updated, err := h.incidents.Close(chi.URLParam(r, "id"), req.Actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// Broadcast delivers an ad-hoc system notification to a caller supplied
// audience. Tags outside the closed recipient set are rejected here at
// the edge instead of silently vanishing in the router.
func (h *Handlers) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req BroadcastRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	groups := make([]domain.RecipientGroup, 0, len(req.RecipientGroups))
	for _, raw := range req.RecipientGroups {
		group, err := domain.ParseRecipientGroup(raw)
		if err != nil {
			h.writeError(w, err)
			return
		}
		groups = append(groups, group)
	}

	recipients := h.dispatcher.BroadcastSystemMessage(req.Message, domain.Priority(req.Priority), groups)
	h.writeJSON(w, http.StatusOK, map[string]int{"recipients": recipients})
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"connections": h.registry.Count(),
		"stats":       h.stats.Snapshot(),
	})
}

func (h *Handlers) decode(r *http.Request, payload any) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return errors.ErrInvalidPayload
	}
	if err := h.validate.Struct(payload); err != nil {
		return errors.ErrInvalidPayload
	}
	return nil
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrIncidentNotFound):
		code = http.StatusNotFound
	case stderrors.Is(err, errors.ErrIncidentRetired):
		code = http.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidPayload),
		stderrors.Is(err, errors.ErrInvalidRecipientGroup):
		code = http.StatusBadRequest
	}
	h.writeJSON(w, code, map[string]string{"error": err.Error()})
}
