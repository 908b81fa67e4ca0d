package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"transit-ops/domain"
	"transit-ops/errors"
	"transit-ops/mocks"
	"transit-ops/observability"
)

type restFixture struct {
	incidents  *mocks.MockIIncidentStore
	dispatcher *mocks.MockIDispatcher
	registry   *mocks.MockIRegistry
	router     *chi.Mux
}

func newRestFixture(t *testing.T) *restFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	incidents := mocks.NewMockIIncidentStore(ctrl)
	dispatcher := mocks.NewMockIDispatcher(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	handlers := NewHandlers(log, incidents, dispatcher, registry, observability.NewStats())

	router := chi.NewRouter()
	router.Get("/healthz", handlers.Health)
	router.Route("/api/incidents", func(r chi.Router) {
		r.Post("/", handlers.CreateIncident)
		r.Get("/", handlers.ListIncidents)
		r.Get("/critical", handlers.ListCritical)
		r.Get("/search", handlers.SearchIncidents)
		r.Get("/{id}", handlers.GetIncident)
		r.Post("/{id}/escalate", handlers.EscalateIncident)
		r.Post("/{id}/assign", handlers.AssignIncident)
		r.Post("/{id}/resolve", handlers.ResolveIncident)
		r.Post("/{id}/close", handlers.CloseIncident)
	})
	router.Post("/api/broadcast", handlers.Broadcast)

	return &restFixture{
		incidents:  incidents,
		dispatcher: dispatcher,
		registry:   registry,
		router:     router,
	}
}

func (f *restFixture) do(t *testing.T, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, httptest.NewRequest(method, target, body))
	return recorder
}

func TestRest_CreateIncident_Persists_And_Notifies(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)

	// Given the store accepts the record and two connections are reached
	fixture.incidents.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(incident domain.Incident) (domain.Incident, error) {
			req.Equal("Signal failure", incident.Title)
			req.Equal(domain.PriorityHigh, incident.Priority)
			req.Equal(1, incident.EscalationLevel)
			return incident, nil
		})
	fixture.dispatcher.EXPECT().OnIncidentCreated(gomock.Any()).Return(2)

	// When reporting an incident
	recorder := fixture.do(t, http.MethodPost, "/api/incidents", map[string]any{
		"type":          "signal-failure",
		"title":         "Signal failure",
		"priority":      "high",
		"severity":      "high",
		"reportedBy":    "dana",
		"affectedUsers": 120,
	})

	// Then the response carries the record and the recipient count
	req.Equal(http.StatusCreated, recorder.Code)
	var response struct {
		Incident   domain.Incident `json:"incident"`
		Recipients int             `json:"recipients"`
	}
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	req.Equal("Signal failure", response.Incident.Title)
	req.Equal(2, response.Recipients)
}

func TestRest_CreateIncident_Rejects_Invalid_Payload(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)

	// When reporting with an unknown priority, the store is never touched
	recorder := fixture.do(t, http.MethodPost, "/api/incidents", map[string]any{
		"type":       "signal-failure",
		"title":      "Signal failure",
		"priority":   "urgent",
		"severity":   "high",
		"reportedBy": "dana",
	})

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestRest_GetIncident_Maps_Not_Found(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	fixture.incidents.EXPECT().Get("ghost").
		Return(domain.Incident{}, errors.ErrIncidentNotFound)

	recorder := fixture.do(t, http.MethodGet, "/api/incidents/ghost", nil)

	req.Equal(http.StatusNotFound, recorder.Code)
}

func TestRest_Escalate_Notifies_Everyone(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	escalated := domain.NewIncident("incident-1", "fire", "Station fire", "", "", "dana",
		domain.PriorityCritical, domain.SeverityCritical, 80)
	fixture.incidents.EXPECT().Escalate("incident-1", "ops").Return(escalated, nil)
	fixture.dispatcher.EXPECT().OnIncidentEscalated(escalated).Return(5)

	recorder := fixture.do(t, http.MethodPost, "/api/incidents/incident-1/escalate",
		map[string]string{"actor": "ops"})

	req.Equal(http.StatusOK, recorder.Code)
}

func TestRest_Escalate_Retired_Incident_Conflicts(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	fixture.incidents.EXPECT().Escalate("incident-1", "ops").
		Return(domain.Incident{}, errors.ErrIncidentRetired)

	recorder := fixture.do(t, http.MethodPost, "/api/incidents/incident-1/escalate",
		map[string]string{"actor": "ops"})

	req.Equal(http.StatusConflict, recorder.Code)
}

func TestRest_Resolve_Notifies_Subscribers(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	resolved := domain.NewIncident("incident-1", "fire", "Station fire", "", "", "dana",
		domain.PriorityHigh, domain.SeverityHigh, 80)
	req.NoError(resolved.Resolve("Extinguished", "ops"))
	fixture.incidents.EXPECT().Resolve("incident-1", "Extinguished", "ops").Return(resolved, nil)
	fixture.dispatcher.EXPECT().OnIncidentResolved(resolved).Return(3)

	recorder := fixture.do(t, http.MethodPost, "/api/incidents/incident-1/resolve",
		map[string]string{"resolution": "Extinguished", "actor": "ops"})

	req.Equal(http.StatusOK, recorder.Code)
}

func TestRest_Assign_And_Close_Do_Not_Notify(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	record := domain.NewIncident("incident-1", "fire", "Station fire", "", "", "dana",
		domain.PriorityHigh, domain.SeverityHigh, 80)
	fixture.incidents.EXPECT().AssignTeam("incident-1", "fire-brigade", "ops").Return(record, nil)
	fixture.incidents.EXPECT().Close("incident-1", "ops").Return(record, nil)

	assignRecorder := fixture.do(t, http.MethodPost, "/api/incidents/incident-1/assign",
		map[string]string{"team": "fire-brigade", "actor": "ops"})
	closeRecorder := fixture.do(t, http.MethodPost, "/api/incidents/incident-1/close",
		map[string]string{"actor": "ops"})

	req.Equal(http.StatusOK, assignRecorder.Code)
	req.Equal(http.StatusOK, closeRecorder.Code)
}

func TestRest_Search_Requires_A_Query(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)

	recorder := fixture.do(t, http.MethodGet, "/api/incidents/search", nil)

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestRest_Search_Returns_Matches(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	match := domain.NewIncident("incident-1", "flood", "Tunnel flooding", "", "", "dana",
		domain.PriorityHigh, domain.SeverityHigh, 50)
	fixture.incidents.EXPECT().Search(gomock.Any(), "flooding").
		Return([]domain.Incident{match}, nil)

	recorder := fixture.do(t, http.MethodGet, "/api/incidents/search?q=flooding", nil)

	req.Equal(http.StatusOK, recorder.Code)
	var incidents []domain.Incident
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &incidents))
	req.Len(incidents, 1)
	req.Equal("incident-1", incidents[0].ID)
}

func TestRest_Broadcast_Rejects_Free_Form_Audience(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)

	// When broadcasting to a tag outside the closed set, the dispatcher
	// is never invoked
	recorder := fixture.do(t, http.MethodPost, "/api/broadcast", map[string]any{
		"message":         "Evacuate",
		"priority":        "critical",
		"recipientGroups": []string{"everybody"},
	})

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestRest_Broadcast_Dispatches_To_Valid_Audience(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	fixture.dispatcher.EXPECT().
		BroadcastSystemMessage("Evacuate platform 2", domain.PriorityCritical,
			[]domain.RecipientGroup{domain.GroupEndUsers, domain.RoleGroup(domain.RoleFleetOperator)}).
		Return(7)

	recorder := fixture.do(t, http.MethodPost, "/api/broadcast", map[string]any{
		"message":         "Evacuate platform 2",
		"priority":        "critical",
		"recipientGroups": []string{"end-users", "role:fleet-operator"},
	})

	req.Equal(http.StatusOK, recorder.Code)
	var response map[string]int
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	req.Equal(7, response["recipients"])
}

func TestRest_Health_Reports_Connection_Count(t *testing.T) {
	req := require.New(t)
	fixture := newRestFixture(t)
	fixture.registry.EXPECT().Count().Return(4)

	recorder := fixture.do(t, http.MethodGet, "/healthz", nil)

	req.Equal(http.StatusOK, recorder.Code)
	var body map[string]any
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	req.Equal("ok", body["status"])
	req.EqualValues(4, body["connections"])
}
