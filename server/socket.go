// Package server exposes the websocket endpoint and the REST surface
// driving the alert distribution core.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"transit-ops/auth"
	"transit-ops/contract"
	"transit-ops/domain"
	"transit-ops/domain/event"
	"transit-ops/observability"
	"transit-ops/sink"
)

// Frame is the wire format: one JSON object per message with an event
// discriminator and an event-specific payload.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event string              `json:"event"`
	Data  event.OutboundEvent `json:"data,omitempty"`
}

type subscribePayload struct {
	IncidentID string `json:"incidentId"`
}

type actionPayload struct {
	Action     string          `json:"action"`
	IncidentID string          `json:"incidentId,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// SocketServer owns the persistent connection lifecycle: handshake
// authentication, registry admission, the per-connection read pump, and
// the single writer loop draining the connection's sink.
type SocketServer struct {
	log        *slog.Logger
	upgrader   websocket.Upgrader
	gate       *auth.Gate
	registry   contract.IRegistry
	incidents  contract.IIncidentStore
	stats      *observability.Stats
	bufferSize int
}

func NewSocketServer(log *slog.Logger, gate *auth.Gate, registry contract.IRegistry,
	incidents contract.IIncidentStore, stats *observability.Stats, bufferSize int) *SocketServer {
	return &SocketServer{
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		gate:       gate,
		registry:   registry,
		incidents:  incidents,
		stats:      stats,
		bufferSize: bufferSize,
	}
}

// HandleConnection upgrades the HTTP request, authenticates the
// presented token, and only then admits the connection. Authentication
// failure leaves the registry untouched: the client gets a single error
// frame and the socket closes. A disconnect racing the identity lookup
// cancels the handshake context, so no orphaned registry entry appears
// after the fact.
func (s *SocketServer) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inbound := make(chan Frame)
	go s.readPump(ctx, conn, inbound, cancel)

	user, err := s.gate.Authenticate(ctx, token)
	if err != nil {
		s.stats.IncrHandshakesRejected()
		s.writeFrame(conn, event.Error{Message: "authentication failed"})
		return
	}

	connectionID := uuid.NewString()
	connSink := sink.NewConnSink(s.bufferSize)
	identity := domain.ConnectedIdentity{
		UserID:       user.ID,
		ConnectionID: connectionID,
		DisplayName:  user.DisplayName,
		Role:         user.Role,
		Email:        user.Email,
		LastSeen:     time.Now().UTC(),
	}

	s.registry.Admit(identity, connSink)
	defer s.registry.Remove(connectionID)
	s.log.Info("Connection admitted", "user_id", user.ID, "connection_id", connectionID, "role", user.Role)

	s.writeFrame(conn, event.Connected{Identity: identity})
	if snapshot, err := s.buildSnapshot(); err == nil {
		s.writeFrame(conn, snapshot)
	} else {
		s.log.Error("Failed to build status snapshot", "err", err)
	}

	// Single writer: every socket write happens on this goroutine.
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Connection closed", "connection_id", connectionID)
			return
		case evt := <-connSink.Events:
			if err := s.writeFrame(conn, evt); err != nil {
				s.log.Warn("Failed to push event, dropping connection",
					"connection_id", connectionID, "err", err)
				return
			}
		case frame := <-inbound:
			s.registry.Touch(connectionID)
			if err := s.handleFrame(conn, connectionID, user.ID, frame); err != nil {
				// A handler failure concerns this connection only.
				s.writeFrame(conn, event.Error{Message: err.Error()})
			}
		}
	}
}

// readPump parses inbound frames until the socket errors or closes,
// then cancels the connection context.
func (s *SocketServer) readPump(ctx context.Context, conn *websocket.Conn,
	inbound chan<- Frame, cancel context.CancelFunc) {
	defer cancel()
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		select {
		case inbound <- frame:
		case <-ctx.Done():
			return
		}
	}
}

func (s *SocketServer) handleFrame(conn *websocket.Conn, connectionID, userID string, frame Frame) error {
	switch frame.Event {
	case "ping":
		return s.writeFrame(conn, event.Pong{Timestamp: time.Now().UTC()})

	case "subscribe-incident":
		var payload subscribePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil || payload.IncidentID == "" {
			return fmt.Errorf("subscribe-incident requires an incidentId")
		}
		s.registry.JoinChannel(connectionID, domain.IncidentChannel(payload.IncidentID))
		return nil

	case "unsubscribe-incident":
		var payload subscribePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil || payload.IncidentID == "" {
			return fmt.Errorf("unsubscribe-incident requires an incidentId")
		}
		s.registry.LeaveChannel(connectionID, domain.IncidentChannel(payload.IncidentID))
		return nil

	case "incident-action":
		var payload actionPayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return fmt.Errorf("malformed incident-action payload")
		}
		return s.handleAction(conn, userID, payload)

	default:
		return fmt.Errorf("unknown event %q", frame.Event)
	}
}

func (s *SocketServer) handleAction(conn *websocket.Conn, userID string, payload actionPayload) error {
	switch payload.Action {
	case "get-incident-details":
		incident, err := s.incidents.Get(payload.IncidentID)
		if err != nil {
			return err
		}
		return s.writeFrame(conn, event.IncidentDetails{Incident: incident})

	case "request-incident-stats":
		snapshot, err := s.buildSnapshot()
		if err != nil {
			return err
		}
		return s.writeFrame(conn, snapshot)

	case "mark-notification-read":
		_, err := s.incidents.AddTimelineEntry(payload.IncidentID, "notification-read", userID, "")
		return err

	default:
		return fmt.Errorf("unknown action %q", payload.Action)
	}
}

func (s *SocketServer) buildSnapshot() (event.StatusSnapshot, error) {
	active, err := s.incidents.FindActiveAndResponded()
	if err != nil {
		return event.StatusSnapshot{}, err
	}
	critical, err := s.incidents.FindCritical()
	if err != nil {
		return event.StatusSnapshot{}, err
	}
	return event.StatusSnapshot{
		ActiveCount:       len(active),
		CriticalCount:     len(critical),
		ActiveIncidents:   active,
		CriticalIncidents: critical,
	}, nil
}

func (s *SocketServer) writeFrame(conn *websocket.Conn, e event.OutboundEvent) error {
	return conn.WriteJSON(outboundFrame{Event: e.Name(), Data: e})
}

// bearerToken extracts the identity token from the Authorization header
// or, for browser clients that cannot set headers on the upgrade, from
// the token query parameter.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
