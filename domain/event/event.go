// Package event defines the outbound frames pushed to connected clients.
package event

import (
	"time"

	"transit-ops/domain"
)

// OutboundEvent is any payload deliverable to a live connection. Name
// is the wire-level event discriminator.
type OutboundEvent interface {
	Name() string
}

// Connected confirms admission and echoes the verified identity.
type Connected struct {
	Identity domain.ConnectedIdentity `json:"identity"`
}

func (Connected) Name() string { return "connected" }

// StatusSnapshot summarizes the current emergency picture, sent right
// after admission and on request-incident-stats.
type StatusSnapshot struct {
	ActiveCount       int               `json:"activeCount"`
	CriticalCount     int               `json:"criticalCount"`
	ActiveIncidents   []domain.Incident `json:"activeIncidents"`
	CriticalIncidents []domain.Incident `json:"criticalIncidents"`
}

func (StatusSnapshot) Name() string { return "incident-status-snapshot" }

// IncidentAlert carries one notification envelope to its audience.
type IncidentAlert struct {
	Envelope domain.Envelope `json:"envelope"`
}

func (IncidentAlert) Name() string { return "incident-alert" }

// IncidentResolved is the dedicated event for connections subscribed to
// a specific incident's channel.
type IncidentResolved struct {
	IncidentID string             `json:"incidentId"`
	Resolution *domain.Resolution `json:"resolution,omitempty"`
}

func (IncidentResolved) Name() string { return "incident-resolved" }

// SupplementaryAlert is the extra critical-priority notification sent to
// every live connection regardless of channel membership.
type SupplementaryAlert struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Tag   string         `json:"tag"`
	Data  map[string]any `json:"data,omitempty"`
}

func (SupplementaryAlert) Name() string { return "supplementary-alert" }

// IncidentDetails answers a get-incident-details action.
type IncidentDetails struct {
	Incident domain.Incident `json:"incident"`
}

func (IncidentDetails) Name() string { return "incident-details" }

// Heartbeat is the periodic liveness signal.
type Heartbeat struct {
	Timestamp      time.Time `json:"timestamp"`
	ConnectedCount int       `json:"connectedCount"`
}

func (Heartbeat) Name() string { return "heartbeat" }

type Pong struct {
	Timestamp time.Time `json:"timestamp"`
}

func (Pong) Name() string { return "pong" }

// Error surfaces a per-connection handler failure to its origin only.
type Error struct {
	Message string `json:"message"`
}

func (Error) Name() string { return "error" }
