package domain

import (
	"strconv"
	"time"

	"transit-ops/errors"
)

type IncidentStatus string

const (
	StatusActive    IncidentStatus = "active"
	StatusResponded IncidentStatus = "responded"
	StatusResolved  IncidentStatus = "resolved"
	StatusClosed    IncidentStatus = "closed"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// MaxEscalationLevel caps how far an incident can escalate.
const MaxEscalationLevel = 5

// TimelineEntry is one append-only audit record. Entries are never
// mutated or removed once appended.
type TimelineEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Details   string    `json:"details,omitempty"`
}

type AssignedTeam struct {
	Name         string    `json:"name"`
	ResponseTime time.Time `json:"responseTime"`
}

type Resolution struct {
	Summary    string    `json:"summary"`
	ResolvedBy string    `json:"resolvedBy"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// Incident is an emergency record driven through the lifecycle
// active -> responded -> resolved -> closed. The record is never hard
// deleted: IsActive marks logical retirement.
type Incident struct {
	ID                   string          `json:"id"`
	Type                 string          `json:"type"`
	Priority             Priority        `json:"priority"`
	Severity             Severity        `json:"severity"`
	Status               IncidentStatus  `json:"status"`
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Location             string          `json:"location,omitempty"`
	ReportedBy           string          `json:"reportedBy"`
	AssignedTeam         *AssignedTeam   `json:"assignedTeam,omitempty"`
	Timeline             []TimelineEntry `json:"timeline"`
	Resolution           *Resolution     `json:"resolution,omitempty"`
	EscalationLevel      int             `json:"escalationLevel"`
	AffectedUsers        int             `json:"affectedUsers"`
	IsActive             bool            `json:"isActive"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	ActualResolutionTime *time.Time      `json:"actualResolutionTime,omitempty"`
}

// NewIncident builds a freshly reported incident at escalation level 1
// with an initial "reported" timeline entry.
func NewIncident(id, incidentType, title, description, location, reportedBy string,
	priority Priority, severity Severity, affectedUsers int) Incident {
	now := time.Now().UTC()
	return Incident{
		ID:              id,
		Type:            incidentType,
		Priority:        priority,
		Severity:        severity,
		Status:          StatusActive,
		Title:           title,
		Description:     description,
		Location:        location,
		ReportedBy:      reportedBy,
		Timeline: []TimelineEntry{{
			Timestamp: now,
			Action:    "reported",
			Actor:     reportedBy,
		}},
		EscalationLevel: 1,
		AffectedUsers:   affectedUsers,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Escalate raises the escalation level by one, capped at MaxEscalationLevel,
// and recomputes priority/severity from the level thresholds:
// level >= 4 forces critical, level == 3 forces high, level <= 2 leaves
// the reported values untouched. The level never decreases.
func (i *Incident) Escalate(actor string) error {
	if !i.IsActive {
		return errors.ErrIncidentRetired
	}
	if i.EscalationLevel < MaxEscalationLevel {
		i.EscalationLevel++
	}
	switch {
	case i.EscalationLevel >= 4:
		i.Priority = PriorityCritical
		i.Severity = SeverityCritical
	case i.EscalationLevel == 3:
		i.Priority = PriorityHigh
		i.Severity = SeverityHigh
	}
	i.append("escalated", actor, "escalation level "+strconv.Itoa(i.EscalationLevel))
	return nil
}

// AssignTeam records the responding team and moves the incident to the
// responded state with a response time stamp.
func (i *Incident) AssignTeam(team, actor string) error {
	if !i.IsActive {
		return errors.ErrIncidentRetired
	}
	now := time.Now().UTC()
	i.AssignedTeam = &AssignedTeam{Name: team, ResponseTime: now}
	i.Status = StatusResponded
	i.append("assigned", actor, team)
	return nil
}

// Resolve closes out the emergency with a resolution record. It is
// deliberately allowed before any team assignment: some incidents
// self-resolve without a dispatched team.
func (i *Incident) Resolve(summary, actor string) error {
	if !i.IsActive {
		return errors.ErrIncidentRetired
	}
	now := time.Now().UTC()
	i.Resolution = &Resolution{Summary: summary, ResolvedBy: actor, ResolvedAt: now}
	i.Status = StatusResolved
	i.ActualResolutionTime = &now
	i.append("resolved", actor, summary)
	return nil
}

// Close retires the incident. No transition is permitted afterwards.
func (i *Incident) Close(actor string) error {
	if !i.IsActive {
		return errors.ErrIncidentRetired
	}
	i.Status = StatusClosed
	i.IsActive = false
	i.append("closed", actor, "")
	return nil
}

// AddTimelineEntry appends an audit record. Usable at any state of a
// live incident.
func (i *Incident) AddTimelineEntry(action, actor, details string) error {
	if !i.IsActive {
		return errors.ErrIncidentRetired
	}
	i.append(action, actor, details)
	return nil
}

func (i *Incident) append(action, actor, details string) {
	now := time.Now().UTC()
	i.Timeline = append(i.Timeline, TimelineEntry{
		Timestamp: now,
		Action:    action,
		Actor:     actor,
		Details:   details,
	})
	i.UpdatedAt = now
}
