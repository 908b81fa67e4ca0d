package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"transit-ops/contract"
	"transit-ops/domain"
	"transit-ops/domain/event"
	"transit-ops/moderation"
	"transit-ops/observability"
)

// Dispatcher composes notification envelopes and fans them out through
// the router. Delivery is best effort: no acknowledgment, no retry, and
// a slow or full sink never blocks delivery to the others. Zero
// reachable recipients is a valid outcome.
type Dispatcher struct {
	log             *slog.Logger
	registry        contract.IRegistry
	router          *Router
	stats           *observability.Stats
	moderator       *moderation.Moderator
	deliveryTimeout time.Duration
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, router *Router,
	stats *observability.Stats, moderator *moderation.Moderator,
	deliveryTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:             log,
		registry:        registry,
		router:          router,
		stats:           stats,
		moderator:       moderator,
		deliveryTimeout: deliveryTimeout,
	}
}

// Dispatch resolves the envelope's audience and emits it once per
// resolved channel. A connection subscribed to two targeted channels
// receives the envelope twice; that duplication is accepted rather than
// tracked. Critical envelopes additionally reach every live connection
// through a supplementary alert, independent of channel membership.
// Returns the live connection count at dispatch time.
func (d *Dispatcher) Dispatch(envelope domain.Envelope) int {
	channels := d.router.Resolve(envelope.RecipientGroups)
	alert := event.IncidentAlert{Envelope: envelope}

	for _, channel := range channels {
		sinks := d.registry.SinksForChannel(channel)
		d.emit(sinks, alert)
	}

	if envelope.Priority == domain.PriorityCritical {
		supplementary := event.SupplementaryAlert{
			Title: envelope.Title,
			Body:  envelope.Message,
			Tag:   "critical-alert",
			Data:  map[string]any{"incidentId": envelope.IncidentID, "kind": envelope.Kind},
		}
		d.emit(d.registry.AllSinks(), supplementary)
		d.stats.IncrSupplementaryAlerts()
	}

	d.stats.IncrAlertsDispatched()
	count := d.registry.Count()
	d.log.Debug(fmt.Sprintf("Dispatched %s to %d channels, %d connections live",
		envelope.Kind, len(channels), count))
	return count
}

// OnIncidentCreated notifies about a freshly reported incident. Low
// priority incidents only concern system operators; anything above goes
// to everyone.
func (d *Dispatcher) OnIncidentCreated(incident domain.Incident) int {
	groups := []domain.RecipientGroup{domain.GroupAll}
	if incident.Priority == domain.PriorityLow {
		groups = []domain.RecipientGroup{domain.GroupSystemOperators}
	}
	return d.Dispatch(d.incidentEnvelope("incident-created", incident, incident.Description, groups))
}

// OnIncidentResolved notifies system operators, and sends a dedicated
// resolved event to every connection subscribed to this incident's
// channel.
func (d *Dispatcher) OnIncidentResolved(incident domain.Incident) int {
	message := "Incident resolved"
	if incident.Resolution != nil {
		message = incident.Resolution.Summary
	}
	groups := []domain.RecipientGroup{domain.GroupSystemOperators}
	count := d.Dispatch(d.incidentEnvelope("incident-resolved", incident, message, groups))

	subscribers := d.registry.SinksForChannel(domain.IncidentChannel(incident.ID))
	d.emit(subscribers, event.IncidentResolved{
		IncidentID: incident.ID,
		Resolution: incident.Resolution,
	})
	return count
}

// OnIncidentEscalated alerts everyone that an incident got worse.
func (d *Dispatcher) OnIncidentEscalated(incident domain.Incident) int {
	message := fmt.Sprintf("Escalated to level %d", incident.EscalationLevel)
	groups := []domain.RecipientGroup{domain.GroupAll}
	return d.Dispatch(d.incidentEnvelope("incident-escalated", incident, message, groups))
}

// BroadcastSystemMessage delivers an ad-hoc notification to the caller
// supplied audience. The text is masked against the censored word list
// before leaving the system.
func (d *Dispatcher) BroadcastSystemMessage(message string, priority domain.Priority,
	groups []domain.RecipientGroup) int {
	if d.moderator != nil {
		message = d.moderator.Censor(message)
	}
	d.stats.IncrBroadcasts()
	return d.Dispatch(domain.Envelope{
		ID:              uuid.NewString(),
		Kind:            "system-broadcast",
		Title:           "System notice",
		Message:         message,
		Priority:        priority,
		Timestamp:       time.Now().UTC(),
		RecipientGroups: groups,
	})
}

func (d *Dispatcher) incidentEnvelope(kind string, incident domain.Incident,
	message string, groups []domain.RecipientGroup) domain.Envelope {
	return domain.Envelope{
		ID:              uuid.NewString(),
		Kind:            kind,
		Title:           incident.Title,
		Message:         message,
		Priority:        incident.Priority,
		IncidentID:      incident.ID,
		Timestamp:       time.Now().UTC(),
		RecipientGroups: groups,
	}
}

// emit pushes one event to each sink under an individual delivery
// timeout. Sinks run in their own goroutine so one stalled connection
// cannot hold back the rest of the audience.
func (d *Dispatcher) emit(sinks []contract.EventSink, e event.OutboundEvent) {
	for _, sink := range sinks {
		go func(sink contract.EventSink) {
			ctx, cancel := context.WithTimeout(context.Background(), d.deliveryTimeout)
			defer cancel()
			if err := sink.Consume(ctx, e); err != nil {
				d.stats.IncrEventsDropped()
				d.log.Debug("Event lost for one connection", "event", e.Name(), "err", err)
			}
		}(sink)
	}
}
