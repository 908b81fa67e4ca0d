// Package observability aggregates runtime counters for the health
// endpoint and the monitoring worker.
package observability

import "sync/atomic"

// Stats tracks delivery counters with atomic increments so the dispatch
// path never takes a lock for bookkeeping.
type Stats struct {
	AlertsDispatched    uint64
	SupplementaryAlerts uint64
	EventsDropped       uint64
	HandshakesRejected  uint64
	Broadcasts          uint64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) IncrAlertsDispatched()    { atomic.AddUint64(&s.AlertsDispatched, 1) }
func (s *Stats) IncrSupplementaryAlerts() { atomic.AddUint64(&s.SupplementaryAlerts, 1) }
func (s *Stats) IncrEventsDropped()       { atomic.AddUint64(&s.EventsDropped, 1) }
func (s *Stats) IncrHandshakesRejected()  { atomic.AddUint64(&s.HandshakesRejected, 1) }
func (s *Stats) IncrBroadcasts()          { atomic.AddUint64(&s.Broadcasts, 1) }

// Snapshot is a point-in-time copy safe for JSON rendering.
type Snapshot struct {
	AlertsDispatched    uint64 `json:"alerts_dispatched"`
	SupplementaryAlerts uint64 `json:"supplementary_alerts"`
	EventsDropped       uint64 `json:"events_dropped"`
	HandshakesRejected  uint64 `json:"handshakes_rejected"`
	Broadcasts          uint64 `json:"broadcasts"`
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		AlertsDispatched:    atomic.LoadUint64(&s.AlertsDispatched),
		SupplementaryAlerts: atomic.LoadUint64(&s.SupplementaryAlerts),
		EventsDropped:       atomic.LoadUint64(&s.EventsDropped),
		HandshakesRejected:  atomic.LoadUint64(&s.HandshakesRejected),
		Broadcasts:          atomic.LoadUint64(&s.Broadcasts),
	}
}
