// Package runtime wires connection bookkeeping, audience routing, and
// alert fan-out. It orchestrates the system without containing business
// logic or domain rules.
package runtime

import (
	"log/slog"
	"sync"
	"time"

	"transit-ops/contract"
	"transit-ops/domain"
)

type Set map[string]struct{}

type session struct {
	identity domain.ConnectedIdentity
	sink     contract.EventSink
	channels map[domain.Channel]struct{}
}

// Registry tracks live connections under two consistent views:
// connectionID -> session and userID -> set of connectionIDs. A userID
// key exists if and only if its connection set is non-empty. It is
// constructed at server start and injected into every handler; both
// maps are guarded by one mutex since handlers run on many goroutines.
type Registry struct {
	mu             sync.RWMutex
	log            *slog.Logger
	sessions       map[string]*session
	userConns      map[string]Set
	channelMembers map[domain.Channel]Set
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:            log,
		sessions:       make(map[string]*session),
		userConns:      make(map[string]Set),
		channelMembers: make(map[domain.Channel]Set),
	}
}

// Admit registers an authenticated connection and joins it to the
// channels derived from its role. Role-derived membership is fixed for
// the life of the connection; only incident channels are joined later.
func (r *Registry) Admit(identity domain.ConnectedIdentity, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &session{
		identity: identity,
		sink:     sink,
		channels: make(map[domain.Channel]struct{}),
	}
	r.sessions[identity.ConnectionID] = s

	if _, ok := r.userConns[identity.UserID]; !ok {
		r.userConns[identity.UserID] = make(Set)
	}
	r.userConns[identity.UserID][identity.ConnectionID] = struct{}{}

	for _, channel := range domain.ChannelsForRole(identity.Role) {
		r.joinLocked(s, identity.ConnectionID, channel)
	}
}

// Remove deletes a connection from both views and from every channel it
// joined. It cleans up empty per-user and per-channel sets so neither
// map leaks keys over time.
func (r *Registry) Remove(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connectionID]
	if !ok {
		return
	}
	delete(r.sessions, connectionID)

	if conns, ok := r.userConns[s.identity.UserID]; ok {
		delete(conns, connectionID)
		if len(conns) == 0 {
			delete(r.userConns, s.identity.UserID)
		}
	}

	for channel := range s.channels {
		r.leaveLocked(connectionID, channel)
	}
}

func (r *Registry) IsUserConnected(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.userConns[userID]) > 0
}

func (r *Registry) ConnectionsOf(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := make([]string, 0, len(r.userConns[userID]))
	for connectionID := range r.userConns[userID] {
		conns = append(conns, connectionID)
	}
	return conns
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Snapshot returns the identities of every live connection at call time.
func (r *Registry) Snapshot() []domain.ConnectedIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identities := make([]domain.ConnectedIdentity, 0, len(r.sessions))
	for _, s := range r.sessions {
		identities = append(identities, s.identity)
	}
	return identities
}

// Touch refreshes the lastSeen stamp of a connection on inbound traffic.
func (r *Registry) Touch(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[connectionID]; ok {
		s.identity.LastSeen = time.Now().UTC()
	}
}

// JoinChannel subscribes a live connection to an opt-in channel, used
// for per-incident subscriptions.
func (r *Registry) JoinChannel(connectionID string, channel domain.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[connectionID]
	if !ok {
		return
	}
	r.joinLocked(s, connectionID, channel)
}

func (r *Registry) LeaveChannel(connectionID string, channel domain.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[connectionID]
	if !ok {
		return
	}
	delete(s.channels, channel)
	r.leaveLocked(connectionID, channel)
}

// SinksForChannel retrieves all active delivery endpoints for a channel.
// It performs a two-step lookup: member connection IDs first, then their
// sinks, so a connection in many channels is still managed in one place.
// Returns nil if the channel has no members.
func (r *Registry) SinksForChannel(channel domain.Channel) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.channelMembers[channel]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connectionID := range members {
		if s, exists := r.sessions[connectionID]; exists {
			activeSinks = append(activeSinks, s.sink)
		}
	}
	return activeSinks
}

// AllSinks returns every live sink, independent of channel membership.
// Used for heartbeats and critical supplementary alerts.
func (r *Registry) AllSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for _, s := range r.sessions {
		sinks = append(sinks, s.sink)
	}
	return sinks
}

func (r *Registry) joinLocked(s *session, connectionID string, channel domain.Channel) {
	s.channels[channel] = struct{}{}
	if _, ok := r.channelMembers[channel]; !ok {
		r.channelMembers[channel] = make(Set)
	}
	r.channelMembers[channel][connectionID] = struct{}{}
}

func (r *Registry) leaveLocked(connectionID string, channel domain.Channel) {
	if members, ok := r.channelMembers[channel]; ok {
		delete(members, connectionID)

		// If no one is left in the channel, remove the entry entirely
		if len(members) == 0 {
			delete(r.channelMembers, channel)
		}
	}
}
