//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"transit-ops/domain"
	"transit-ops/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one live connection's delivery endpoint.
type EventSink interface {
	Consume(ctx context.Context, e event.OutboundEvent) error
}

// IRegistry is the in-memory bookkeeping of live connections, their
// owning identities, and channel memberships.
type IRegistry interface {
	Admit(identity domain.ConnectedIdentity, sink EventSink)
	Remove(connectionID string)
	IsUserConnected(userID string) bool
	ConnectionsOf(userID string) []string
	Count() int
	Snapshot() []domain.ConnectedIdentity
	Touch(connectionID string)
	JoinChannel(connectionID string, channel domain.Channel)
	LeaveChannel(connectionID string, channel domain.Channel)
	SinksForChannel(channel domain.Channel) []EventSink
	AllSinks() []EventSink
}

// IDispatcher composes notification envelopes and fans them out.
// Every entrypoint returns the live connection count at dispatch time.
type IDispatcher interface {
	Dispatch(envelope domain.Envelope) int
	OnIncidentCreated(incident domain.Incident) int
	OnIncidentResolved(incident domain.Incident) int
	OnIncidentEscalated(incident domain.Incident) int
	BroadcastSystemMessage(message string, priority domain.Priority, groups []domain.RecipientGroup) int
}

// IIncidentStore is the persistence collaborator for emergency records.
// Lifecycle mutators return the updated record for broadcasting.
type IIncidentStore interface {
	Create(incident domain.Incident) (domain.Incident, error)
	Get(id string) (domain.Incident, error)
	FindActiveAndResponded() ([]domain.Incident, error)
	FindCritical() ([]domain.Incident, error)
	Escalate(id, actor string) (domain.Incident, error)
	AssignTeam(id, team, actor string) (domain.Incident, error)
	Resolve(id, summary, actor string) (domain.Incident, error)
	Close(id, actor string) (domain.Incident, error)
	AddTimelineEntry(id, action, actor, details string) (domain.Incident, error)
	Search(ctx context.Context, query string) ([]domain.Incident, error)
}

// IUserStore holds account records looked up during the handshake.
type IUserStore interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(user domain.User, password string) (string, error)
}
