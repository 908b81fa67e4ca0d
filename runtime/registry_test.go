package runtime

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"transit-ops/domain"
	"transit-ops/domain/event"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, e event.OutboundEvent) error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func identityFor(userID string, role domain.Role) domain.ConnectedIdentity {
	return domain.ConnectedIdentity{
		UserID:       userID,
		ConnectionID: uuid.NewString(),
		DisplayName:  "Dana",
		Role:         role,
	}
}

func TestRegistry_Admit_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	identity := identityFor("user-1", domain.RoleSystemOperator)
	sink := Sink{}

	// Given no connection is registered
	req.Zero(registry.Count())
	req.False(registry.IsUserConnected("user-1"))

	// When an authenticated connection is admitted
	registry.Admit(identity, sink)

	// Then both views know the connection
	req.Equal(1, registry.Count())
	req.True(registry.IsUserConnected("user-1"))
	req.Equal([]string{identity.ConnectionID}, registry.ConnectionsOf("user-1"))

	// And the connection joined its role channels
	for _, channel := range domain.ChannelsForRole(domain.RoleSystemOperator) {
		req.Contains(registry.SinksForChannel(channel), sink)
	}
}

func TestRegistry_Remove_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	identity := identityFor("user-1", domain.RoleFleetOperator)

	// Given an admitted connection
	registry.Admit(identity, Sink{})

	// When the connection is removed
	registry.Remove(identity.ConnectionID)

	// Then no trace remains in either view
	req.Zero(registry.Count())
	req.False(registry.IsUserConnected("user-1"))
	req.Empty(registry.ConnectionsOf("user-1"))

	// And every role channel was cleaned up
	for _, channel := range domain.ChannelsForRole(domain.RoleFleetOperator) {
		req.Nil(registry.SinksForChannel(channel))
	}
}

func TestRegistry_Remove_Unknown_Connection_Is_A_Noop(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	identity := identityFor("user-1", domain.RoleEndUser)
	registry.Admit(identity, Sink{})

	// When removing a connection that never existed
	registry.Remove("no-such-connection")

	// Then the registered connection is untouched
	req.Equal(1, registry.Count())
	req.True(registry.IsUserConnected("user-1"))
}

func TestRegistry_Same_User_Multiple_Devices(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	phone := identityFor("user-1", domain.RoleRouteOperator)
	laptop := identityFor("user-1", domain.RoleRouteOperator)

	// Given one user connected from two devices
	registry.Admit(phone, Sink{})
	registry.Admit(laptop, Sink{})
	req.Equal(2, registry.Count())
	req.Len(registry.ConnectionsOf("user-1"), 2)

	// When one device disconnects
	registry.Remove(phone.ConnectionID)

	// Then the user is still connected through the other device
	req.True(registry.IsUserConnected("user-1"))
	req.Equal([]string{laptop.ConnectionID}, registry.ConnectionsOf("user-1"))

	// When the last device disconnects
	registry.Remove(laptop.ConnectionID)

	// Then the user key is gone, not left behind as an empty set
	req.False(registry.IsUserConnected("user-1"))
	_, leaked := registry.userConns["user-1"]
	req.False(leaked)
}

func TestRegistry_JoinChannel_And_LeaveChannel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	identity := identityFor("user-1", domain.RoleCustomerService)
	sink := Sink{}
	registry.Admit(identity, sink)
	channel := domain.IncidentChannel("incident-42")

	// When the connection subscribes to an incident channel
	registry.JoinChannel(identity.ConnectionID, channel)

	// Then its sink is reachable through that channel
	req.Contains(registry.SinksForChannel(channel), sink)

	// When it unsubscribes
	registry.LeaveChannel(identity.ConnectionID, channel)

	// Then the empty channel entry is removed entirely
	req.Nil(registry.SinksForChannel(channel))
	_, leaked := registry.channelMembers[channel]
	req.False(leaked)
}

func TestRegistry_Remove_Leaves_Joined_Incident_Channels(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	watcher := identityFor("user-1", domain.RoleSystemOperator)
	other := identityFor("user-2", domain.RoleSystemOperator)
	otherSink := Sink{}
	registry.Admit(watcher, Sink{})
	registry.Admit(other, otherSink)
	channel := domain.IncidentChannel("incident-7")
	registry.JoinChannel(watcher.ConnectionID, channel)
	registry.JoinChannel(other.ConnectionID, channel)

	// When a subscribed connection disconnects
	registry.Remove(watcher.ConnectionID)

	// Then only the remaining subscriber is still reachable
	sinks := registry.SinksForChannel(channel)
	req.Len(sinks, 1)
	req.Contains(sinks, otherSink)
}

func TestRegistry_JoinChannel_Unknown_Connection_Is_A_Noop(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	channel := domain.IncidentChannel("incident-1")

	// When an unknown connection tries to subscribe
	registry.JoinChannel("ghost", channel)

	// Then no channel entry is created
	req.Nil(registry.SinksForChannel(channel))
}

func TestRegistry_Snapshot_And_AllSinks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	registry.Admit(identityFor("user-1", domain.RoleEndUser), Sink{})
	registry.Admit(identityFor("user-2", domain.RoleFleetOperator), Sink{})

	// When taking a snapshot
	identities := registry.Snapshot()
	sinks := registry.AllSinks()

	// Then every live connection is present exactly once
	req.Len(identities, 2)
	req.Len(sinks, 2)
}
