// Package domain contains core concepts of the alert distribution system.
// This file defines roles, channels, and the identity attached to a live
// connection. No runtime, network, or UI logic should be added here.
package domain

import "time"

type Role string

const (
	RoleSystemOperator  Role = "system-operator"
	RoleFleetOperator   Role = "fleet-operator"
	RoleRouteOperator   Role = "route-operator"
	RoleCustomerService Role = "customer-service"
	RoleEndUser         Role = "end-user"
)

// Channel is a named logical subscription group used to target message
// delivery to a subset of live connections.
type Channel string

const (
	ChannelAll             Channel = "all"
	ChannelAdmins          Channel = "admins"
	ChannelSystemOperators Channel = "system-operators"
	ChannelFleetOperators  Channel = "fleet-operators"
	ChannelRouteOperators  Channel = "route-operators"
	ChannelCustomerService Channel = "customer-service"
	ChannelEndUsers        Channel = "end-users"
)

// roleChannels maps each role to the channels joined at admission time.
// Membership is a static declarative table rather than branching logic,
// so supporting a new role only requires a new entry.
// Operator roles additionally join the aggregated "admins" channel.
var roleChannels = map[Role][]Channel{
	RoleSystemOperator:  {ChannelAll, ChannelAdmins, ChannelSystemOperators},
	RoleFleetOperator:   {ChannelAll, ChannelAdmins, ChannelFleetOperators},
	RoleRouteOperator:   {ChannelAll, ChannelAdmins, ChannelRouteOperators},
	RoleCustomerService: {ChannelAll, ChannelCustomerService},
	RoleEndUser:         {ChannelAll, ChannelEndUsers},
}

// ChannelsForRole returns the set of channels an identity joins for the
// life of its connection. An unknown role still joins "all" so that
// system-wide alerts reach every admitted connection.
func ChannelsForRole(role Role) []Channel {
	channels, ok := roleChannels[role]
	if !ok {
		return []Channel{ChannelAll}
	}
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

// roleOwnChannel is the single channel dedicated to one role, used when
// a notification targets a role-qualified recipient tag.
var roleOwnChannel = map[Role]Channel{
	RoleSystemOperator:  ChannelSystemOperators,
	RoleFleetOperator:   ChannelFleetOperators,
	RoleRouteOperator:   ChannelRouteOperators,
	RoleCustomerService: ChannelCustomerService,
	RoleEndUser:         ChannelEndUsers,
}

// RoleChannel returns the role-specific channel for a role, and whether
// the role is known.
func RoleChannel(role Role) (Channel, bool) {
	ch, ok := roleOwnChannel[role]
	return ch, ok
}

// IncidentChannel is the dedicated opt-in channel for one incident.
// Connections join it via the subscribe-incident client event.
func IncidentChannel(incidentID string) Channel {
	return Channel("incident:" + incidentID)
}

// ConnectedIdentity is the verified identity behind one live connection.
// One connection maps to exactly one identity; a user may own several
// simultaneous connections (multi-device).
type ConnectedIdentity struct {
	UserID       string    `json:"userId"`
	ConnectionID string    `json:"connectionId"`
	DisplayName  string    `json:"displayName"`
	Role         Role      `json:"role"`
	Email        string    `json:"email"`
	LastSeen     time.Time `json:"lastSeen"`
}

// User is a persisted account record, looked up by the authentication
// gate before a connection is admitted.
type User struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
