package domain

import (
	"strings"
	"time"

	"transit-ops/errors"
)

// RecipientGroup is a closed-set audience tag resolved by the router to
// one or more channels. Free-form strings are rejected at the edge.
type RecipientGroup string

const (
	GroupAll             RecipientGroup = "all"
	GroupSystemOperators RecipientGroup = "system-operators"
	GroupFleetOperators  RecipientGroup = "fleet-operators"
	GroupRouteOperators  RecipientGroup = "route-operators"
	GroupCustomerService RecipientGroup = "customer-service"
	GroupEndUsers        RecipientGroup = "end-users"
)

// rolePrefix qualifies a group by role, e.g. "role:fleet-operator".
const rolePrefix = "role:"

var knownGroups = map[RecipientGroup]struct{}{
	GroupAll:             {},
	GroupSystemOperators: {},
	GroupFleetOperators:  {},
	GroupRouteOperators:  {},
	GroupCustomerService: {},
	GroupEndUsers:        {},
}

// RoleGroup builds the role-qualified tag for a role.
func RoleGroup(role Role) RecipientGroup {
	return RecipientGroup(rolePrefix + string(role))
}

// ParseRecipientGroup validates an inbound tag against the closed set.
func ParseRecipientGroup(raw string) (RecipientGroup, error) {
	group := RecipientGroup(raw)
	if _, ok := knownGroups[group]; ok {
		return group, nil
	}
	if role, ok := strings.CutPrefix(raw, rolePrefix); ok {
		if _, known := roleChannels[Role(role)]; known {
			return group, nil
		}
	}
	return "", errors.ErrInvalidRecipientGroup
}

// Envelope is the transient description of one notification: content,
// priority, and target audience. It is never persisted by this service.
type Envelope struct {
	ID              string           `json:"id"`
	Kind            string           `json:"kind"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Priority        Priority         `json:"priority"`
	IncidentID      string           `json:"incidentId,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
	RecipientGroups []RecipientGroup `json:"recipientGroups"`
}
