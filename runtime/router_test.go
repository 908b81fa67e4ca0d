package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transit-ops/domain"
)

func TestRouter_Resolve_Known_Groups(t *testing.T) {
	req := require.New(t)
	router := NewRouter(testLogger())

	// When resolving two distinct audience tags
	channels := router.Resolve([]domain.RecipientGroup{
		domain.GroupSystemOperators,
		domain.GroupEndUsers,
	})

	// Then each tag maps to its own channel, in order
	req.Equal([]domain.Channel{
		domain.ChannelSystemOperators,
		domain.ChannelEndUsers,
	}, channels)
}

func TestRouter_Resolve_Deduplicates_Channels(t *testing.T) {
	req := require.New(t)
	router := NewRouter(testLogger())

	// Given the same audience expressed twice, once role-qualified
	groups := []domain.RecipientGroup{
		domain.GroupFleetOperators,
		domain.GroupFleetOperators,
		domain.RoleGroup(domain.RoleFleetOperator),
	}

	// When resolving
	channels := router.Resolve(groups)

	// Then the channel appears once
	req.Equal([]domain.Channel{domain.ChannelFleetOperators}, channels)
}

func TestRouter_Resolve_Role_Qualified_Tag(t *testing.T) {
	req := require.New(t)
	router := NewRouter(testLogger())

	// When resolving a role-qualified tag
	channels := router.Resolve([]domain.RecipientGroup{
		domain.RoleGroup(domain.RoleCustomerService),
	})

	// Then it maps to that role's own channel
	req.Equal([]domain.Channel{domain.ChannelCustomerService}, channels)
}

func TestRouter_Resolve_Drops_Unknown_Tags(t *testing.T) {
	req := require.New(t)
	router := NewRouter(testLogger())

	// When resolving a mix of valid and unknown tags
	channels := router.Resolve([]domain.RecipientGroup{
		"everybody",
		domain.GroupAll,
		"role:astronaut",
	})

	// Then unknown tags are dropped, valid ones still resolve
	req.Equal([]domain.Channel{domain.ChannelAll}, channels)
}

func TestRouter_Resolve_Empty_Input(t *testing.T) {
	req := require.New(t)
	router := NewRouter(testLogger())

	// When resolving no tags at all
	channels := router.Resolve(nil)

	// Then no channels come back
	req.Empty(channels)
}
