package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transit-ops/errors"
)

func TestParseRecipientGroup_Accepts_The_Closed_Set(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{"all", "system-operators", "fleet-operators",
		"route-operators", "customer-service", "end-users"} {
		group, err := ParseRecipientGroup(raw)
		req.NoError(err)
		req.Equal(RecipientGroup(raw), group)
	}
}

func TestParseRecipientGroup_Accepts_Role_Qualified_Tags(t *testing.T) {
	req := require.New(t)

	// When parsing a tag qualified by a known role
	group, err := ParseRecipientGroup("role:fleet-operator")

	// Then it is accepted as-is
	req.NoError(err)
	req.Equal(RoleGroup(RoleFleetOperator), group)
}

func TestParseRecipientGroup_Rejects_Free_Form_Strings(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{"", "everyone", "Role:end-user", "role:", "role:pilot"} {
		_, err := ParseRecipientGroup(raw)
		req.ErrorIs(err, errors.ErrInvalidRecipientGroup)
	}
}

func TestChannelsForRole_Operators_Join_Admins(t *testing.T) {
	req := require.New(t)

	// When looking up an operator role
	channels := ChannelsForRole(RoleFleetOperator)

	// Then it joins the shared, aggregated, and role-specific channels
	req.Equal([]Channel{ChannelAll, ChannelAdmins, ChannelFleetOperators}, channels)
}

func TestChannelsForRole_End_Users_Do_Not_Join_Admins(t *testing.T) {
	req := require.New(t)

	channels := ChannelsForRole(RoleEndUser)

	req.Equal([]Channel{ChannelAll, ChannelEndUsers}, channels)
	req.NotContains(channels, ChannelAdmins)
}

func TestChannelsForRole_Unknown_Role_Still_Joins_All(t *testing.T) {
	req := require.New(t)

	// When looking up a role nobody declared
	channels := ChannelsForRole(Role("intern"))

	// Then system-wide alerts still reach that connection
	req.Equal([]Channel{ChannelAll}, channels)
}

func TestChannelsForRole_Returns_A_Copy(t *testing.T) {
	req := require.New(t)

	// Given a channel list handed to a caller
	channels := ChannelsForRole(RoleSystemOperator)

	// When the caller mutates it
	channels[0] = Channel("tampered")

	// Then the declarative table is unaffected
	req.Equal([]Channel{ChannelAll, ChannelAdmins, ChannelSystemOperators},
		ChannelsForRole(RoleSystemOperator))
}
