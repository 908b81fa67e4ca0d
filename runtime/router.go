package runtime

import (
	"fmt"
	"log/slog"
	"strings"

	"transit-ops/domain"
)

// groupChannels is the static lookup table from closed-set recipient
// tags to concrete channels. Adding a recipient group is a table entry,
// not a new branch.
var groupChannels = map[domain.RecipientGroup][]domain.Channel{
	domain.GroupAll:             {domain.ChannelAll},
	domain.GroupSystemOperators: {domain.ChannelSystemOperators},
	domain.GroupFleetOperators:  {domain.ChannelFleetOperators},
	domain.GroupRouteOperators:  {domain.ChannelRouteOperators},
	domain.GroupCustomerService: {domain.ChannelCustomerService},
	domain.GroupEndUsers:        {domain.ChannelEndUsers},
}

// Router resolves abstract audience tags to concrete delivery channels.
type Router struct {
	log *slog.Logger
}

func NewRouter(log *slog.Logger) *Router {
	return &Router{log: log}
}

// Resolve maps every recipient group to its channels, deduplicated.
// Role-qualified tags ("role:fleet-operator") resolve to that role's
// own channel. Unknown tags are logged and dropped, never delivered.
func (r *Router) Resolve(groups []domain.RecipientGroup) []domain.Channel {
	seen := make(map[domain.Channel]struct{})
	var channels []domain.Channel

	appendChannel := func(channel domain.Channel) {
		if _, dup := seen[channel]; dup {
			return
		}
		seen[channel] = struct{}{}
		channels = append(channels, channel)
	}

	for _, group := range groups {
		if mapped, ok := groupChannels[group]; ok {
			for _, channel := range mapped {
				appendChannel(channel)
			}
			continue
		}
		if role, ok := strings.CutPrefix(string(group), "role:"); ok {
			if channel, known := domain.RoleChannel(domain.Role(role)); known {
				appendChannel(channel)
				continue
			}
		}
		r.log.Warn(fmt.Sprintf("Dropping unknown recipient group %q", group))
	}
	return channels
}
