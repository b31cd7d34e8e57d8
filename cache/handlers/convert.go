// Package handlers implements the Event Handlers (spec.md §4.4) and the
// handle/factory halves of the Event Registry (§4.2): for every dispatch
// event name, a function that mutates a *cache.Builder the way the event
// says server-side state changed, and a function that turns the applied
// event into the high-level busmsg.Message the API Message Bus publishes.
//
// Grounded on arikawa/state/state_events.go's per-event handler functions
// and arikawa/session/event_dispatcher.go's "raw event in, higher-level
// event out" shape; restructured into the builder/snapshot pair DESIGN
// NOTES §9 calls for instead of the teacher's single mutex-guarded store.
package handlers

import (
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

func splitMember(rm gateway.RawMember) (discord.Member, discord.User) {
	member := discord.Member{
		UserID:   rm.User.ID,
		Nick:     rm.Nick,
		Roles:    rm.Roles,
		JoinedAt: rm.JoinedAt,
		Deaf:     rm.Deaf,
		Mute:     rm.Mute,
	}
	return member, rm.User
}

func channelFromRaw(rc gateway.RawChannel) discord.Channel {
	return discord.Channel{
		ID:       rc.ID,
		Type:     rc.Type,
		GuildID:  rc.GuildID,
		Name:     rc.Name,
		Topic:    rc.Topic,
		Position: rc.Position,
		ParentID: rc.ParentID,
		NSFW:     rc.NSFW,
	}
}

func dmChannelFromRaw(rc gateway.RawChannel) discord.DMChannel {
	var recipient discord.User
	if len(rc.Recipients) > 0 {
		recipient = rc.Recipients[0]
	}
	return discord.DMChannel{ID: rc.ID, Recipient: recipient, LastMsg: rc.LastMessageID}
}

func groupDMFromRaw(rc gateway.RawChannel) discord.GroupDMChannel {
	return discord.GroupDMChannel{
		ID:         rc.ID,
		Name:       rc.Name,
		OwnerID:    rc.OwnerID,
		Recipients: rc.Recipients,
		LastMsg:    rc.LastMessageID,
	}
}

func isGuildChannelType(t discord.ChannelType) bool {
	switch t {
	case discord.GuildText, discord.GuildVoice, discord.GuildCategory, discord.GuildAnnouncement:
		return true
	default:
		return false
	}
}

// upsertChannel routes a RawChannel to the collection its Type belongs in,
// shared by CHANNEL_CREATE and CHANNEL_UPDATE which the table gives
// identical insert-or-replace semantics (spec.md §4.4).
func upsertChannel(b *cache.Builder, rc gateway.RawChannel) {
	switch {
	case isGuildChannelType(rc.Type):
		b.UpsertGuildChannel(channelFromRaw(rc))
	case rc.Type == discord.GroupDM:
		b.UpsertGroupDMChannel(groupDMFromRaw(rc))
	default:
		b.UpsertDMChannel(dmChannelFromRaw(rc))
	}
}

func rolesMap(roles []discord.Role) map[discord.RoleID]discord.Role {
	out := make(map[discord.RoleID]discord.Role, len(roles))
	for _, r := range roles {
		out[r.ID] = r
	}
	return out
}
