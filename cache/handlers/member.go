package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

func handleGuildMemberAdd(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildMemberAddPayload)
	member, user := splitMember(p.RawMember)
	b.UpsertMember(p.GuildID, member, user)
}

func factoryMemberAdded(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildMemberAddPayload)
	return busmsg.MemberAdded{GuildID: p.GuildID, UserID: p.User.ID, Curr: curr}, true
}

func handleGuildMemberRemove(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildMemberRemovePayload)
	b.RemoveMember(p.GuildID, p.User.ID)
}

func factoryMemberRemoved(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildMemberRemovePayload)
	return busmsg.MemberRemoved{GuildID: p.GuildID, UserID: p.User.ID, Prev: prev, Curr: curr}, true
}

// handleGuildMemberUpdate replaces a member's roles and nick in place and
// refreshes its embedded user, per §4.4's "replace the member's roles and
// nickname; update the embedded user" row. If the member wasn't already
// cached (missed the original add), it is created here rather than dropped.
func handleGuildMemberUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildMemberUpdatePayload)

	g, ok := b.Guild(p.GuildID)
	if !ok {
		return
	}
	m := g.Members[p.User.ID]
	m.UserID = p.User.ID
	m.Roles = p.Roles
	m.Nick = p.Nick
	g.Members[p.User.ID] = m

	b.UpsertUser(p.User)
}

func factoryMemberUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildMemberUpdatePayload)
	if _, ok := curr.Guild(p.GuildID); !ok {
		return nil, false
	}
	return busmsg.MemberUpdated{GuildID: p.GuildID, UserID: p.User.ID, Prev: prev, Curr: curr}, true
}

func handleGuildMemberChunk(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildMemberChunkPayload)
	for _, rm := range p.Members {
		member, user := splitMember(rm)
		b.UpsertMember(p.GuildID, member, user)
	}
	for _, pr := range p.Presences {
		pr.GuildID = p.GuildID
		b.SetPresence(p.GuildID, discord.Presence{UserID: pr.User.ID, GuildID: p.GuildID, Status: pr.Status, Activities: pr.Activities})
	}
}

func factoryMemberChunk(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildMemberChunkPayload)
	return busmsg.MemberChunk{GuildID: p.GuildID, Count: len(p.Members), Curr: curr}, true
}
