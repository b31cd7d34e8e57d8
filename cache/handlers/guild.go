package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

// handleGuildCreate builds a full discord.Guild from the payload and upserts
// it, then folds its nested channels and members in through the same
// collections CHANNEL_CREATE/GUILD_MEMBER_ADD use, so a guild arriving later
// via GUILD_CREATE looks identical to one built up incrementally.
func handleGuildCreate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildCreatePayload)

	g := &discord.Guild{
		ID:          p.ID,
		Name:        p.Name,
		OwnerID:     p.OwnerID,
		Icon:        p.Icon,
		Region:      p.Region,
		MemberCount: p.MemberCount,
		Roles:       rolesMap(p.Roles),
		Emojis:      p.Emojis,
	}
	b.UpsertGuild(g)

	for _, rc := range p.Channels {
		rc.GuildID = p.ID
		b.UpsertGuildChannel(channelFromRaw(rc))
	}
	for _, rm := range p.Members {
		member, user := splitMember(rm)
		b.UpsertMember(p.ID, member, user)
	}
	for _, pr := range p.Presences {
		pr.GuildID = p.ID
		b.SetPresence(p.ID, discord.Presence{UserID: pr.User.ID, GuildID: p.ID, Status: pr.Status, Activities: pr.Activities})
	}
}

func factoryGuildCreated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildCreatePayload)
	g, ok := curr.Guild(p.ID)
	if !ok {
		return nil, false
	}
	return busmsg.GuildCreated{Guild: g, Curr: curr}, true
}

func handleGuildUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildUpdatePayload)
	b.UpdateGuildScalars(p.ID, func(g *discord.Guild) {
		g.Name = p.Name
		g.OwnerID = p.OwnerID
		g.Icon = p.Icon
		g.Region = p.Region
	})
}

func factoryGuildUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildUpdatePayload)
	if _, ok := curr.Guild(p.ID); !ok {
		return nil, false
	}
	return busmsg.GuildUpdated{GuildID: p.ID, Prev: prev, Curr: curr}, true
}

func handleGuildDelete(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildDeletePayload)
	if p.Unavailable {
		b.MarkGuildUnavailable(p.ID)
	} else {
		b.RemoveGuild(p.ID)
	}
}

func factoryGuildDeleted(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildDeletePayload)
	return busmsg.GuildDeleted{GuildID: p.ID, Unavailable: p.Unavailable, Prev: prev, Curr: curr}, true
}

func handleGuildBanAdd(b *cache.Builder, payload interface{}) {}

func factoryGuildBanAdded(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildBanAddPayload)
	return busmsg.GuildBanAdded{GuildID: p.GuildID, User: p.User}, true
}

func handleGuildBanRemove(b *cache.Builder, payload interface{}) {}

func factoryGuildBanRemoved(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildBanRemovePayload)
	return busmsg.GuildBanRemoved{GuildID: p.GuildID, User: p.User}, true
}

func handleGuildEmojisUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildEmojisUpdatePayload)
	b.SetGuildEmojis(p.GuildID, p.Emojis)
}

func factoryGuildEmojisUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildEmojisUpdatePayload)
	if _, ok := curr.Guild(p.GuildID); !ok {
		return nil, false
	}
	return busmsg.GuildEmojisUpdated{GuildID: p.GuildID, Emojis: p.Emojis, Curr: curr}, true
}

// handleGuildIntegrationsUpdate is a no-op: nothing in the cache model
// tracks integrations (§4.4 lists no mutation for this event).
func handleGuildIntegrationsUpdate(b *cache.Builder, payload interface{}) {}

func factoryGuildIntegrationsUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildIntegrationsUpdatePayload)
	return busmsg.GuildIntegrationsUpdated{GuildID: p.GuildID}, true
}
