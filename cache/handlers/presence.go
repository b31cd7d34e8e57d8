package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

// handlePresenceUpdate replaces the cached presence and refreshes the
// embedded user, per §4.4's "also update any embedded user fields" row.
func handlePresenceUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.PresenceUpdatePayload)
	b.SetPresence(p.GuildID, discord.Presence{
		UserID:     p.User.ID,
		GuildID:    p.GuildID,
		Status:     p.Status,
		Activities: p.Activities,
	})
	b.UpsertUser(p.User)
}

func factoryPresenceUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.PresenceUpdatePayload)
	return busmsg.PresenceUpdated{GuildID: p.GuildID, UserID: p.User.ID, Curr: curr}, true
}
