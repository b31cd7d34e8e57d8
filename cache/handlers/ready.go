package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/gateway"
)

// handleReady populates bot_user and unavailable_guilds and merges
// private_channels into dm_channels/group_dm_channels, per §4.4's READY row.
// Stashing session_id for resume is out-of-band: it belongs to the session
// state machine's resume data, not the cache, so the session reads it
// directly off the payload; this handler ignores it and the factory below
// only copies it into the published busmsg.Ready.
func handleReady(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.ReadyPayload)

	b.SetBotUser(p.User)
	for _, rc := range p.PrivateChannels {
		upsertChannel(b, rc)
	}
	for _, g := range p.Guilds {
		b.InsertUnavailableGuild(g.ID)
	}
}

func factoryReady(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.ReadyPayload)
	return busmsg.Ready{SessionID: p.SessionID, Curr: curr}, true
}

// handleResumed does nothing: a resume carries no state of its own, only an
// acknowledgement that the previously-missed dispatches (if any) are about
// to replay under their own event names.
func handleResumed(b *cache.Builder, payload interface{}) {}

func factoryResumed(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	return busmsg.Resumed{Curr: curr}, true
}
