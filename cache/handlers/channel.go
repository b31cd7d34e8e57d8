package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

func handleChannelCreate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.ChannelCreatePayload)
	upsertChannel(b, gateway.RawChannel(*p))
}

func factoryChannelCreated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.ChannelCreatePayload)
	return busmsg.ChannelCreated{Channel: channelFromRaw(gateway.RawChannel(*p)), Curr: curr}, true
}

// handleChannelUpdate shares CHANNEL_CREATE's insert-or-replace semantics
// (§4.4: "Replace existing guild channel; if absent, insert").
func handleChannelUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.ChannelUpdatePayload)
	upsertChannel(b, gateway.RawChannel(*p))
}

func factoryChannelUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.ChannelUpdatePayload)
	return busmsg.ChannelUpdated{Channel: channelFromRaw(gateway.RawChannel(*p)), Prev: prev, Curr: curr}, true
}

func handleChannelDelete(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.ChannelDeletePayload)
	b.RemoveChannel(p.ID)
}

// factoryChannelDeleted resolves the deleted channel's last-known shape out
// of prev, since curr no longer has it (§4.4's CHANNEL_DELETE visibility
// rule: "observable via prev").
func factoryChannelDeleted(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.ChannelDeletePayload)

	if ch, ok := prev.GuildChannel(p.ID); ok {
		return busmsg.ChannelDeleted{Channel: ch, Prev: prev, Curr: curr}, true
	}
	if dm, ok := prev.DMChannel(p.ID); ok {
		return busmsg.ChannelDeleted{Channel: discord.Channel{ID: dm.ID}, Prev: prev, Curr: curr}, true
	}
	if gdm, ok := prev.GroupDMChannel(p.ID); ok {
		return busmsg.ChannelDeleted{Channel: discord.Channel{ID: gdm.ID, Name: gdm.Name}, Prev: prev, Curr: curr}, true
	}
	return nil, false
}
