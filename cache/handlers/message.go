package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
	"github.com/finchwire/gatecore/gateway"
)

func handleMessageCreate(b *cache.Builder, payload interface{}) {
	p := payload.(*discord.Message)
	b.InsertMessage(*p)
}

func factoryMessageCreated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*discord.Message)
	return busmsg.MessageCreated{Message: *p, Curr: curr}, true
}

// handleMessageUpdate merges only the fields MessageUpdatePayload's
// UnmarshalJSON actually populated, per §4.4's "preserve all other fields
// unchanged" row. If the message was never cached there is nothing to merge
// into, so the update is dropped and factoryMessageUpdated publishes
// nothing for it.
func handleMessageUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.MessageUpdatePayload)
	b.MutateMessage(p.ChannelID, p.ID, func(m *discord.Message) {
		if p.Content != nil {
			m.Content = *p.Content
		}
		if p.EditedAt != nil {
			m.EditedAt = *p.EditedAt
		}
		if p.Pinned != nil {
			m.Pinned = *p.Pinned
		}
		if p.Author != nil {
			m.Author = *p.Author
		}
	})
}

func factoryMessageUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.MessageUpdatePayload)
	msg, ok := curr.Message(p.ChannelID, p.ID)
	if !ok {
		return nil, false
	}
	return busmsg.MessageUpdated{Message: msg, Prev: prev, Curr: curr}, true
}

func handleMessageDelete(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.MessageDeletePayload)
	b.RemoveMessage(p.ChannelID, p.ID)
}

func factoryMessageDeleted(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.MessageDeletePayload)
	if _, ok := prev.Message(p.ChannelID, p.ID); !ok {
		return nil, false
	}
	return busmsg.MessageDeleted{ChannelID: p.ChannelID, MessageID: p.ID, Prev: prev}, true
}

func handleMessageDeleteBulk(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.MessageDeleteBulkPayload)
	b.RemoveMessagesBulk(p.ChannelID, p.IDs)
}

func factoryMessageDeletedBulk(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.MessageDeleteBulkPayload)
	return busmsg.MessageDeletedBulk{ChannelID: p.ChannelID, MessageIDs: p.IDs, Prev: prev}, true
}
