// Package busmsg is the API Message Bus's publish-only surface: for each
// applied dispatch, a high-level message referencing the (previous,
// current) cache snapshot pair, synthesized the way arikawa's session
// package turns a raw GuildCreateEvent into GuildJoinEvent /
// GuildAvailableEvent / GuildReadyEvent.
//
// This package deliberately does not import gatecore/gateway: the Event
// Registry (gateway.Register) stores factories that build these messages,
// and a gateway -> busmsg -> gateway import cycle would follow if the
// dependency ran both ways. Messages that need wire-payload fields copy
// the handful of scalars they need instead of embedding the payload type.
package busmsg

import (
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/discord"
)

// Message is the tagged union of everything the bus can publish. It is
// sealed: only types declared in this package implement it.
type Message interface {
	busMessage()
}

type base struct{}

func (base) busMessage() {}

// Ready is published once, after READY has been applied.
type Ready struct {
	base
	SessionID string
	Curr      *cache.Snapshot
}

// Resumed is published after a successful session resume.
type Resumed struct {
	base
	Curr *cache.Snapshot
}

type ChannelCreated struct {
	base
	Channel discord.Channel
	Curr    *cache.Snapshot
}

type ChannelUpdated struct {
	base
	Channel    discord.Channel
	Prev, Curr *cache.Snapshot
}

type ChannelDeleted struct {
	base
	Channel    discord.Channel
	Prev, Curr *cache.Snapshot
}

type GuildCreated struct {
	base
	Guild *discord.Guild
	Curr  *cache.Snapshot
}

type GuildUpdated struct {
	base
	GuildID    discord.GuildID
	Prev, Curr *cache.Snapshot
}

type GuildDeleted struct {
	base
	GuildID     discord.GuildID
	Unavailable bool
	Prev, Curr  *cache.Snapshot
}

type GuildBanAdded struct {
	base
	GuildID discord.GuildID
	User    discord.User
}

type GuildBanRemoved struct {
	base
	GuildID discord.GuildID
	User    discord.User
}

type GuildEmojisUpdated struct {
	base
	GuildID discord.GuildID
	Emojis  []discord.Emoji
	Curr    *cache.Snapshot
}

type GuildIntegrationsUpdated struct {
	base
	GuildID discord.GuildID
}

type MemberAdded struct {
	base
	GuildID discord.GuildID
	UserID  discord.UserID
	Curr    *cache.Snapshot
}

type MemberRemoved struct {
	base
	GuildID    discord.GuildID
	UserID     discord.UserID
	Prev, Curr *cache.Snapshot
}

type MemberUpdated struct {
	base
	GuildID    discord.GuildID
	UserID     discord.UserID
	Prev, Curr *cache.Snapshot
}

type MemberChunk struct {
	base
	GuildID discord.GuildID
	Count   int
	Curr    *cache.Snapshot
}

type RoleCreated struct {
	base
	GuildID discord.GuildID
	Role    discord.Role
}

type RoleUpdated struct {
	base
	GuildID discord.GuildID
	Role    discord.Role
}

type RoleDeleted struct {
	base
	GuildID discord.GuildID
	RoleID  discord.RoleID
}

type MessageCreated struct {
	base
	Message discord.Message
	Curr    *cache.Snapshot
}

// MessageUpdated is its own type, distinct from MessageCreated. SPEC_FULL
// §4.4 resolves the Open Question on whether MESSAGE_UPDATE should route
// through the create factory (an upstream bug) in favor of genuine update
// semantics: this type, not MessageCreated, is what MESSAGE_UPDATE
// publishes.
type MessageUpdated struct {
	base
	Message    discord.Message
	Prev, Curr *cache.Snapshot
}

// MessageDeleted carries Prev because the deleted body is only observable
// there — curr no longer has it.
type MessageDeleted struct {
	base
	ChannelID discord.ChannelID
	MessageID discord.MessageID
	Prev      *cache.Snapshot
}

type MessageDeletedBulk struct {
	base
	ChannelID  discord.ChannelID
	MessageIDs []discord.MessageID
	Prev       *cache.Snapshot
}

type PresenceUpdated struct {
	base
	GuildID discord.GuildID
	UserID  discord.UserID
	Curr    *cache.Snapshot
}
