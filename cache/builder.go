package cache

import (
	"time"

	"github.com/finchwire/gatecore/discord"
)

// Builder is the mutable working copy of a Snapshot that a single event
// handler uses to produce the next one. Builder.From never aliases the
// source snapshot's interior containers; Builder.Finalize hands back an
// immutable Snapshot and renders the Builder unusable.
type Builder struct {
	snap *Snapshot
}

// From produces an isolated Builder seeded from snapshot. Every map and
// guild is deep-copied so mutating the builder can never be observed
// through the source snapshot.
func From(snapshot *Snapshot) *Builder {
	if snapshot == nil {
		snapshot = Empty()
	}

	next := &Snapshot{
		botUser:               snapshot.botUser,
		dmChannels:            cloneMap(snapshot.dmChannels),
		groupDMChannels:       cloneMap(snapshot.groupDMChannels),
		unavailable:           cloneMap(snapshot.unavailable),
		users:                 cloneMap(snapshot.users),
		guilds:                make(map[discord.GuildID]*discord.Guild, len(snapshot.guilds)),
		messages:              make(map[discord.ChannelID]*messageRing, len(snapshot.messages)),
		lastTyped:             make(map[discord.ChannelID]map[discord.UserID]time.Time, len(snapshot.lastTyped)),
		presences:             make(map[discord.GuildID]map[discord.UserID]discord.Presence, len(snapshot.presences)),
		voiceStates:           make(map[discord.GuildID]map[discord.UserID]discord.VoiceState, len(snapshot.voiceStates)),
		maxMessagesPerChannel: snapshot.maxMessagesPerChannel,
	}

	for id, g := range snapshot.guilds {
		next.guilds[id] = cloneGuild(g)
	}
	for id, ring := range snapshot.messages {
		next.messages[id] = ring.clone()
	}
	for id, byUser := range snapshot.lastTyped {
		next.lastTyped[id] = cloneMap(byUser)
	}
	for id, byUser := range snapshot.presences {
		next.presences[id] = cloneMap(byUser)
	}
	for id, byUser := range snapshot.voiceStates {
		next.voiceStates[id] = cloneMap(byUser)
	}

	return &Builder{snap: next}
}

// Finalize returns the next immutable Snapshot. Calling any Builder method
// afterwards is a programming error (§7 kind 7) and panics: a Builder is
// only ever visible to one handler invocation.
func (b *Builder) Finalize() *Snapshot {
	if b.snap == nil {
		panic("cache: Finalize called on an already-finalized Builder")
	}
	snap := b.snap
	b.snap = nil
	return snap
}

func (b *Builder) mustSnap() *Snapshot {
	if b.snap == nil {
		panic("cache: Builder used after Finalize")
	}
	return b.snap
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneGuild(g *discord.Guild) *discord.Guild {
	c := *g
	c.Roles = cloneMap(g.Roles)
	c.Channels = cloneMap(g.Channels)
	c.Members = cloneMap(g.Members)
	c.Emojis = append([]discord.Emoji{}, g.Emojis...)
	return &c
}

//// Identity

func (b *Builder) SetBotUser(u discord.User) {
	b.mustSnap().botUser = u
}

//// Users

func (b *Builder) UpsertUser(u discord.User) {
	b.mustSnap().users[u.ID] = u
}

//// DM / group DM channels

func (b *Builder) UpsertDMChannel(ch discord.DMChannel) {
	b.mustSnap().dmChannels[ch.ID] = ch
}

func (b *Builder) UpsertGroupDMChannel(ch discord.GroupDMChannel) {
	b.mustSnap().groupDMChannels[ch.ID] = ch
}

//// Guilds

// UpsertGuild inserts or replaces a full guild and, per §4.4's GUILD_CREATE
// semantics, removes it from unavailable_guilds — enforcing the invariant
// that a guild id is never in both collections at once.
func (b *Builder) UpsertGuild(g *discord.Guild) {
	s := b.mustSnap()
	if g.Roles == nil {
		g.Roles = map[discord.RoleID]discord.Role{}
	}
	if g.Channels == nil {
		g.Channels = map[discord.ChannelID]discord.Channel{}
	}
	if g.Members == nil {
		g.Members = map[discord.UserID]discord.Member{}
	}
	s.guilds[g.ID] = g
	delete(s.unavailable, g.ID)
}

// UpdateGuildScalars replaces only the named-field scalars of an existing
// guild, per GUILD_UPDATE's semantics; members/channels/roles/emojis are
// left exactly as they were. If the guild isn't cached, nothing happens —
// Discord never sends GUILD_UPDATE before GUILD_CREATE for a guild the bot
// can see.
func (b *Builder) UpdateGuildScalars(id discord.GuildID, apply func(*discord.Guild)) bool {
	s := b.mustSnap()
	g, ok := s.guilds[id]
	if !ok {
		return false
	}
	apply(g)
	return true
}

// RemoveGuild deletes a guild entirely (GUILD_DELETE with unavailable=false
// or absent).
func (b *Builder) RemoveGuild(id discord.GuildID) {
	delete(b.mustSnap().guilds, id)
}

// MarkGuildUnavailable moves a guild from guilds to unavailable_guilds.
func (b *Builder) MarkGuildUnavailable(id discord.GuildID) {
	s := b.mustSnap()
	delete(s.guilds, id)
	s.unavailable[id] = discord.UnavailableGuild{ID: id, Unavailable: true}
}

// InsertUnavailableGuild records a guild as known-but-unpopulated, used by
// READY.
func (b *Builder) InsertUnavailableGuild(id discord.GuildID) {
	b.mustSnap().unavailable[id] = discord.UnavailableGuild{ID: id, Unavailable: true}
}

func (b *Builder) Guild(id discord.GuildID) (*discord.Guild, bool) {
	g, ok := b.mustSnap().guilds[id]
	return g, ok
}

//// Channels

// UpsertGuildChannel inserts or replaces a channel on its owning guild. If
// the guild isn't cached the channel is dropped (it will arrive again, or
// in GUILD_CREATE, per ordering guarantees).
func (b *Builder) UpsertGuildChannel(ch discord.Channel) bool {
	g, ok := b.Guild(ch.GuildID)
	if !ok {
		return false
	}
	g.Channels[ch.ID] = ch
	return true
}

// RemoveChannel deletes a channel from whichever collection holds it —
// guild channels, DMs or group DMs — and returns the removed value. Any
// messages cached under that channel id are left exactly as they were
// (§4.4 CHANNEL_DELETE: "retain any messages... they remain observable via
// prev").
func (b *Builder) RemoveChannel(id discord.ChannelID) (discord.Channel, bool) {
	s := b.mustSnap()

	if ch, ok := s.dmChannels[id]; ok {
		delete(s.dmChannels, id)
		return discord.Channel{ID: ch.ID}, true
	}
	if ch, ok := s.groupDMChannels[id]; ok {
		delete(s.groupDMChannels, id)
		return discord.Channel{ID: ch.ID, Name: ch.Name}, true
	}
	for _, g := range s.guilds {
		if ch, ok := g.Channels[id]; ok {
			delete(g.Channels, id)
			return ch, true
		}
	}
	return discord.Channel{}, false
}

//// Members

// UpsertMember inserts/replaces a member on its guild and ensures the
// member's user is present at the top level, maintaining the invariant
// that every cached member has a corresponding top-level user.
func (b *Builder) UpsertMember(guildID discord.GuildID, member discord.Member, user discord.User) bool {
	g, ok := b.Guild(guildID)
	if !ok {
		return false
	}
	g.Members[member.UserID] = member
	b.UpsertUser(user)
	return true
}

// RemoveMember removes a member from its guild without touching the
// top-level user (§4.4 GUILD_MEMBER_REMOVE: the user may be referenced
// elsewhere).
func (b *Builder) RemoveMember(guildID discord.GuildID, userID discord.UserID) bool {
	g, ok := b.Guild(guildID)
	if !ok {
		return false
	}
	if _, ok := g.Members[userID]; !ok {
		return false
	}
	delete(g.Members, userID)
	return true
}

//// Roles

func (b *Builder) UpsertRole(guildID discord.GuildID, role discord.Role) bool {
	g, ok := b.Guild(guildID)
	if !ok {
		return false
	}
	g.Roles[role.ID] = role
	return true
}

// RemoveRole removes a role definition. Members still listing the role id
// are left untouched — resolving dangling role references is the
// consumer's responsibility (§4.4).
func (b *Builder) RemoveRole(guildID discord.GuildID, roleID discord.RoleID) bool {
	g, ok := b.Guild(guildID)
	if !ok {
		return false
	}
	if _, ok := g.Roles[roleID]; !ok {
		return false
	}
	delete(g.Roles, roleID)
	return true
}

//// Emojis

func (b *Builder) SetGuildEmojis(guildID discord.GuildID, emojis []discord.Emoji) bool {
	g, ok := b.Guild(guildID)
	if !ok {
		return false
	}
	g.Emojis = emojis
	return true
}

//// Messages

func (b *Builder) ring(channelID discord.ChannelID) *messageRing {
	s := b.mustSnap()
	r, ok := s.messages[channelID]
	if !ok {
		r = newMessageRing(s.maxMessagesPerChannel)
		s.messages[channelID] = r
	}
	return r
}

func (b *Builder) InsertMessage(msg discord.Message) {
	b.ring(msg.ChannelID).insert(msg)
}

// MutateMessage applies a partial update in place, per MESSAGE_UPDATE's
// "replace only fields present" semantics; the caller's fn is responsible
// for leaving absent fields untouched.
func (b *Builder) MutateMessage(channelID discord.ChannelID, id discord.MessageID, fn func(*discord.Message)) bool {
	return b.ring(channelID).mutate(id, fn)
}

func (b *Builder) RemoveMessage(channelID discord.ChannelID, id discord.MessageID) (discord.Message, bool) {
	return b.ring(channelID).remove(id)
}

// RemoveMessagesBulk removes each listed id, ignoring any that are absent.
func (b *Builder) RemoveMessagesBulk(channelID discord.ChannelID, ids []discord.MessageID) {
	ring := b.ring(channelID)
	for _, id := range ids {
		ring.remove(id)
	}
}

//// Typing

func (b *Builder) SetTyping(channelID discord.ChannelID, userID discord.UserID, at time.Time) {
	s := b.mustSnap()
	byUser, ok := s.lastTyped[channelID]
	if !ok {
		byUser = map[discord.UserID]time.Time{}
		s.lastTyped[channelID] = byUser
	}
	byUser[userID] = at
}

//// Presences

// SetPresence replaces the cached presence keyed by (guildID, userID). The
// handler is responsible for separately calling UpsertUser with the
// payload's embedded user, per §4.4 PRESENCE_UPDATE's "also update any
// embedded user fields".
func (b *Builder) SetPresence(guildID discord.GuildID, presence discord.Presence) {
	s := b.mustSnap()
	byUser, ok := s.presences[guildID]
	if !ok {
		byUser = map[discord.UserID]discord.Presence{}
		s.presences[guildID] = byUser
	}
	byUser[presence.UserID] = presence
}

//// Voice states

// SetVoiceState records a voice state. Nothing in the registry calls this
// yet (VOICE_STATE_UPDATE is Not-yet-implemented); it exists so the data
// model and this method are exercised directly by cache package tests.
func (b *Builder) SetVoiceState(guildID discord.GuildID, state discord.VoiceState) {
	s := b.mustSnap()
	byUser, ok := s.voiceStates[guildID]
	if !ok {
		byUser = map[discord.UserID]discord.VoiceState{}
		s.voiceStates[guildID] = byUser
	}
	byUser[state.UserID] = state
}
