// Package cache implements the immutable Cache Snapshot and the mutable
// Builder used to produce each next snapshot from an applied dispatch
// event. Readers only ever see a finished Snapshot; a Builder is visible to
// exactly one event handler between construction and finalization.
package cache

import (
	"time"

	"github.com/finchwire/gatecore/discord"
)

// Snapshot is an immutable, whole-state view of everything this session has
// observed: the bot's own identity, every cached channel, guild, user,
// message and presence. All accessor methods are safe to call from any
// goroutine; a Snapshot is never mutated after Builder.Finalize returns it.
type Snapshot struct {
	botUser discord.User

	dmChannels      map[discord.ChannelID]discord.DMChannel
	groupDMChannels map[discord.ChannelID]discord.GroupDMChannel
	guilds          map[discord.GuildID]*discord.Guild
	unavailable     map[discord.GuildID]discord.UnavailableGuild
	users           map[discord.UserID]discord.User

	messages    map[discord.ChannelID]*messageRing
	lastTyped   map[discord.ChannelID]map[discord.UserID]time.Time
	presences   map[discord.GuildID]map[discord.UserID]discord.Presence
	voiceStates map[discord.GuildID]map[discord.UserID]discord.VoiceState

	maxMessagesPerChannel int
}

// Empty returns a Snapshot with no cached state, the starting point before
// READY has been processed, configured with DefaultMaxMessagesPerChannel.
func Empty() *Snapshot {
	return New(Options{})
}

// Options configures a freshly-created Snapshot. The zero value is valid and
// selects every default.
type Options struct {
	// MaxMessagesPerChannel bounds how many messages messageRing retains per
	// channel before evicting the oldest. Zero selects
	// DefaultMaxMessagesPerChannel.
	MaxMessagesPerChannel int
}

// New returns an empty Snapshot configured by opts.
func New(opts Options) *Snapshot {
	max := opts.MaxMessagesPerChannel
	if max <= 0 {
		max = DefaultMaxMessagesPerChannel
	}
	return &Snapshot{
		dmChannels:            map[discord.ChannelID]discord.DMChannel{},
		groupDMChannels:       map[discord.ChannelID]discord.GroupDMChannel{},
		guilds:                map[discord.GuildID]*discord.Guild{},
		unavailable:           map[discord.GuildID]discord.UnavailableGuild{},
		users:                 map[discord.UserID]discord.User{},
		messages:              map[discord.ChannelID]*messageRing{},
		lastTyped:             map[discord.ChannelID]map[discord.UserID]time.Time{},
		presences:             map[discord.GuildID]map[discord.UserID]discord.Presence{},
		voiceStates:           map[discord.GuildID]map[discord.UserID]discord.VoiceState{},
		maxMessagesPerChannel: max,
	}
}

func (s *Snapshot) BotUser() discord.User { return s.botUser }

func (s *Snapshot) DMChannel(id discord.ChannelID) (discord.DMChannel, bool) {
	ch, ok := s.dmChannels[id]
	return ch, ok
}

func (s *Snapshot) GroupDMChannel(id discord.ChannelID) (discord.GroupDMChannel, bool) {
	ch, ok := s.groupDMChannels[id]
	return ch, ok
}

// Guild returns the guild, if it is currently available.
func (s *Snapshot) Guild(id discord.GuildID) (*discord.Guild, bool) {
	g, ok := s.guilds[id]
	return g, ok
}

func (s *Snapshot) UnavailableGuild(id discord.GuildID) (discord.UnavailableGuild, bool) {
	g, ok := s.unavailable[id]
	return g, ok
}

func (s *Snapshot) User(id discord.UserID) (discord.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// GuildChannel looks a guild channel up across every guild. It returns
// false both when the channel was never observed and when it belonged to a
// guild that has since been removed wholesale.
func (s *Snapshot) GuildChannel(id discord.ChannelID) (discord.Channel, bool) {
	for _, g := range s.guilds {
		if ch, ok := g.Channels[id]; ok {
			return ch, true
		}
	}
	return discord.Channel{}, false
}

// Member resolves a member's roles/nick plus its embedded user, following
// DESIGN NOTES §9's cyclic-reference rule: the member only stores a user
// id, resolved here against the top-level Users map.
func (s *Snapshot) Member(guildID discord.GuildID, userID discord.UserID) (discord.Member, discord.User, bool) {
	g, ok := s.guilds[guildID]
	if !ok {
		return discord.Member{}, discord.User{}, false
	}
	m, ok := g.Members[userID]
	if !ok {
		return discord.Member{}, discord.User{}, false
	}
	u := s.users[userID]
	return m, u, true
}

// Message looks a single cached message up by channel and id.
func (s *Snapshot) Message(channelID discord.ChannelID, id discord.MessageID) (discord.Message, bool) {
	ring, ok := s.messages[channelID]
	if !ok {
		return discord.Message{}, false
	}
	return ring.get(id)
}

// Messages returns every message currently cached for a channel, oldest
// first. It returns false if the channel has never been observed.
func (s *Snapshot) Messages(channelID discord.ChannelID) ([]discord.Message, bool) {
	ring, ok := s.messages[channelID]
	if !ok {
		return nil, false
	}
	return ring.all(), true
}

func (s *Snapshot) LastTyped(channelID discord.ChannelID, userID discord.UserID) (time.Time, bool) {
	byUser, ok := s.lastTyped[channelID]
	if !ok {
		return time.Time{}, false
	}
	t, ok := byUser[userID]
	return t, ok
}

func (s *Snapshot) Presence(guildID discord.GuildID, userID discord.UserID) (discord.Presence, bool) {
	byUser, ok := s.presences[guildID]
	if !ok {
		return discord.Presence{}, false
	}
	p, ok := byUser[userID]
	return p, ok
}

// VoiceState looks up a cached voice state. Nothing currently populates
// this map (VOICE_STATE_UPDATE is registered Not-yet-implemented); the
// accessor exists so the data model named in the cache snapshot's spec is
// exercised and ready for a future handler.
func (s *Snapshot) VoiceState(guildID discord.GuildID, userID discord.UserID) (discord.VoiceState, bool) {
	byUser, ok := s.voiceStates[guildID]
	if !ok {
		return discord.VoiceState{}, false
	}
	v, ok := byUser[userID]
	return v, ok
}
