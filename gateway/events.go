package gateway

import (
	"encoding/json"

	"github.com/finchwire/gatecore/discord"
)

// RawMember mirrors the wire shape of a guild member: unlike the cached
// discord.Member, it carries the full embedded User object, because that is
// how Discord actually sends members. Handlers split this into a top-level
// discord.User plus a discord.Member holding only the UserID.
type RawMember struct {
	User     discord.User    `json:"user"`
	Nick     string          `json:"nick,omitempty"`
	Roles    []discord.RoleID `json:"roles"`
	JoinedAt string          `json:"joined_at,omitempty"`
	Deaf     bool            `json:"deaf,omitempty"`
	Mute     bool            `json:"mute,omitempty"`
}

// RawChannel mirrors the wire shape of CHANNEL_CREATE/UPDATE/DELETE, which
// uses one object shape for guild channels, DM channels and group DMs,
// discriminated by Type.
type RawChannel struct {
	ID            discord.ChannelID   `json:"id"`
	Type          discord.ChannelType `json:"type"`
	GuildID       discord.GuildID     `json:"guild_id,omitempty"`
	Name          string              `json:"name,omitempty"`
	Topic         string              `json:"topic,omitempty"`
	Position      int                 `json:"position,omitempty"`
	ParentID      discord.ChannelID   `json:"parent_id,omitempty"`
	NSFW          bool                `json:"nsfw,omitempty"`
	OwnerID       discord.UserID      `json:"owner_id,omitempty"`
	Recipients    []discord.User      `json:"recipients,omitempty"`
	LastMessageID discord.MessageID   `json:"last_message_id,omitempty"`
}

type (
	ChannelCreatePayload RawChannel
	ChannelUpdatePayload RawChannel
	ChannelDeletePayload RawChannel
)

// ReadyPayload is the Op 0 READY dispatch.
type ReadyPayload struct {
	Version         int                       `json:"v"`
	User            discord.User              `json:"user"`
	PrivateChannels []RawChannel              `json:"private_channels"`
	Guilds          []discord.UnavailableGuild `json:"guilds"`
	SessionID       string                    `json:"session_id"`
}

// ResumedPayload is the Op 0 RESUMED dispatch; it carries nothing the cache
// needs.
type ResumedPayload struct {
	Trace []string `json:"_trace,omitempty"`
}

// GuildCreatePayload is the full guild object delivered either on initial
// availability or when a previously-unavailable guild comes back.
type GuildCreatePayload struct {
	ID          discord.GuildID  `json:"id"`
	Name        string           `json:"name"`
	OwnerID     discord.UserID   `json:"owner_id"`
	Icon        string           `json:"icon,omitempty"`
	Region      string           `json:"region,omitempty"`
	MemberCount int              `json:"member_count,omitempty"`
	Unavailable bool             `json:"unavailable,omitempty"`
	Roles       []discord.Role   `json:"roles"`
	Emojis      []discord.Emoji  `json:"emojis"`
	Channels    []RawChannel     `json:"channels"`
	Members     []RawMember      `json:"members"`
	Presences   []PresenceUpdatePayload `json:"presences"`
}

// GuildUpdatePayload carries only the guild's scalar fields; members,
// channels, roles, emojis and presences are left untouched by its handler.
type GuildUpdatePayload struct {
	ID      discord.GuildID `json:"id"`
	Name    string          `json:"name"`
	OwnerID discord.UserID  `json:"owner_id"`
	Icon    string          `json:"icon,omitempty"`
	Region  string          `json:"region,omitempty"`
}

// GuildDeletePayload signals either guild removal or an outage-driven
// unavailability, discriminated by Unavailable.
type GuildDeletePayload struct {
	ID          discord.GuildID `json:"id"`
	Unavailable bool            `json:"unavailable,omitempty"`
}

type GuildBanAddPayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

type GuildBanRemovePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

type GuildEmojisUpdatePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	Emojis  []discord.Emoji `json:"emojis"`
}

type GuildIntegrationsUpdatePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
}

// GuildMemberAddPayload is RawMember plus the guild id the member joined,
// following DESIGN NOTES §9's replacement for record-concatenation: an
// ordinary extra field instead of a type-level splice.
type GuildMemberAddPayload struct {
	RawMember
	GuildID discord.GuildID `json:"guild_id"`
}

type GuildMemberRemovePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	User    discord.User    `json:"user"`
}

type GuildMemberUpdatePayload struct {
	GuildID discord.GuildID  `json:"guild_id"`
	Roles   []discord.RoleID `json:"roles"`
	User    discord.User     `json:"user"`
	Nick    string           `json:"nick,omitempty"`
}

type GuildMemberChunkPayload struct {
	GuildID   discord.GuildID          `json:"guild_id"`
	Members   []RawMember              `json:"members"`
	Presences []PresenceUpdatePayload  `json:"presences,omitempty"`
}

type GuildRoleCreatePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

type GuildRoleUpdatePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	Role    discord.Role    `json:"role"`
}

type GuildRoleDeletePayload struct {
	GuildID discord.GuildID `json:"guild_id"`
	RoleID  discord.RoleID  `json:"role_id"`
}

// MessageCreatePayload is a full message, identical in shape to the cached
// discord.Message.
type MessageCreatePayload = discord.Message

// MessageUpdatePayload is a PARTIAL message: only fields Discord actually
// included in the payload are non-nil. Its UnmarshalJSON inspects the raw
// object's keys rather than relying on zero values, so a present-but-empty
// string is distinguishable from an absent field.
type MessageUpdatePayload struct {
	ID        discord.MessageID
	ChannelID discord.ChannelID
	GuildID   discord.GuildID
	Content   *string
	EditedAt  *string
	Pinned    *bool
	Author    *discord.User
}

func (m *MessageUpdatePayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &m.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["channel_id"]; ok {
		if err := json.Unmarshal(v, &m.ChannelID); err != nil {
			return err
		}
	}
	if v, ok := raw["guild_id"]; ok {
		if err := json.Unmarshal(v, &m.GuildID); err != nil {
			return err
		}
	}
	if v, ok := raw["content"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		m.Content = &s
	}
	if v, ok := raw["edited_timestamp"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}
		m.EditedAt = &s
	}
	if v, ok := raw["pinned"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return err
		}
		m.Pinned = &b
	}
	if v, ok := raw["author"]; ok {
		var u discord.User
		if err := json.Unmarshal(v, &u); err != nil {
			return err
		}
		m.Author = &u
	}

	return nil
}

type MessageDeletePayload struct {
	ID        discord.MessageID `json:"id"`
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
}

type MessageDeleteBulkPayload struct {
	IDs       []discord.MessageID `json:"ids"`
	ChannelID discord.ChannelID   `json:"channel_id"`
	GuildID   discord.GuildID     `json:"guild_id,omitempty"`
}

type PresenceUpdatePayload struct {
	User       discord.User       `json:"user"`
	GuildID    discord.GuildID    `json:"guild_id"`
	Status     discord.Status     `json:"status"`
	Activities []discord.Activity `json:"activities,omitempty"`
}

type TypingStartPayload struct {
	ChannelID discord.ChannelID `json:"channel_id"`
	GuildID   discord.GuildID   `json:"guild_id,omitempty"`
	UserID    discord.UserID    `json:"user_id"`
	Timestamp int64             `json:"timestamp"`
}

type UserUpdatePayload = discord.User

type VoiceStateUpdatePayload = discord.VoiceState

type VoiceServerUpdatePayload struct {
	Token    string          `json:"token"`
	GuildID  discord.GuildID `json:"guild_id"`
	Endpoint string          `json:"endpoint"`
}
