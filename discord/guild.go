package discord

// Guild is the full cached state of a server: its channels, roles, members
// and emojis. Presences are cached separately at the snapshot's top level,
// not inside Guild, so that presence churn doesn't force a guild copy.
type Guild struct {
	ID          GuildID `json:"id"`
	Name        string  `json:"name"`
	OwnerID     UserID  `json:"owner_id"`
	Icon        string  `json:"icon,omitempty"`
	Region      string  `json:"region,omitempty"`
	MemberCount int     `json:"member_count,omitempty"`

	Roles    map[RoleID]Role       `json:"-"`
	Emojis   []Emoji               `json:"-"`
	Channels map[ChannelID]Channel `json:"-"`
	Members  map[UserID]Member     `json:"-"`
}

// UnavailableGuild is a guild known to exist (the bot is a member) whose
// contents have not yet been delivered, or are no longer reachable due to an
// outage.
type UnavailableGuild struct {
	ID          GuildID `json:"id"`
	Unavailable bool    `json:"unavailable"`
}

// Role is a guild role. Roles referenced by a member's Roles slice are not
// guaranteed to still exist in the guild's Roles map (GUILD_ROLE_DELETE
// leaves dangling references; resolving them is the consumer's job).
type Role struct {
	ID          RoleID `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    int    `json:"position"`
	Permissions string `json:"permissions"`
	Managed     bool   `json:"managed"`
	Mentionable bool   `json:"mentionable"`
}

// Member is a guild member. Per the cache's cyclic-reference resolution
// (users are stored once, at the snapshot's top level), Member holds only
// the member's UserID; cache.Snapshot.Member looks the full User up in the
// snapshot's top-level users.
type Member struct {
	UserID   UserID   `json:"-"`
	Nick     string   `json:"nick,omitempty"`
	Roles    []RoleID `json:"roles"`
	JoinedAt string   `json:"joined_at,omitempty"`
	Deaf     bool     `json:"deaf,omitempty"`
	Mute     bool     `json:"mute,omitempty"`
}
