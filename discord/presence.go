package discord

// Status is a user's online status.
type Status string

const (
	OnlineStatus       Status = "online"
	IdleStatus         Status = "idle"
	DoNotDisturbStatus Status = "dnd"
	InvisibleStatus    Status = "invisible"
	OfflineStatus      Status = "offline"
)

// Activity is a minimal rendering of the "rich presence" object; only the
// fields event handlers and API messages need are kept.
type Activity struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Presence is a user's status and activity within one guild, cached keyed
// by (guild, user) at the snapshot's top level.
type Presence struct {
	UserID     UserID     `json:"user_id"`
	GuildID    GuildID    `json:"guild_id,omitempty"`
	Status     Status     `json:"status"`
	Activities []Activity `json:"activities,omitempty"`
}
