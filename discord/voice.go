package discord

// VoiceState is a user's voice-channel membership inside a guild. Cached for
// future voice subsystems to read; this module does not implement voice
// media transport itself.
type VoiceState struct {
	GuildID   GuildID   `json:"guild_id,omitempty"`
	ChannelID ChannelID `json:"channel_id"`
	UserID    UserID    `json:"user_id"`
	SessionID string    `json:"session_id"`

	Deaf     bool `json:"deaf"`
	Mute     bool `json:"mute"`
	SelfDeaf bool `json:"self_deaf"`
	SelfMute bool `json:"self_mute"`
}
