package discord

// Message is a cached chat message. It has no pointer fields; the partial
// MESSAGE_UPDATE shape that distinguishes "absent" from "zero value" is
// gateway.MessageUpdatePayload, merged into a Message by the cache handler.
type Message struct {
	ID        MessageID `json:"id"`
	ChannelID ChannelID `json:"channel_id"`
	GuildID   GuildID   `json:"guild_id,omitempty"`

	Author  User   `json:"author"`
	Content string `json:"content"`

	Timestamp string `json:"timestamp,omitempty"`
	EditedAt  string `json:"edited_timestamp,omitempty"`

	TTS        bool     `json:"tts,omitempty"`
	Pinned     bool     `json:"pinned,omitempty"`
	MentionIDs []UserID `json:"mentions,omitempty"`
}
