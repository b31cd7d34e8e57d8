package gateway

// The closed catalog of dispatch event names this module understands.
const (
	ReadyEventName   EventName = "READY"
	ResumedEventName EventName = "RESUMED"

	ChannelCreateEventName EventName = "CHANNEL_CREATE"
	ChannelUpdateEventName EventName = "CHANNEL_UPDATE"
	ChannelDeleteEventName EventName = "CHANNEL_DELETE"

	GuildCreateEventName EventName = "GUILD_CREATE"
	GuildUpdateEventName EventName = "GUILD_UPDATE"
	GuildDeleteEventName EventName = "GUILD_DELETE"

	GuildBanAddEventName    EventName = "GUILD_BAN_ADD"
	GuildBanRemoveEventName EventName = "GUILD_BAN_REMOVE"

	GuildEmojisUpdateEventName       EventName = "GUILD_EMOJIS_UPDATE"
	GuildIntegrationsUpdateEventName EventName = "GUILD_INTEGRATIONS_UPDATE"

	GuildMemberAddEventName    EventName = "GUILD_MEMBER_ADD"
	GuildMemberRemoveEventName EventName = "GUILD_MEMBER_REMOVE"
	GuildMemberUpdateEventName EventName = "GUILD_MEMBER_UPDATE"
	GuildMemberChunkEventName  EventName = "GUILD_MEMBER_CHUNK"

	GuildRoleCreateEventName EventName = "GUILD_ROLE_CREATE"
	GuildRoleUpdateEventName EventName = "GUILD_ROLE_UPDATE"
	GuildRoleDeleteEventName EventName = "GUILD_ROLE_DELETE"

	MessageCreateEventName     EventName = "MESSAGE_CREATE"
	MessageUpdateEventName     EventName = "MESSAGE_UPDATE"
	MessageDeleteEventName     EventName = "MESSAGE_DELETE"
	MessageDeleteBulkEventName EventName = "MESSAGE_DELETE_BULK"

	PresenceUpdateEventName EventName = "PRESENCE_UPDATE"
	TypingStartEventName    EventName = "TYPING_START"
	UserUpdateEventName     EventName = "USER_UPDATE"

	VoiceStateUpdateEventName  EventName = "VOICE_STATE_UPDATE"
	VoiceServerUpdateEventName EventName = "VOICE_SERVER_UPDATE"
)

// decoders maps each known event name to a function producing a fresh,
// appropriately-typed payload to decode into. This is the decode half of
// the Event Registry (§4.2); the handler and API-message-factory halves
// are the Entry values in registry.go's table, which cache/handlers fills
// at init() time.
var decoders = map[EventName]func() interface{}{
	ReadyEventName:   func() interface{} { return new(ReadyPayload) },
	ResumedEventName: func() interface{} { return new(ResumedPayload) },

	ChannelCreateEventName: func() interface{} { return new(ChannelCreatePayload) },
	ChannelUpdateEventName: func() interface{} { return new(ChannelUpdatePayload) },
	ChannelDeleteEventName: func() interface{} { return new(ChannelDeletePayload) },

	GuildCreateEventName: func() interface{} { return new(GuildCreatePayload) },
	GuildUpdateEventName: func() interface{} { return new(GuildUpdatePayload) },
	GuildDeleteEventName: func() interface{} { return new(GuildDeletePayload) },

	GuildBanAddEventName:    func() interface{} { return new(GuildBanAddPayload) },
	GuildBanRemoveEventName: func() interface{} { return new(GuildBanRemovePayload) },

	GuildEmojisUpdateEventName:       func() interface{} { return new(GuildEmojisUpdatePayload) },
	GuildIntegrationsUpdateEventName: func() interface{} { return new(GuildIntegrationsUpdatePayload) },

	GuildMemberAddEventName:    func() interface{} { return new(GuildMemberAddPayload) },
	GuildMemberRemoveEventName: func() interface{} { return new(GuildMemberRemovePayload) },
	GuildMemberUpdateEventName: func() interface{} { return new(GuildMemberUpdatePayload) },
	GuildMemberChunkEventName:  func() interface{} { return new(GuildMemberChunkPayload) },

	GuildRoleCreateEventName: func() interface{} { return new(GuildRoleCreatePayload) },
	GuildRoleUpdateEventName: func() interface{} { return new(GuildRoleUpdatePayload) },
	GuildRoleDeleteEventName: func() interface{} { return new(GuildRoleDeletePayload) },

	MessageCreateEventName:     func() interface{} { return new(MessageCreatePayload) },
	MessageUpdateEventName:     func() interface{} { return new(MessageUpdatePayload) },
	MessageDeleteEventName:     func() interface{} { return new(MessageDeletePayload) },
	MessageDeleteBulkEventName: func() interface{} { return new(MessageDeleteBulkPayload) },

	PresenceUpdateEventName: func() interface{} { return new(PresenceUpdatePayload) },
	TypingStartEventName:    func() interface{} { return new(TypingStartPayload) },
	UserUpdateEventName:     func() interface{} { return new(UserUpdatePayload) },

	VoiceStateUpdateEventName:  func() interface{} { return new(VoiceStateUpdatePayload) },
	VoiceServerUpdateEventName: func() interface{} { return new(VoiceServerUpdatePayload) },
}

// KnownEventNames reports every event name this module's registry covers.
func KnownEventNames() []EventName {
	names := make([]EventName, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	return names
}
