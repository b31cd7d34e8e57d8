package handlers

import "github.com/finchwire/gatecore/gateway"

// init populates the Event Registry for every name in the closed catalog.
// This is the only package that calls gateway.Register; importing it for
// its side effect (blank or otherwise) is what wires real event handling
// into a session, mirroring the registration-by-import pattern arikawa's
// cmdroute and bot packages use for command handlers.
func init() {
	gateway.Register(gateway.ReadyEventName, gateway.Entry{Handle: handleReady, Factory: factoryReady})
	gateway.Register(gateway.ResumedEventName, gateway.Entry{Handle: handleResumed, Factory: factoryResumed})

	gateway.Register(gateway.ChannelCreateEventName, gateway.Entry{Handle: handleChannelCreate, Factory: factoryChannelCreated})
	gateway.Register(gateway.ChannelUpdateEventName, gateway.Entry{Handle: handleChannelUpdate, Factory: factoryChannelUpdated})
	gateway.Register(gateway.ChannelDeleteEventName, gateway.Entry{Handle: handleChannelDelete, Factory: factoryChannelDeleted})

	gateway.Register(gateway.GuildCreateEventName, gateway.Entry{Handle: handleGuildCreate, Factory: factoryGuildCreated})
	gateway.Register(gateway.GuildUpdateEventName, gateway.Entry{Handle: handleGuildUpdate, Factory: factoryGuildUpdated})
	gateway.Register(gateway.GuildDeleteEventName, gateway.Entry{Handle: handleGuildDelete, Factory: factoryGuildDeleted})

	gateway.Register(gateway.GuildBanAddEventName, gateway.Entry{Handle: handleGuildBanAdd, Factory: factoryGuildBanAdded})
	gateway.Register(gateway.GuildBanRemoveEventName, gateway.Entry{Handle: handleGuildBanRemove, Factory: factoryGuildBanRemoved})

	gateway.Register(gateway.GuildEmojisUpdateEventName, gateway.Entry{Handle: handleGuildEmojisUpdate, Factory: factoryGuildEmojisUpdated})
	gateway.Register(gateway.GuildIntegrationsUpdateEventName, gateway.Entry{Handle: handleGuildIntegrationsUpdate, Factory: factoryGuildIntegrationsUpdated})

	gateway.Register(gateway.GuildMemberAddEventName, gateway.Entry{Handle: handleGuildMemberAdd, Factory: factoryMemberAdded})
	gateway.Register(gateway.GuildMemberRemoveEventName, gateway.Entry{Handle: handleGuildMemberRemove, Factory: factoryMemberRemoved})
	gateway.Register(gateway.GuildMemberUpdateEventName, gateway.Entry{Handle: handleGuildMemberUpdate, Factory: factoryMemberUpdated})
	gateway.Register(gateway.GuildMemberChunkEventName, gateway.Entry{Handle: handleGuildMemberChunk, Factory: factoryMemberChunk})

	gateway.Register(gateway.GuildRoleCreateEventName, gateway.Entry{Handle: handleGuildRoleCreate, Factory: factoryRoleCreated})
	gateway.Register(gateway.GuildRoleUpdateEventName, gateway.Entry{Handle: handleGuildRoleUpdate, Factory: factoryRoleUpdated})
	gateway.Register(gateway.GuildRoleDeleteEventName, gateway.Entry{Handle: handleGuildRoleDelete, Factory: factoryRoleDeleted})

	gateway.Register(gateway.MessageCreateEventName, gateway.Entry{Handle: handleMessageCreate, Factory: factoryMessageCreated})
	gateway.Register(gateway.MessageUpdateEventName, gateway.Entry{Handle: handleMessageUpdate, Factory: factoryMessageUpdated})
	gateway.Register(gateway.MessageDeleteEventName, gateway.Entry{Handle: handleMessageDelete, Factory: factoryMessageDeleted})
	gateway.Register(gateway.MessageDeleteBulkEventName, gateway.Entry{Handle: handleMessageDeleteBulk, Factory: factoryMessageDeletedBulk})

	gateway.Register(gateway.PresenceUpdateEventName, gateway.Entry{Handle: handlePresenceUpdate, Factory: factoryPresenceUpdated})
	gateway.Register(gateway.TypingStartEventName, gateway.Entry{Handle: handleTypingStart, Factory: factoryTypingStart})
	gateway.Register(gateway.UserUpdateEventName, gateway.Entry{Handle: handleUserUpdate, Factory: factoryUserUpdate})

	gateway.Register(gateway.VoiceStateUpdateEventName, gateway.Entry{Handle: handleVoiceStateUpdate, Factory: factoryVoiceStateUpdate})
	gateway.Register(gateway.VoiceServerUpdateEventName, gateway.Entry{Handle: handleVoiceServerUpdate, Factory: factoryVoiceServerUpdate})
}
