package handlers

import (
	"github.com/finchwire/gatecore/busmsg"
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/gateway"
)

func handleGuildRoleCreate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildRoleCreatePayload)
	b.UpsertRole(p.GuildID, p.Role)
}

func factoryRoleCreated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildRoleCreatePayload)
	return busmsg.RoleCreated{GuildID: p.GuildID, Role: p.Role}, true
}

func handleGuildRoleUpdate(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildRoleUpdatePayload)
	b.UpsertRole(p.GuildID, p.Role)
}

func factoryRoleUpdated(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildRoleUpdatePayload)
	return busmsg.RoleUpdated{GuildID: p.GuildID, Role: p.Role}, true
}

func handleGuildRoleDelete(b *cache.Builder, payload interface{}) {
	p := payload.(*gateway.GuildRoleDeletePayload)
	b.RemoveRole(p.GuildID, p.RoleID)
}

func factoryRoleDeleted(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	p := payload.(*gateway.GuildRoleDeletePayload)
	return busmsg.RoleDeleted{GuildID: p.GuildID, RoleID: p.RoleID}, true
}
