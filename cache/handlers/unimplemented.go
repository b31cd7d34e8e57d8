package handlers

import (
	"github.com/finchwire/gatecore/cache"
	"github.com/finchwire/gatecore/gatewaylog"
)

// These events are in the closed catalog (and so decode without error,
// satisfying DecodePayload) but do not mutate the cache: the Snapshot's
// LastTyped and VoiceState slots are not written by these handlers, and
// USER_UPDATE does not touch the cached users. Each is registered with a
// handler that only logs a warning, on every dispatch, so a host process can
// see the dispatch arrived, and a factory that never publishes, matching how
// arikawa's old ws.WSDebug path surfaced unhandled ops during development.

func handleTypingStart(b *cache.Builder, payload interface{}) {
	gatewaylog.Warn("typing start received but not cached", payload)
}

func factoryTypingStart(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	return nil, false
}

func handleUserUpdate(b *cache.Builder, payload interface{}) {
	gatewaylog.Warn("user update received but not cached", payload)
}

func factoryUserUpdate(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	return nil, false
}

func handleVoiceStateUpdate(b *cache.Builder, payload interface{}) {
	gatewaylog.Warn("voice state update received but not cached", payload)
}

func factoryVoiceStateUpdate(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	return nil, false
}

func handleVoiceServerUpdate(b *cache.Builder, payload interface{}) {
	gatewaylog.Warn("voice server update received but not cached", payload)
}

func factoryVoiceServerUpdate(payload interface{}, prev, curr *cache.Snapshot) (interface{}, bool) {
	return nil, false
}
