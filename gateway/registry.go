package gateway

import "github.com/finchwire/gatecore/cache"

// HandleFunc mutates b to reflect the state change carried by a decoded
// dispatch payload. It is the "handler" third of an Event Registry entry
// (§4.2); payload is always the concrete type DecodePayload produced for
// this event name.
type HandleFunc func(b *cache.Builder, payload interface{})

// FactoryFunc synthesizes the high-level API message for a dispatch, given
// its decoded payload and the (prev, curr) snapshot pair straddling the
// handler's mutation. It returns ok=false when there is nothing worth
// publishing — e.g. the referenced entity was never cached, a recoverable
// event-ordering case per §4.4, not an error.
//
// The return type is interface{} rather than busmsg.Message, so this
// package does not depend on busmsg; callers type-assert the result to
// busmsg.Message. The factories registered by cache/handlers return a
// busmsg.Message value whenever ok is true, and that package's tests
// type-assert the results of several of them.
type FactoryFunc func(payload interface{}, prev, curr *cache.Snapshot) (msg interface{}, ok bool)

// Entry is one row of the Event Registry: everything the session needs to
// apply a dispatch and publish its API message, beyond decoding (which
// DecodePayload already handles from the event name alone).
type Entry struct {
	Handle  HandleFunc
	Factory FactoryFunc
}

// registry is the closed mapping from Event Name to Entry. It is populated
// at init() time by cache/handlers, which owns the actual per-event
// semantics (§4.4); this package only owns the table and its lookup, so
// that gateway never has to import cache/handlers and create a cycle.
var registry = map[EventName]Entry{}

// Register installs (or replaces) the registry entry for name. It is meant
// to be called from an init() function in a package that implements event
// handlers, mirroring events_map.go's decoders table but built explicitly
// rather than via a package-level literal, since handlers live in a
// separate package.
func Register(name EventName, entry Entry) {
	registry[name] = entry
}

// Lookup returns the registry entry for name, if the closed catalog
// includes it. A miss here is not necessarily an error: DecodePayload may
// have already rejected an unknown name before Lookup is ever called, and a
// Not-yet-implemented event is present, not absent: its Handle only logs a
// warning and its Factory always reports ok=false.
func Lookup(name EventName) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// RegisteredEventNames reports every event name that currently has a
// registry entry, in no particular order, for comparison with
// KnownEventNames (the decoders table).
func RegisteredEventNames() []EventName {
	names := make([]EventName, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
