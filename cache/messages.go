package cache

import "github.com/finchwire/gatecore/discord"

// DefaultMaxMessagesPerChannel bounds how many messages are retained per
// channel. The upstream protocol doesn't specify a cache size (an Open
// Question in SPEC_FULL.md §9); this module evicts the oldest message by
// insertion order once the bound is exceeded.
const DefaultMaxMessagesPerChannel = 100

// messageRing is a bounded, insertion-ordered message cache for one
// channel. It is not safe for concurrent use; callers serialize access
// through the Builder, matching §5's single-task concurrency model.
type messageRing struct {
	max   int
	order []discord.MessageID
	byID  map[discord.MessageID]discord.Message
}

func newMessageRing(max int) *messageRing {
	if max <= 0 {
		max = DefaultMaxMessagesPerChannel
	}
	return &messageRing{max: max, byID: map[discord.MessageID]discord.Message{}}
}

func (r *messageRing) clone() *messageRing {
	c := newMessageRing(r.max)
	c.order = append([]discord.MessageID{}, r.order...)
	for id, msg := range r.byID {
		c.byID[id] = msg
	}
	return c
}

func (r *messageRing) get(id discord.MessageID) (discord.Message, bool) {
	m, ok := r.byID[id]
	return m, ok
}

func (r *messageRing) all() []discord.Message {
	out := make([]discord.Message, 0, len(r.order))
	for _, id := range r.order {
		if m, ok := r.byID[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// insert adds or replaces a message, evicting the oldest entry if the ring
// is at capacity and id is new.
func (r *messageRing) insert(msg discord.Message) {
	if _, exists := r.byID[msg.ID]; !exists {
		r.order = append(r.order, msg.ID)
		if len(r.order) > r.max {
			evict := r.order[0]
			r.order = r.order[1:]
			delete(r.byID, evict)
		}
	}
	r.byID[msg.ID] = msg
}

// mutate applies fn to the existing message with the given id, if present,
// and reports whether it found one to mutate. Used for MESSAGE_UPDATE's
// field-by-field partial merge.
func (r *messageRing) mutate(id discord.MessageID, fn func(*discord.Message)) bool {
	msg, ok := r.byID[id]
	if !ok {
		return false
	}
	fn(&msg)
	r.byID[id] = msg
	return true
}

// remove deletes a message, reporting both the prior value and whether it
// existed.
func (r *messageRing) remove(id discord.MessageID) (discord.Message, bool) {
	msg, ok := r.byID[id]
	if !ok {
		return discord.Message{}, false
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return msg, true
}
