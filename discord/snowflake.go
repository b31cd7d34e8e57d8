// Package discord holds the wire-level domain types shared by the gateway
// codec and the cache: users, guilds, channels, members, messages and the
// other entities a session observes over the socket.
package discord

import (
	"bytes"
	"strconv"
	"time"
)

// DiscordEpoch is the first millisecond of 2015, the reference point every
// Snowflake's timestamp bits are relative to.
const DiscordEpoch = 1420070400000

// Snowflake is Discord's 64-bit unique identifier. It is opaque outside of
// its embedded creation timestamp; two Snowflakes are compared only for
// equality, never ordered by any field but ID order, which happens to
// follow creation time.
type Snowflake uint64

// NullSnowflake is the zero value, used to mean "absent" in optional fields.
const NullSnowflake Snowflake = 0

// NewSnowflake constructs a Snowflake whose embedded timestamp is t. It is
// mostly useful for building synthetic IDs in tests.
func NewSnowflake(t time.Time) Snowflake {
	return Snowflake(timeToDiscordEpoch(t) << 22)
}

// UnmarshalJSON accepts Discord's string-encoded snowflakes; JSON numbers
// lose precision above 2^53 in most other implementations, so Discord
// quotes them.
func (s *Snowflake) UnmarshalJSON(v []byte) error {
	v = bytes.Trim(v, `"`)
	if string(v) == "null" {
		*s = 0
		return nil
	}

	u, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return err
	}

	*s = Snowflake(u)
	return nil
}

// MarshalJSON re-quotes the snowflake the way it arrived.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(s), 10) + `"`), nil
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// IsValid reports whether the snowflake is non-zero.
func (s Snowflake) IsValid() bool {
	return s != 0
}

// Time returns the creation timestamp embedded in the snowflake.
func (s Snowflake) Time() time.Time {
	return time.Unix(0, (int64(s)>>22)*int64(time.Millisecond)+DiscordEpoch*int64(time.Millisecond))
}

func timeToDiscordEpoch(t time.Time) int64 {
	return t.UnixNano()/int64(time.Millisecond) - DiscordEpoch
}

// Typed ID aliases. These are distinct types so a ChannelID can't be passed
// where a GuildID is expected, but they marshal identically to Snowflake.
type (
	GuildID   Snowflake
	ChannelID Snowflake
	UserID    Snowflake
	MessageID Snowflake
	RoleID    Snowflake
	EmojiID   Snowflake
)

func (id GuildID) String() string   { return Snowflake(id).String() }
func (id ChannelID) String() string { return Snowflake(id).String() }
func (id UserID) String() string    { return Snowflake(id).String() }
func (id MessageID) String() string { return Snowflake(id).String() }
func (id RoleID) String() string    { return Snowflake(id).String() }
func (id EmojiID) String() string   { return Snowflake(id).String() }

func (id GuildID) IsValid() bool   { return id != 0 }
func (id ChannelID) IsValid() bool { return id != 0 }
func (id UserID) IsValid() bool    { return id != 0 }
func (id MessageID) IsValid() bool { return id != 0 }
func (id RoleID) IsValid() bool    { return id != 0 }
func (id EmojiID) IsValid() bool   { return id != 0 }

func (id *GuildID) UnmarshalJSON(v []byte) error   { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id GuildID) MarshalJSON() ([]byte, error)    { return Snowflake(id).MarshalJSON() }
func (id *ChannelID) UnmarshalJSON(v []byte) error { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id ChannelID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *UserID) UnmarshalJSON(v []byte) error    { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id UserID) MarshalJSON() ([]byte, error)     { return Snowflake(id).MarshalJSON() }
func (id *MessageID) UnmarshalJSON(v []byte) error { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id MessageID) MarshalJSON() ([]byte, error)  { return Snowflake(id).MarshalJSON() }
func (id *RoleID) UnmarshalJSON(v []byte) error    { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id RoleID) MarshalJSON() ([]byte, error)     { return Snowflake(id).MarshalJSON() }
func (id *EmojiID) UnmarshalJSON(v []byte) error   { return (*Snowflake)(id).UnmarshalJSON(v) }
func (id EmojiID) MarshalJSON() ([]byte, error)    { return Snowflake(id).MarshalJSON() }
