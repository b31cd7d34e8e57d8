package gateway

import (
	"runtime"

	"github.com/finchwire/gatecore/discord"
)

// DefaultIdentity is the Properties object sent by clients that don't
// override it.
var DefaultIdentity = IdentifyProperties{
	OS:              runtime.GOOS,
	Browser:         "gatecore",
	Device:          "gatecore",
	Referrer:        "",
	ReferringDomain: "",
}

// IdentifyProperties carries the client-environment fields Discord wants on
// Identify.
type IdentifyProperties struct {
	OS              string `json:"$os"`
	Browser         string `json:"$browser"`
	Device          string `json:"$device"`
	Referrer        string `json:"$referrer"`
	ReferringDomain string `json:"$referring_domain"`
}

// Shard is the [shard_num, shard_total] pair Discord expects in Identify.
type Shard [2]int

// IdentifyCommand is the Op 2 payload.
type IdentifyCommand struct {
	Token          string             `json:"token"`
	Properties     IdentifyProperties `json:"properties"`
	Compress       bool               `json:"compress"`
	LargeThreshold int                `json:"large_threshold"`
	Shard          Shard              `json:"shard"`
}

// NewIdentifyCommand builds an IdentifyCommand from the configuration
// fields the core consumes (§6): token, large_threshold, shard_num and
// shard_total.
func NewIdentifyCommand(token string, largeThreshold, shardNum, shardTotal int) IdentifyCommand {
	return IdentifyCommand{
		Token:          token,
		Properties:     DefaultIdentity,
		Compress:       false,
		LargeThreshold: largeThreshold,
		Shard:          Shard{shardNum, shardTotal},
	}
}

// ResumeCommand is the Op 6 payload.
type ResumeCommand struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Sequence  int64  `json:"seq"`
}

// HelloPayload is the Op 10 payload delivered right after the WebSocket
// upgrade.
type HelloPayload struct {
	HeartbeatIntervalMs int64    `json:"heartbeat_interval"`
	Trace               []string `json:"_trace,omitempty"`
}

// RequestGuildMembersCommand is the Op 8 payload, sent by the application
// (not the session machinery) to ask the gateway to stream guild members.
type RequestGuildMembersCommand struct {
	GuildID discord.GuildID `json:"guild_id"`
	Query   string          `json:"query"`
	Limit   int             `json:"limit"`
}
