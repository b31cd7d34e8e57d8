package session

// Config is the configuration the core consumes (§6): secrets and sizing
// knobs a host process loads and hands in, never read from the environment
// or a file by this package itself (process bootstrap and configuration
// loading are external collaborators, spec.md §1).
type Config struct {
	// Token is the bot token sent on Identify/Resume and as the
	// Authorization header for gateway discovery.
	Token string

	// LargeThreshold is the member-count threshold above which Discord
	// omits offline members from GUILD_CREATE, per Identify's
	// large_threshold field. Must be 50-250; Validate rejects anything
	// outside that range.
	LargeThreshold int

	// ShardNum and ShardTotal identify this connection's shard (§4.5's
	// Identify shard:[n, total]). Single-shard processes set ShardTotal
	// to 1 and ShardNum to 0.
	ShardNum, ShardTotal int

	// MaxReconnectAttempts bounds total retry work (§5's cancellation
	// bound); Run returns ErrExhaustedReconnects once reached.
	MaxReconnectAttempts int
}

// Validate reports a configuration error before Run wastes a connection
// attempt on it.
func (c Config) Validate() error {
	if c.Token == "" {
		return errTokenRequired
	}
	if c.LargeThreshold < 50 || c.LargeThreshold > 250 {
		return errLargeThreshold
	}
	if c.MaxReconnectAttempts <= 0 {
		return errMaxReconnectAttempts
	}
	return nil
}
