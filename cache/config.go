package cache

// Config toggles which resource kinds a Cache stores. All resources
// are cached by default; disabling one makes its Update handlers
// no-ops and its accessors always miss.
type Config struct {
	CacheUsers    bool
	CacheServers  bool
	CacheChannels bool
	CacheMessages bool
	CacheEmojis   bool
	CacheMembers  bool
}

// NewConfig returns a Config with every resource kind enabled.
func NewConfig() Config {
	return Config{
		CacheUsers:    true,
		CacheServers:  true,
		CacheChannels: true,
		CacheMessages: true,
		CacheEmojis:   true,
		CacheMembers:  true,
	}
}
