package cache

// Builder configures and constructs a Cache.
type Builder struct {
	config Config
}

// NewBuilder returns a Builder with every resource kind enabled.
func NewBuilder() *Builder {
	return &Builder{config: NewConfig()}
}

// CacheUsers sets whether users are cached.
func (b *Builder) CacheUsers(value bool) *Builder {
	b.config.CacheUsers = value
	return b
}

// CacheServers sets whether servers are cached.
func (b *Builder) CacheServers(value bool) *Builder {
	b.config.CacheServers = value
	return b
}

// CacheChannels sets whether channels are cached.
func (b *Builder) CacheChannels(value bool) *Builder {
	b.config.CacheChannels = value
	return b
}

// CacheMessages sets whether messages are cached.
func (b *Builder) CacheMessages(value bool) *Builder {
	b.config.CacheMessages = value
	return b
}

// CacheEmojis sets whether emojis are cached.
func (b *Builder) CacheEmojis(value bool) *Builder {
	b.config.CacheEmojis = value
	return b
}

// CacheMembers sets whether members are cached.
func (b *Builder) CacheMembers(value bool) *Builder {
	b.config.CacheMembers = value
	return b
}

// Build consumes the builder, returning a configured Cache.
func (b *Builder) Build() *Cache {
	return newWithConfig(b.config)
}
