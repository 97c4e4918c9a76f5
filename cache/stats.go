package cache

// Stats reports per-kind resource counts.
type Stats struct {
	c *Cache
}

func (s Stats) Users() int    { return s.c.users.Len() }
func (s Stats) Servers() int  { return s.c.servers.Len() }
func (s Stats) Channels() int { return s.c.channels.Len() }
func (s Stats) Messages() int { return s.c.messages.Len() }
func (s Stats) Emojis() int   { return s.c.emojis.Len() }
func (s Stats) Members() int  { return s.c.members.Len() }
