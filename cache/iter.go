package cache

import (
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

// Iter gives read-only access to every cached resource of one kind.
// Each method snapshots the current entries into a slice rather than
// exposing a live cursor, so a caller can range over it without
// worrying about a concurrent Update mutating the underlying map
// mid-iteration.
type Iter struct {
	c *Cache
}

func (it Iter) Users() []model.User {
	out := make([]model.User, 0, it.c.users.Len())
	it.c.users.ForEach(func(_ id.Id[id.User], v model.User) { out = append(out, v) })
	return out
}

func (it Iter) Servers() []model.Server {
	out := make([]model.Server, 0, it.c.servers.Len())
	it.c.servers.ForEach(func(_ id.Id[id.Server], v model.Server) { out = append(out, v) })
	return out
}

func (it Iter) Channels() []model.Channel {
	out := make([]model.Channel, 0, it.c.channels.Len())
	it.c.channels.ForEach(func(_ id.Id[id.Channel], v model.Channel) { out = append(out, v) })
	return out
}

func (it Iter) Messages() []model.Message {
	out := make([]model.Message, 0, it.c.messages.Len())
	it.c.messages.ForEach(func(_ id.Id[id.Message], v model.Message) { out = append(out, v) })
	return out
}

func (it Iter) Emojis() []model.Emoji {
	out := make([]model.Emoji, 0, it.c.emojis.Len())
	it.c.emojis.ForEach(func(_ id.Id[id.Emoji], v model.Emoji) { out = append(out, v) })
	return out
}

func (it Iter) Members() []model.Member {
	out := make([]model.Member, 0, it.c.members.Len())
	it.c.members.ForEach(func(_ model.MemberKey, v model.Member) { out = append(out, v) })
	return out
}
