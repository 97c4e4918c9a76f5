// Package cache maintains an in-memory, concurrency-safe snapshot of
// everything a gateway session has seen: users, servers, channels,
// messages, emojis and members. Feeding it the event stream keeps it
// in sync with the server; each resource kind can be disabled
// independently when a consumer does not need it.
package cache

import (
	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

// Cache is a concurrency-safe store of cached gateway resources.
type Cache struct {
	config Config

	users    *shardedMap[id.Id[id.User], model.User]
	servers  *shardedMap[id.Id[id.Server], model.Server]
	channels *shardedMap[id.Id[id.Channel], model.Channel]
	messages *shardedMap[id.Id[id.Message], model.Message]
	emojis   *shardedMap[id.Id[id.Emoji], model.Emoji]
	members  *shardedMap[model.MemberKey, model.Member]
}

// New returns a Cache with every resource kind enabled.
func New() *Cache {
	return newWithConfig(NewConfig())
}

func newWithConfig(config Config) *Cache {
	return &Cache{
		config:   config,
		users:    newShardedMap[id.Id[id.User], model.User](),
		servers:  newShardedMap[id.Id[id.Server], model.Server](),
		channels: newShardedMap[id.Id[id.Channel], model.Channel](),
		messages: newShardedMap[id.Id[id.Message], model.Message](),
		emojis:   newShardedMap[id.Id[id.Emoji], model.Emoji](),
		members:  newShardedMap[model.MemberKey, model.Member](),
	}
}

// Clear empties every resource kind.
func (c *Cache) Clear() {
	c.users.Clear()
	c.servers.Clear()
	c.channels.Clear()
	c.messages.Clear()
	c.emojis.Clear()
	c.members.Clear()
}

// Stats returns an interface to per-kind resource counts.
func (c *Cache) Stats() Stats {
	return Stats{c}
}

// Iter returns an interface to iterate over each resource kind.
func (c *Cache) Iter() Iter {
	return Iter{c}
}

// User returns a snapshot of the cached user, if any.
func (c *Cache) User(id id.Id[id.User]) Ref[model.User] {
	v, ok := c.users.Get(id)
	return Ref[model.User]{value: v, ok: ok}
}

// Server returns a snapshot of the cached server, if any.
func (c *Cache) Server(id id.Id[id.Server]) Ref[model.Server] {
	v, ok := c.servers.Get(id)
	return Ref[model.Server]{value: v, ok: ok}
}

// Channel returns a snapshot of the cached channel, if any.
func (c *Cache) Channel(id id.Id[id.Channel]) Ref[model.Channel] {
	v, ok := c.channels.Get(id)
	return Ref[model.Channel]{value: v, ok: ok}
}

// Message returns a snapshot of the cached message, if any.
func (c *Cache) Message(id id.Id[id.Message]) Ref[model.Message] {
	v, ok := c.messages.Get(id)
	return Ref[model.Message]{value: v, ok: ok}
}

// Emoji returns a snapshot of the cached emoji, if any.
func (c *Cache) Emoji(id id.Id[id.Emoji]) Ref[model.Emoji] {
	v, ok := c.emojis.Get(id)
	return Ref[model.Emoji]{value: v, ok: ok}
}

// Member returns a snapshot of the cached member, if any.
func (c *Cache) Member(key model.MemberKey) Ref[model.Member] {
	v, ok := c.members.Get(key)
	return Ref[model.Member]{value: v, ok: ok}
}

// Update applies one inbound event to the cache. Bulk events apply
// each of their member events in order; unrecognised or non-mutating
// events (Error, Authenticated, Pong, typing indicators, acks,
// relationship/settings/webhook/report/auth events, the ones the cache
// deliberately does not track) are no-ops.
func (c *Cache) Update(ev event.Inbound) {
	switch e := ev.(type) {
	case event.Bulk:
		for _, inner := range e.V {
			c.Update(inner)
		}
	case event.Ready:
		c.updateReady(e)
	case event.UserUpdate:
		c.updateUser(e)
	case event.UserPlatformWipe:
		c.updateUserPlatformWipe(e)
	case event.ServerCreate:
		c.updateServerCreate(e)
	case event.ServerUpdate:
		c.updateServerUpdate(e)
	case event.ServerDelete:
		c.servers.Delete(e.ID)
	case event.ChannelCreate:
		c.updateChannelCreate(e)
	case event.ChannelUpdate:
		c.updateChannelUpdate(e)
	case event.ChannelDelete:
		c.channels.Delete(e.ID)
	case event.Message:
		c.updateMessageCreate(e)
	case event.MessageUpdate:
		c.updateMessageUpdate(e)
	case event.MessageAppend:
		c.updateMessageAppend(e)
	case event.MessageReact:
		c.updateMessageReact(e)
	case event.MessageUnreact:
		c.updateMessageUnreact(e)
	case event.MessageRemoveReaction:
		c.updateMessageRemoveReaction(e)
	case event.MessageDelete:
		c.messages.Delete(e.ID)
	case event.BulkMessageDelete:
		for _, id := range e.IDs {
			c.messages.Delete(id)
		}
	case event.EmojiCreate:
		c.updateEmojiCreate(e)
	case event.EmojiDelete:
		c.emojis.Delete(e.ID)
	case event.ServerMemberJoin:
		c.updateServerMemberJoin(e)
	case event.ServerMemberUpdate:
		c.updateServerMemberUpdate(e)
	case event.ServerMemberLeave:
		c.members.Delete(model.MemberKey{Server: e.ID, User: e.User})
	case event.ServerRoleUpdate:
		c.updateServerRoleUpdate(e)
	case event.ServerRoleDelete:
		c.updateServerRoleDelete(e)
	}
}
