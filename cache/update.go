package cache

import (
	"time"

	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

func (c *Cache) updateReady(e event.Ready) {
	if c.config.CacheUsers {
		for _, u := range e.Users {
			c.users.Set(u.ID, u)
		}
	}
	if c.config.CacheServers {
		for _, s := range e.Servers {
			c.servers.Set(s.ID, s)
		}
	}
	if c.config.CacheChannels {
		for _, ch := range e.Channels {
			c.channels.Set(model.ChannelID(ch), ch)
		}
	}
	if c.config.CacheEmojis {
		for _, em := range e.Emojis {
			c.emojis.Set(em.ID, em)
		}
	}
	if c.config.CacheMembers {
		for _, m := range e.Members {
			c.members.Set(m.ID, m)
		}
	}
}

func (c *Cache) updateUser(e event.UserUpdate) {
	if !c.config.CacheUsers {
		return
	}
	user, ok := c.users.Get(e.ID)
	if !ok {
		return
	}
	user = user.Patch(&e.Data)
	for _, field := range e.Clear {
		user = user.Remove(field)
	}
	c.users.Set(user.ID, user)
}

// updateUserPlatformWipe purges every trace of a wiped user from the
// cache — messages they authored, memberships they held, direct
// message channels they were party to, in that order — then patches
// the surviving remnant's flags so a caller who still holds a
// reference can see why the account is gone. Resources are purged
// only when their kind is enabled: a disabled resource kind was never
// populated, so there is nothing to remove from it.
func (c *Cache) updateUserPlatformWipe(e event.UserPlatformWipe) {
	if c.config.CacheMessages {
		var toDelete []id.Id[id.Message]
		c.messages.ForEach(func(key id.Id[id.Message], m model.Message) {
			if m.Author.Equal(e.UserID) {
				toDelete = append(toDelete, key)
			}
		})
		for _, key := range toDelete {
			c.messages.Delete(key)
		}
	}
	if c.config.CacheMembers {
		var toDelete []model.MemberKey
		c.members.ForEach(func(key model.MemberKey, _ model.Member) {
			if key.User.Equal(e.UserID) {
				toDelete = append(toDelete, key)
			}
		})
		for _, key := range toDelete {
			c.members.Delete(key)
		}
	}
	if c.config.CacheChannels {
		var toDelete []id.Id[id.Channel]
		c.channels.ForEach(func(key id.Id[id.Channel], ch model.Channel) {
			if ch.Kind != model.ChannelDirectMessage {
				return
			}
			for _, recipient := range ch.Recipients {
				if recipient.Equal(e.UserID) {
					toDelete = append(toDelete, key)
					return
				}
			}
		})
		for _, key := range toDelete {
			c.channels.Delete(key)
		}
	}
	if c.config.CacheUsers {
		if user, ok := c.users.Get(e.UserID); ok {
			user.Flags = &e.Flags
			c.users.Set(user.ID, user)
		}
	}
}

func (c *Cache) updateServerCreate(e event.ServerCreate) {
	if c.config.CacheServers {
		c.servers.Set(e.ID, e.Server)
	}
	if c.config.CacheChannels {
		for _, ch := range e.Channels {
			c.channels.Set(model.ChannelID(ch), ch)
		}
	}
}

func (c *Cache) updateServerUpdate(e event.ServerUpdate) {
	if !c.config.CacheServers {
		return
	}
	server, ok := c.servers.Get(e.ID)
	if !ok {
		return
	}
	server = server.Patch(&e.Data)
	for _, field := range e.Clear {
		server = server.Remove(field)
	}
	c.servers.Set(server.ID, server)
}

func (c *Cache) updateChannelCreate(e event.ChannelCreate) {
	if !c.config.CacheChannels {
		return
	}
	c.channels.Set(model.ChannelID(e.Channel), e.Channel)
}

func (c *Cache) updateChannelUpdate(e event.ChannelUpdate) {
	if !c.config.CacheChannels {
		return
	}
	channel, ok := c.channels.Get(e.ID)
	if !ok {
		return
	}
	channel = channel.Patch(&e.Data)
	for _, field := range e.Clear {
		channel = channel.Remove(field)
	}
	c.channels.Set(model.ChannelID(channel), channel)
}

func (c *Cache) updateMessageCreate(e event.Message) {
	if !c.config.CacheMessages {
		return
	}
	c.messages.Set(e.ID, e.Message)
}

func (c *Cache) updateMessageUpdate(e event.MessageUpdate) {
	if !c.config.CacheMessages {
		return
	}
	message, ok := c.messages.Get(e.ID)
	if !ok {
		return
	}
	message = message.Patch(&e.Data)
	c.messages.Set(message.ID, message)
}

// updateMessageAppend extends a message's embed slice rather than
// replacing it, carrying over whichever side (existing or appended)
// is empty.
func (c *Cache) updateMessageAppend(e event.MessageAppend) {
	if !c.config.CacheMessages {
		return
	}
	message, ok := c.messages.Get(e.ID)
	if !ok {
		return
	}
	message.Embeds = append(append([]model.Embed{}, message.Embeds...), e.Append.Embeds...)
	c.messages.Set(message.ID, message)
}

func (c *Cache) updateMessageReact(e event.MessageReact) {
	if !c.config.CacheMessages {
		return
	}
	message, ok := c.messages.Get(e.ID)
	if !ok {
		return
	}
	if message.Reactions == nil {
		message.Reactions = map[id.Id[id.Emoji]]map[id.Id[id.User]]struct{}{}
	}
	users := message.Reactions[e.Emoji]
	if users == nil {
		users = map[id.Id[id.User]]struct{}{}
		message.Reactions[e.Emoji] = users
	}
	users[e.User] = struct{}{}
	c.messages.Set(message.ID, message)
}

func (c *Cache) updateMessageUnreact(e event.MessageUnreact) {
	if !c.config.CacheMessages {
		return
	}
	message, ok := c.messages.Get(e.ID)
	if !ok {
		return
	}
	if users, found := message.Reactions[e.Emoji]; found {
		delete(users, e.User)
		if len(users) == 0 {
			delete(message.Reactions, e.Emoji)
		}
	}
	c.messages.Set(message.ID, message)
}

func (c *Cache) updateMessageRemoveReaction(e event.MessageRemoveReaction) {
	if !c.config.CacheMessages {
		return
	}
	message, ok := c.messages.Get(e.ID)
	if !ok {
		return
	}
	delete(message.Reactions, e.Emoji)
	c.messages.Set(message.ID, message)
}

func (c *Cache) updateEmojiCreate(e event.EmojiCreate) {
	if !c.config.CacheEmojis {
		return
	}
	c.emojis.Set(e.ID, e.Emoji)
}

// updateServerMemberJoin synthesises a fresh Member record: the join
// event carries no membership data beyond who joined, so the cache
// stamps JoinedAt with the local time of receipt rather than a server
// timestamp.
func (c *Cache) updateServerMemberJoin(e event.ServerMemberJoin) {
	if !c.config.CacheMembers {
		return
	}
	key := model.MemberKey{Server: e.ID, User: e.User}
	c.members.Set(key, model.Member{
		ID:       key,
		JoinedAt: time.Now(),
		Roles:    []id.Id[id.Role]{},
	})
}

func (c *Cache) updateServerMemberUpdate(e event.ServerMemberUpdate) {
	if !c.config.CacheMembers {
		return
	}
	member, ok := c.members.Get(e.ID)
	if !ok {
		return
	}
	member = member.Patch(&e.Data)
	for _, field := range e.Clear {
		member = member.Remove(field)
	}
	c.members.Set(member.ID, member)
}

func (c *Cache) updateServerRoleUpdate(e event.ServerRoleUpdate) {
	if !c.config.CacheServers {
		return
	}
	server, ok := c.servers.Get(e.ID)
	if !ok {
		return
	}
	role, ok := server.Roles[e.RoleID]
	if !ok {
		return
	}
	role = role.Patch(&e.Data)
	for _, field := range e.Clear {
		role = role.Remove(field)
	}
	server.Roles = cloneRoles(server.Roles)
	server.Roles[e.RoleID] = role
	c.servers.Set(server.ID, server)
}

// cloneRoles copies a server's role map before a point mutation: the
// map is a reference shared with every prior Ref[Server] snapshot
// handed to readers, so mutating it in place would race a concurrent
// reader iterating that snapshot's Roles.
func cloneRoles(roles map[id.Id[id.Role]]model.Role) map[id.Id[id.Role]]model.Role {
	out := make(map[id.Id[id.Role]]model.Role, len(roles))
	for k, v := range roles {
		out[k] = v
	}
	return out
}

func (c *Cache) updateServerRoleDelete(e event.ServerRoleDelete) {
	if !c.config.CacheServers {
		return
	}
	server, ok := c.servers.Get(e.ID)
	if !ok {
		return
	}
	server.Roles = cloneRoles(server.Roles)
	delete(server.Roles, e.RoleID)
	c.servers.Set(server.ID, server)
}
