package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catuhana/rive/cache"
	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

func TestReadyThenUserUpdate(t *testing.T) {
	c := cache.New()

	c.Update(event.Ready{
		Users: []model.User{{ID: id.New[id.User]("U"), Username: "a"}},
	})
	c.Update(event.UserUpdate{
		ID:   id.New[id.User]("U"),
		Data: model.PartialUser{Username: strPtr("b")},
	})

	u, ok := c.User(id.New[id.User]("U")).Value()
	require.True(t, ok)
	assert.Equal(t, "b", u.Username)
}

func TestUserUpdateFieldClear(t *testing.T) {
	c := cache.New()
	c.Update(event.Ready{
		Users: []model.User{{
			ID:       id.New[id.User]("U"),
			Username: "a",
			Avatar:   &model.Attachment{ID: id.New[id.Attachment]("A")},
		}},
	})

	c.Update(event.UserUpdate{
		ID:    id.New[id.User]("U"),
		Data:  model.PartialUser{},
		Clear: []model.FieldsUser{model.FieldsUserAvatar},
	})

	u, ok := c.User(id.New[id.User]("U")).Value()
	require.True(t, ok)
	assert.Nil(t, u.Avatar)
}

func TestUserUpdateOnUnknownIDIsNoOp(t *testing.T) {
	c := cache.New()

	c.Update(event.UserUpdate{ID: id.New[id.User]("missing"), Data: model.PartialUser{Username: strPtr("x")}})

	assert.False(t, c.User(id.New[id.User]("missing")).Ok())
}

func TestReactionsLifecycle(t *testing.T) {
	c := cache.New()
	msgID := id.New[id.Message]("M")
	emojiID := id.New[id.Emoji]("E")
	u1, u2 := id.New[id.User]("U1"), id.New[id.User]("U2")

	c.Update(event.Message{Message: model.Message{ID: msgID}})

	c.Update(event.MessageReact{ID: msgID, Emoji: emojiID, User: u1})
	m, _ := c.Message(msgID).Value()
	assert.Len(t, m.Reactions[emojiID], 1)

	c.Update(event.MessageReact{ID: msgID, Emoji: emojiID, User: u2})
	m, _ = c.Message(msgID).Value()
	assert.Len(t, m.Reactions[emojiID], 2)

	c.Update(event.MessageUnreact{ID: msgID, Emoji: emojiID, User: u1})
	m, _ = c.Message(msgID).Value()
	assert.Len(t, m.Reactions[emojiID], 1)
	_, stillThere := m.Reactions[emojiID][u1]
	assert.False(t, stillThere)

	c.Update(event.MessageUnreact{ID: msgID, Emoji: emojiID, User: u2})
	m, _ = c.Message(msgID).Value()
	_, emojiEntry := m.Reactions[emojiID]
	assert.False(t, emojiEntry, "emptied emoji entry must be removed, not left as an empty set")
}

func TestMessageUnreactTwiceIsNoOpAfterFirst(t *testing.T) {
	c := cache.New()
	msgID := id.New[id.Message]("M")
	emojiID := id.New[id.Emoji]("E")
	u := id.New[id.User]("U")

	c.Update(event.Message{Message: model.Message{ID: msgID}})
	c.Update(event.MessageReact{ID: msgID, Emoji: emojiID, User: u})
	c.Update(event.MessageUnreact{ID: msgID, Emoji: emojiID, User: u})
	c.Update(event.MessageUnreact{ID: msgID, Emoji: emojiID, User: u})

	m, _ := c.Message(msgID).Value()
	assert.Empty(t, m.Reactions)
}

func TestMessageRemoveReactionTwiceIsNoOp(t *testing.T) {
	c := cache.New()
	msgID := id.New[id.Message]("M")
	emojiID := id.New[id.Emoji]("E")

	c.Update(event.Message{Message: model.Message{
		ID:        msgID,
		Reactions: map[id.Id[id.Emoji]]map[id.Id[id.User]]struct{}{emojiID: {id.New[id.User]("U"): {}}},
	}})

	c.Update(event.MessageRemoveReaction{ID: msgID, Emoji: emojiID})
	c.Update(event.MessageRemoveReaction{ID: msgID, Emoji: emojiID})

	m, _ := c.Message(msgID).Value()
	assert.Empty(t, m.Reactions)
}

func TestMessageAppendOnNilEmbeds(t *testing.T) {
	c := cache.New()
	msgID := id.New[id.Message]("M")
	c.Update(event.Message{Message: model.Message{ID: msgID}})

	c.Update(event.MessageAppend{ID: msgID, Append: model.AppendMessage{Embeds: []model.Embed{{"title": "hi"}}}})

	m, _ := c.Message(msgID).Value()
	require.Len(t, m.Embeds, 1)
	assert.Equal(t, "hi", m.Embeds[0]["title"])
}

func TestUserPlatformWipePurgesAssociatedData(t *testing.T) {
	c := cache.New()
	target := id.New[id.User]("U")
	server := id.New[id.Server]("S")

	c.Update(event.Ready{
		Users: []model.User{{ID: target, Username: "gone"}},
		Channels: []model.Channel{{
			Kind:       model.ChannelDirectMessage,
			ID:         id.New[id.Channel]("DM"),
			Recipients: []id.Id[id.User]{target, id.New[id.User]("other")},
		}},
		Members: []model.Member{{ID: model.MemberKey{Server: server, User: target}}},
	})
	c.Update(event.Message{Message: model.Message{
		ID: id.New[id.Message]("M"), Author: target, Channel: id.New[id.Channel]("DM"),
	}})

	wipedFlags := model.UserFlagBanned
	c.Update(event.UserPlatformWipe{UserID: target, Flags: wipedFlags})

	assert.False(t, c.Message(id.New[id.Message]("M")).Ok())
	assert.False(t, c.Member(model.MemberKey{Server: server, User: target}).Ok())
	assert.False(t, c.Channel(id.New[id.Channel]("DM")).Ok())

	u, ok := c.User(target).Value()
	require.True(t, ok)
	require.NotNil(t, u.Flags)
	assert.Equal(t, wipedFlags, *u.Flags)
}

func TestServerMemberJoinSynthesisesMember(t *testing.T) {
	c := cache.New()
	server := id.New[id.Server]("S")
	user := id.New[id.User]("U")

	c.Update(event.ServerMemberJoin{ID: server, User: user})

	m, ok := c.Member(model.MemberKey{Server: server, User: user}).Value()
	require.True(t, ok)
	assert.Empty(t, m.Roles)
	assert.Nil(t, m.Nickname)
	assert.Nil(t, m.Timeout)
}

func TestServerRoleUpdateAndDelete(t *testing.T) {
	c := cache.New()
	server := id.New[id.Server]("S")
	role := id.New[id.Role]("R")

	c.Update(event.ServerCreate{ID: server, Server: model.Server{
		ID:    server,
		Roles: map[id.Id[id.Role]]model.Role{role: {Name: "Mod", Rank: 5}},
	}})

	newRank := int64(1)
	c.Update(event.ServerRoleUpdate{ID: server, RoleID: role, Data: model.PartialRole{Rank: &newRank}})

	s, _ := c.Server(server).Value()
	assert.Equal(t, int64(1), s.Roles[role].Rank)

	c.Update(event.ServerRoleDelete{ID: server, RoleID: role})
	s, _ = c.Server(server).Value()
	_, exists := s.Roles[role]
	assert.False(t, exists)
}

func TestClearThenReadyReproducesReadyAloneState(t *testing.T) {
	ready := event.Ready{Users: []model.User{{ID: id.New[id.User]("U"), Username: "a"}}}

	fresh := cache.New()
	fresh.Update(ready)

	dirty := cache.New()
	dirty.Update(ready)
	dirty.Update(event.UserUpdate{ID: id.New[id.User]("U"), Data: model.PartialUser{Username: strPtr("mutated")}})
	dirty.Clear()
	dirty.Update(ready)

	freshUser, _ := fresh.User(id.New[id.User]("U")).Value()
	dirtyUser, _ := dirty.User(id.New[id.User]("U")).Value()
	assert.Equal(t, freshUser, dirtyUser)
}

func TestDisabledKindIsNoOpOnUpdateAndMiss(t *testing.T) {
	c := cache.NewBuilder().CacheUsers(false).Build()

	c.Update(event.Ready{Users: []model.User{{ID: id.New[id.User]("U"), Username: "a"}}})

	assert.False(t, c.User(id.New[id.User]("U")).Ok())
	assert.Equal(t, 0, c.Stats().Users())
}

func strPtr(s string) *string { return &s }
