package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

func TestUserPatchEmptyPartialIsNoOp(t *testing.T) {
	u := model.User{
		ID:       id.New[id.User]("U"),
		Username: "alice",
	}

	patched := u.Patch(&model.PartialUser{})
	assert.Equal(t, u, patched)
}

func TestUserPatchUpdatesOnlyProvidedFields(t *testing.T) {
	u := model.User{ID: id.New[id.User]("U"), Username: "a"}

	newName := "b"
	patched := u.Patch(&model.PartialUser{Username: &newName})

	assert.Equal(t, "b", patched.Username)
	assert.Equal(t, u.ID, patched.ID)
}

func TestUserRemoveAvatarClearsOnlyThatField(t *testing.T) {
	u := model.User{
		ID:       id.New[id.User]("U"),
		Username: "a",
		Avatar:   &model.Attachment{ID: id.New[id.Attachment]("A")},
	}

	cleared := u.Remove(model.FieldsUserAvatar)
	assert.Nil(t, cleared.Avatar)
	assert.Equal(t, "a", cleared.Username)
}

func TestUserRemoveIsIdempotent(t *testing.T) {
	u := model.User{ID: id.New[id.User]("U"), Avatar: &model.Attachment{}}

	once := u.Remove(model.FieldsUserAvatar)
	twice := once.Remove(model.FieldsUserAvatar)
	assert.Equal(t, once, twice)
}

func TestUserRemoveDisplayNameClearsDisplayName(t *testing.T) {
	name := "Alice"
	u := model.User{ID: id.New[id.User]("U"), DisplayName: &name}

	cleared := u.Remove(model.FieldsUserDisplayName)
	assert.Nil(t, cleared.DisplayName)
}

func TestUserRemoveStatusSubfieldKeepsOtherHalf(t *testing.T) {
	text := "brb"
	presence := model.PresenceBusy
	u := model.User{
		ID:     id.New[id.User]("U"),
		Status: &model.UserStatus{Text: &text, Presence: &presence},
	}

	cleared := u.Remove(model.FieldsUserStatusText)
	assert.Nil(t, cleared.Status.Text)
	assert.Equal(t, &presence, cleared.Status.Presence)
}

func TestChannelPatchPreservesVariant(t *testing.T) {
	c := model.Channel{
		Kind: model.ChannelText,
		ID:   id.New[id.Channel]("C"),
		Name: "general",
	}

	newName := "announcements"
	patched := c.Patch(&model.PartialChannel{Name: &newName})

	assert.Equal(t, model.ChannelText, patched.Kind)
	assert.Equal(t, c.ID, patched.ID)
	assert.Equal(t, "announcements", patched.Name)
}

func TestChannelPatchIgnoresFieldsNotMeaningfulForVariant(t *testing.T) {
	c := model.Channel{Kind: model.ChannelSavedMessages, ID: id.New[id.Channel]("C")}

	newName := "should not apply"
	patched := c.Patch(&model.PartialChannel{Name: &newName})

	assert.Equal(t, "", patched.Name)
	assert.Equal(t, model.ChannelSavedMessages, patched.Kind)
}

func TestMemberRemoveRolesClearsToEmptySliceNotNil(t *testing.T) {
	m := model.Member{
		ID:    model.MemberKey{Server: id.New[id.Server]("S"), User: id.New[id.User]("U")},
		Roles: []id.Id[id.Role]{id.New[id.Role]("R")},
	}

	cleared := m.Remove(model.FieldsMemberRoles)
	assert.NotNil(t, cleared.Roles)
	assert.Empty(t, cleared.Roles)
}

func TestServerRoleUpdatePatchesRoleInPlace(t *testing.T) {
	roleID := id.New[id.Role]("R")
	s := model.Server{
		ID:    id.New[id.Server]("S"),
		Roles: map[id.Id[id.Role]]model.Role{roleID: {Name: "Mod", Rank: 1}},
	}

	newRank := int64(0)
	role := s.Roles[roleID]
	role = role.Patch(&model.PartialRole{Rank: &newRank})
	s.Roles[roleID] = role

	assert.Equal(t, int64(0), s.Roles[roleID].Rank)
	assert.Equal(t, "Mod", s.Roles[roleID].Name)
}

func TestUnwrapPrefersPartialWhenPresent(t *testing.T) {
	v := "self"
	partial := "partial"
	assert.Equal(t, "partial", model.Unwrap(&partial, v))
	assert.Equal(t, "self", model.Unwrap[string](nil, v))
}

func TestEitherNilMeansNoChange(t *testing.T) {
	self := "self"
	partial := "partial"
	assert.Equal(t, &partial, model.Either(&partial, &self))
	assert.Equal(t, &self, model.Either[string](nil, &self))
}
