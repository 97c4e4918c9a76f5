package model

import (
	"time"

	"github.com/catuhana/rive/id"
)

// MemberKey is the composite primary key of a Member: a member exists
// scoped to one server for one user.
type MemberKey struct {
	Server id.Id[id.Server]
	User   id.Id[id.User]
}

func (k MemberKey) String() string {
	return k.Server.String() + ":" + k.User.String()
}

// Member is a user's membership record within one server.
type Member struct {
	ID MemberKey

	JoinedAt time.Time
	Nickname *string
	Avatar   *Attachment
	Roles    []id.Id[id.Role]
	Timeout  *time.Time
}

// PartialMember mirrors Member with every field optional.
type PartialMember struct {
	ID       *MemberKey
	JoinedAt *time.Time
	Nickname *string
	Avatar   *Attachment
	Roles    []id.Id[id.Role]
	Timeout  *time.Time
}

// FieldsMember names one clearable optional field on Member. Roles is
// special: clearing it sets the empty slice rather than nil, since
// Member.Roles is a required (if possibly empty) collection.
type FieldsMember int

const (
	FieldsMemberNickname FieldsMember = iota
	FieldsMemberAvatar
	FieldsMemberRoles
	FieldsMemberTimeout
)

// Patch merges partial into self.
func (self Member) Patch(partial *PartialMember) Member {
	if partial == nil {
		return self
	}
	return Member{
		ID:       self.ID,
		JoinedAt: Unwrap(partial.JoinedAt, self.JoinedAt),
		Nickname: Either(partial.Nickname, self.Nickname),
		Avatar:   Either(partial.Avatar, self.Avatar),
		Roles:    EitherSlice(partial.Roles, self.Roles),
		Timeout:  Either(partial.Timeout, self.Timeout),
	}
}

// Remove clears the named optional field.
func (self Member) Remove(field FieldsMember) Member {
	switch field {
	case FieldsMemberNickname:
		self.Nickname = nil
	case FieldsMemberAvatar:
		self.Avatar = nil
	case FieldsMemberRoles:
		self.Roles = []id.Id[id.Role]{}
	case FieldsMemberTimeout:
		self.Timeout = nil
	}
	return self
}
