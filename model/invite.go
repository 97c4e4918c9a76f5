package model

import "github.com/catuhana/rive/id"

// InviteKind discriminates a server-channel invite from a group
// invite.
type InviteKind int

const (
	InviteServer InviteKind = iota
	InviteGroup
)

// Invite is a flattened representation of the two invite variants,
// following the same single-struct-plus-kind shape as Channel.
type Invite struct {
	Kind InviteKind
	Code id.Id[id.Invite]

	// Server
	ServerID     id.Id[id.Server]
	ServerName   string
	ServerIcon   *Attachment
	ServerBanner *Attachment
	ServerFlags  *int32
	MemberCount  int64

	// Server / Group
	ChannelID          id.Id[id.Channel]
	ChannelName        string
	ChannelDescription *string
	UserName           string
	UserAvatar         *Attachment
}
