package model

import "github.com/catuhana/rive/id"

// ChannelKind discriminates the variant of a Channel. The kind is
// fixed for a given channel id for the lifetime of the cache entry;
// Patch never changes it.
type ChannelKind int

const (
	ChannelSavedMessages ChannelKind = iota
	ChannelDirectMessage
	ChannelGroup
	ChannelText
	ChannelVoice
)

// Channel is a flat representation of the platform's five channel
// variants. Rather than a type hierarchy, every case's fields live
// side by side here (per-case field lists are meaningless for other
// cases and are simply left zero); Kind says which fields apply.
//
//   - SavedMessages: ID, User.
//   - DirectMessage: ID, Active, Recipients, LastMessageID.
//   - Group: ID, Name, Owner, Description, Recipients, Icon,
//     LastMessageID, Permissions, NSFW.
//   - Text: ID, Server, Name, Description, Icon, LastMessageID,
//     DefaultPermissions, RolePermissions, NSFW.
//   - Voice: ID, Server, Name, Description, Icon, DefaultPermissions,
//     RolePermissions, NSFW.
type Channel struct {
	Kind ChannelKind
	ID   id.Id[id.Channel]

	// SavedMessages
	User id.Id[id.User]

	// DirectMessage / Group
	Active        bool
	Recipients    []id.Id[id.User]
	LastMessageID *id.Id[id.Message]

	// Group
	Name        string
	Owner       id.Id[id.User]
	Description *string
	Icon        *Attachment
	Permissions *Permission
	NSFW        bool

	// Text / Voice
	Server             id.Id[id.Server]
	DefaultPermissions *OverrideField
	RolePermissions    map[id.Id[id.Role]]OverrideField
}

// PartialChannel is a flat superset of every case's mutable fields;
// applying it must preserve the channel's variant and leave fields
// that do not exist in that variant untouched.
type PartialChannel struct {
	Name               *string                           `json:"name,omitempty"`
	Owner              *id.Id[id.User]                   `json:"owner,omitempty"`
	Description        *string                           `json:"description,omitempty"`
	Icon               *Attachment                        `json:"icon,omitempty"`
	NSFW               *bool                              `json:"nsfw,omitempty"`
	Active             *bool                              `json:"active,omitempty"`
	Permissions        *Permission                        `json:"permissions,omitempty"`
	RolePermissions    map[id.Id[id.Role]]OverrideField   `json:"role_permissions,omitempty"`
	DefaultPermissions *OverrideField                     `json:"default_permissions,omitempty"`
	LastMessageID      *id.Id[id.Message]                 `json:"last_message_id,omitempty"`
}

// FieldsChannel names one clearable optional field on Channel.
type FieldsChannel int

const (
	FieldsChannelDescription FieldsChannel = iota
	FieldsChannelIcon
	FieldsChannelDefaultPermissions
)

// Patch merges partial into self, dispatching on Kind so that fields
// meaningless for the concrete variant are ignored even if present in
// partial.
func (self Channel) Patch(partial *PartialChannel) Channel {
	if partial == nil {
		return self
	}

	switch self.Kind {
	case ChannelSavedMessages:
		// No mutable fields.
		return self
	case ChannelDirectMessage:
		self.Active = Unwrap(partial.Active, self.Active)
		self.LastMessageID = Either(partial.LastMessageID, self.LastMessageID)
		return self
	case ChannelGroup:
		self.Name = Unwrap(partial.Name, self.Name)
		self.Owner = Unwrap(partial.Owner, self.Owner)
		self.Description = Either(partial.Description, self.Description)
		self.Icon = Either(partial.Icon, self.Icon)
		self.LastMessageID = Either(partial.LastMessageID, self.LastMessageID)
		self.Permissions = Either(partial.Permissions, self.Permissions)
		self.NSFW = Unwrap(partial.NSFW, self.NSFW)
		return self
	case ChannelText:
		self.Name = Unwrap(partial.Name, self.Name)
		self.Description = Either(partial.Description, self.Description)
		self.Icon = Either(partial.Icon, self.Icon)
		self.LastMessageID = Either(partial.LastMessageID, self.LastMessageID)
		self.DefaultPermissions = Either(partial.DefaultPermissions, self.DefaultPermissions)
		self.RolePermissions = eitherMap(partial.RolePermissions, self.RolePermissions)
		self.NSFW = Unwrap(partial.NSFW, self.NSFW)
		return self
	case ChannelVoice:
		self.Name = Unwrap(partial.Name, self.Name)
		self.Description = Either(partial.Description, self.Description)
		self.Icon = Either(partial.Icon, self.Icon)
		self.DefaultPermissions = Either(partial.DefaultPermissions, self.DefaultPermissions)
		self.RolePermissions = eitherMap(partial.RolePermissions, self.RolePermissions)
		self.NSFW = Unwrap(partial.NSFW, self.NSFW)
		return self
	}
	return self
}

// Remove clears the named optional field, when meaningful for the
// channel's variant.
func (self Channel) Remove(field FieldsChannel) Channel {
	switch field {
	case FieldsChannelDescription:
		self.Description = nil
	case FieldsChannelIcon:
		self.Icon = nil
	case FieldsChannelDefaultPermissions:
		self.DefaultPermissions = nil
	}
	return self
}

// ChannelID extracts the id carried by any channel variant. Every
// Channel has one regardless of kind; this is the single place that
// knows how to reach into the flat struct for it (mirroring the
// source's per-variant channel_id dispatcher).
func ChannelID(c Channel) id.Id[id.Channel] {
	return c.ID
}
