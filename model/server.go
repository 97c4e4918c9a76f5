package model

import "github.com/catuhana/rive/id"

// Role is a server role: a named permission override plus display
// hints.
type Role struct {
	Name        string         `json:"name"`
	Permissions OverrideField  `json:"permissions"`
	Colour      *string        `json:"colour,omitempty"`
	Hoist       bool           `json:"hoist,omitempty"`
	Rank        int64          `json:"rank,omitempty"`
}

// PartialRole mirrors Role with every field optional.
type PartialRole struct {
	Name        *string        `json:"name,omitempty"`
	Permissions *OverrideField `json:"permissions,omitempty"`
	Colour      *string        `json:"colour,omitempty"`
	Hoist       *bool          `json:"hoist,omitempty"`
	Rank        *int64         `json:"rank,omitempty"`
}

// FieldsRole names one clearable optional field on Role.
type FieldsRole int

const (
	FieldsRoleColour FieldsRole = iota
)

// Patch merges partial into self.
func (self Role) Patch(partial *PartialRole) Role {
	if partial == nil {
		return self
	}
	return Role{
		Name:        Unwrap(partial.Name, self.Name),
		Permissions: Unwrap(partial.Permissions, self.Permissions),
		Colour:      Either(partial.Colour, self.Colour),
		Hoist:       Unwrap(partial.Hoist, self.Hoist),
		Rank:        Unwrap(partial.Rank, self.Rank),
	}
}

// Remove clears the named optional field.
func (self Role) Remove(field FieldsRole) Role {
	switch field {
	case FieldsRoleColour:
		self.Colour = nil
	}
	return self
}

// Category groups channels for display purposes.
type Category struct {
	ID       id.Id[id.Category]  `json:"id"`
	Title    string              `json:"title"`
	Channels []id.Id[id.Channel] `json:"channels"`
}

// SystemMessageChannels maps system event kinds to the channel they
// should be announced in.
type SystemMessageChannels struct {
	UserJoined *id.Id[id.Channel] `json:"user_joined,omitempty"`
	UserLeft   *id.Id[id.Channel] `json:"user_left,omitempty"`
	UserKicked *id.Id[id.Channel] `json:"user_kicked,omitempty"`
	UserBanned *id.Id[id.Channel] `json:"user_banned,omitempty"`
}

// ServerFlags is a bit field of platform-level server standing.
type ServerFlags uint64

const (
	ServerFlagVerified ServerFlags = 1 << 0
	ServerFlagOfficial ServerFlags = 1 << 1
)

// Server is a Revolt-style guild: a named container of channels,
// roles, and members.
type Server struct {
	ID          id.Id[id.Server] `json:"_id"`
	Owner       id.Id[id.User]   `json:"owner"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`

	Channels   []id.Id[id.Channel] `json:"channels"`
	Categories []Category          `json:"categories,omitempty"`

	SystemMessages *SystemMessageChannels `json:"system_messages,omitempty"`

	Roles              map[id.Id[id.Role]]Role `json:"roles"`
	DefaultPermissions Permission              `json:"default_permissions"`

	Icon   *Attachment `json:"icon,omitempty"`
	Banner *Attachment `json:"banner,omitempty"`

	Flags *ServerFlags `json:"flags,omitempty"`

	NSFW         bool `json:"nsfw,omitempty"`
	Analytics    bool `json:"analytics,omitempty"`
	Discoverable bool `json:"discoverable,omitempty"`
}

// PartialServer mirrors Server with every field optional.
type PartialServer struct {
	Owner       *id.Id[id.User] `json:"owner,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`

	Channels   []id.Id[id.Channel] `json:"channels,omitempty"`
	Categories []Category          `json:"categories,omitempty"`

	SystemMessages *SystemMessageChannels `json:"system_messages,omitempty"`

	Roles              map[id.Id[id.Role]]Role `json:"roles,omitempty"`
	DefaultPermissions *Permission             `json:"default_permissions,omitempty"`

	Icon   *Attachment `json:"icon,omitempty"`
	Banner *Attachment `json:"banner,omitempty"`

	Flags *ServerFlags `json:"flags,omitempty"`

	NSFW         *bool `json:"nsfw,omitempty"`
	Analytics    *bool `json:"analytics,omitempty"`
	Discoverable *bool `json:"discoverable,omitempty"`
}

// FieldsServer names one clearable optional field on Server.
type FieldsServer int

const (
	FieldsServerDescription FieldsServer = iota
	FieldsServerCategories
	FieldsServerSystemMessages
	FieldsServerIcon
	FieldsServerBanner
)

// Patch merges partial into self. The identity field (ID) is never
// overwritten by a partial.
func (self Server) Patch(partial *PartialServer) Server {
	if partial == nil {
		return self
	}
	return Server{
		ID:                 self.ID,
		Owner:              Unwrap(partial.Owner, self.Owner),
		Name:               Unwrap(partial.Name, self.Name),
		Description:        Either(partial.Description, self.Description),
		Channels:           EitherSlice(partial.Channels, self.Channels),
		Categories:         EitherSlice(partial.Categories, self.Categories),
		SystemMessages:     Either(partial.SystemMessages, self.SystemMessages),
		Roles:              eitherMap(partial.Roles, self.Roles),
		DefaultPermissions: Unwrap(partial.DefaultPermissions, self.DefaultPermissions),
		Icon:               Either(partial.Icon, self.Icon),
		Banner:             Either(partial.Banner, self.Banner),
		Flags:              Either(partial.Flags, self.Flags),
		NSFW:               Unwrap(partial.NSFW, self.NSFW),
		Analytics:          Unwrap(partial.Analytics, self.Analytics),
		Discoverable:       Unwrap(partial.Discoverable, self.Discoverable),
	}
}

// Remove clears the named optional field.
func (self Server) Remove(field FieldsServer) Server {
	switch field {
	case FieldsServerDescription:
		self.Description = nil
	case FieldsServerCategories:
		self.Categories = nil
	case FieldsServerSystemMessages:
		self.SystemMessages = nil
	case FieldsServerIcon:
		self.Icon = nil
	case FieldsServerBanner:
		self.Banner = nil
	}
	return self
}

func eitherMap[K comparable, V any](partial map[K]V, self map[K]V) map[K]V {
	if partial != nil {
		return partial
	}
	return self
}
