package model

import "github.com/catuhana/rive/id"

// RelationshipStatus is a user's relationship with another user.
type RelationshipStatus int

const (
	RelationshipNone RelationshipStatus = iota
	RelationshipUser
	RelationshipFriend
	RelationshipOutgoing
	RelationshipIncoming
	RelationshipBlocked
	RelationshipBlockedOther
)

// Relationship is one entry in a user's relationship list.
type Relationship struct {
	ID     id.Id[id.User]     `json:"_id"`
	Status RelationshipStatus `json:"status"`
}

// Presence is a user's active presence option.
type Presence int

const (
	PresenceOnline Presence = iota
	PresenceIdle
	PresenceFocus
	PresenceBusy
	PresenceInvisible
)

// UserStatus is a user's custom status: free text plus a presence.
type UserStatus struct {
	Text     *string   `json:"text,omitempty"`
	Presence *Presence `json:"presence,omitempty"`
}

// UserProfile is the content shown on a user's profile page.
type UserProfile struct {
	Content    *string     `json:"content,omitempty"`
	Background *Attachment `json:"background,omitempty"`
}

// Badges is a bit field of cosmetic badges a user can hold.
type Badges uint64

//goland:noinspection GoUnusedConst
const (
	BadgeDeveloper             Badges = 1 << 0
	BadgeTranslator            Badges = 1 << 1
	BadgeSupporter             Badges = 1 << 2
	BadgeResponsibleDisclosure Badges = 1 << 3
	BadgeFounder               Badges = 1 << 4
	BadgePlatformModeration    Badges = 1 << 5
	BadgeActiveSupporter       Badges = 1 << 6
	BadgePaw                   Badges = 1 << 7
	BadgeEarlyAdopter          Badges = 1 << 8
)

// UserFlags is a bit field describing platform-level standing.
type UserFlags uint64

const (
	UserFlagSuspended UserFlags = 1 << 0
	UserFlagDeleted   UserFlags = 1 << 1
	UserFlagBanned    UserFlags = 1 << 2
	UserFlagSpam      UserFlags = 1 << 3
)

// BotInformation marks a User as bot-owned.
type BotInformation struct {
	Owner id.Id[id.User] `json:"owner"`
}

// User is a platform account, bot or human.
type User struct {
	ID            id.Id[id.User] `json:"_id"`
	Username      string         `json:"username"`
	Discriminator string         `json:"discriminator"`
	DisplayName   *string        `json:"display_name,omitempty"`
	Avatar        *Attachment    `json:"avatar,omitempty"`
	Relations     []Relationship `json:"relations,omitempty"`

	Badges  *Badges      `json:"badges,omitempty"`
	Status  *UserStatus  `json:"status,omitempty"`
	Profile *UserProfile `json:"profile,omitempty"`

	Flags      *UserFlags       `json:"flags,omitempty"`
	Privileged bool             `json:"privileged,omitempty"`
	Bot        *BotInformation  `json:"bot,omitempty"`

	Relationship *RelationshipStatus `json:"relationship,omitempty"`
	Online       *bool               `json:"online,omitempty"`
}

// PartialUser mirrors User with every field optional; consumed only by
// Patch, never stored.
type PartialUser struct {
	ID            *id.Id[id.User] `json:"_id,omitempty"`
	Username      *string         `json:"username,omitempty"`
	Discriminator *string         `json:"discriminator,omitempty"`
	DisplayName   *string         `json:"display_name,omitempty"`
	Avatar        *Attachment     `json:"avatar,omitempty"`
	Relations     []Relationship  `json:"relations,omitempty"`

	Badges  *Badges      `json:"badges,omitempty"`
	Status  *UserStatus  `json:"status,omitempty"`
	Profile *UserProfile `json:"profile,omitempty"`

	Flags      *UserFlags      `json:"flags,omitempty"`
	Privileged *bool           `json:"privileged,omitempty"`
	Bot        *BotInformation `json:"bot,omitempty"`

	Relationship *RelationshipStatus `json:"relationship,omitempty"`
	Online       *bool               `json:"online,omitempty"`
}

// FieldsUser names one clearable optional field on User.
type FieldsUser int

const (
	FieldsUserAvatar FieldsUser = iota
	FieldsUserStatusText
	FieldsUserStatusPresence
	FieldsUserProfileContent
	FieldsUserProfileBackground
	FieldsUserDisplayName
)

// Patch merges partial into self per the unwrap/either rules: required
// fields take partial's value when present, optional fields take
// partial's value only when non-nil (nil means "no change").
func (self User) Patch(partial *PartialUser) User {
	if partial == nil {
		return self
	}
	return User{
		ID:            Unwrap(partial.ID, self.ID),
		Username:      Unwrap(partial.Username, self.Username),
		Discriminator: Unwrap(partial.Discriminator, self.Discriminator),
		DisplayName:   Either(partial.DisplayName, self.DisplayName),
		Avatar:        Either(partial.Avatar, self.Avatar),
		Relations:     EitherSlice(partial.Relations, self.Relations),
		Badges:        Either(partial.Badges, self.Badges),
		Status:        Either(partial.Status, self.Status),
		Profile:       Either(partial.Profile, self.Profile),
		Flags:         Either(partial.Flags, self.Flags),
		Privileged:    Unwrap(partial.Privileged, self.Privileged),
		Bot:           Either(partial.Bot, self.Bot),
		Relationship:  Either(partial.Relationship, self.Relationship),
		Online:        Either(partial.Online, self.Online),
	}
}

// Remove clears the named optional field. Composite fields (the two
// halves of UserStatus, the two halves of UserProfile) rewrite the
// composite with only that sub-field cleared.
func (self User) Remove(field FieldsUser) User {
	switch field {
	case FieldsUserAvatar:
		self.Avatar = nil
	case FieldsUserStatusText:
		if self.Status != nil {
			s := *self.Status
			s.Text = nil
			self.Status = &s
		}
	case FieldsUserStatusPresence:
		if self.Status != nil {
			s := *self.Status
			s.Presence = nil
			self.Status = &s
		}
	case FieldsUserProfileContent:
		if self.Profile != nil {
			p := *self.Profile
			p.Content = nil
			self.Profile = &p
		}
	case FieldsUserProfileBackground:
		if self.Profile != nil {
			p := *self.Profile
			p.Background = nil
			self.Profile = &p
		}
	case FieldsUserDisplayName:
		self.DisplayName = nil
	}
	return self
}
