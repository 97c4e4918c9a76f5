package model

import (
	"time"

	"github.com/catuhana/rive/id"
)

// SystemMessageKind discriminates the variant of a SystemMessage.
type SystemMessageKind int

const (
	SystemMessageText SystemMessageKind = iota
	SystemMessageUserAdded
	SystemMessageUserRemove
	SystemMessageUserJoined
	SystemMessageUserLeft
	SystemMessageUserKicked
	SystemMessageUserBanned
	SystemMessageChannelRenamed
	SystemMessageChannelDescriptionChanged
	SystemMessageChannelIconChanged
	SystemMessageChannelOwnershipChanged
)

// SystemMessage is a server-generated message (member join/leave,
// channel rename, ...), flattened the same way Channel is: one struct,
// Kind says which fields are meaningful.
type SystemMessage struct {
	Kind SystemMessageKind

	Content string         // Text
	ID      id.Id[id.User] // UserAdded/Remove/Joined/Left/Kicked/Banned
	By      id.Id[id.User] // UserAdded/Remove, ChannelRenamed, ChannelDescriptionChanged, ChannelIconChanged
	Name    string         // ChannelRenamed
	From    id.Id[id.User] // ChannelOwnershipChanged
	To      id.Id[id.User] // ChannelOwnershipChanged
}

// Masquerade overrides the display name/avatar/colour shown for one
// message, independent of the author's own profile.
type Masquerade struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Colour *string `json:"colour,omitempty"`
}

// Interactions configures how a message may be reacted to.
type Interactions struct {
	Reactions         []string `json:"reactions,omitempty"`
	RestrictReactions bool     `json:"restrict_reactions,omitempty"`
}

// AppendMessage carries additional data for a MessageAppend event.
type AppendMessage struct {
	Embeds []Embed `json:"embeds,omitempty"`
}

// Embed is an opaque rich-embed payload attached to a message. Its
// internal shape is REST/wire concern, not core cache logic; it is
// kept as a raw JSON-compatible map so the cache can append to the
// slice without needing to understand embed internals.
type Embed map[string]any

// Message is one channel message.
type Message struct {
	ID    id.Id[id.Message]
	Nonce *string

	Channel id.Id[id.Channel]
	Author  id.Id[id.User]

	Content *string
	System  *SystemMessage

	Attachments []Attachment
	Edited      *time.Time
	Embeds      []Embed
	Mentions    []id.Id[id.User]
	Replies     []id.Id[id.Message]

	// Reactions maps an emoji id to the set of users who reacted with
	// it. No emoji key is ever present with an empty user set.
	Reactions map[id.Id[id.Emoji]]map[id.Id[id.User]]struct{}

	Interactions Interactions
	Masquerade   *Masquerade
}

// PartialMessage mirrors Message with every field optional.
type PartialMessage struct {
	ID      *id.Id[id.Message]
	Nonce   *string
	Channel *id.Id[id.Channel]
	Author  *id.Id[id.User]

	Content *string
	System  *SystemMessage

	Attachments []Attachment
	Edited      *time.Time
	Embeds      []Embed
	Mentions    []id.Id[id.User]
	Replies     []id.Id[id.Message]

	Reactions map[id.Id[id.Emoji]]map[id.Id[id.User]]struct{}

	Interactions *Interactions
	Masquerade   *Masquerade
}

// Patch merges partial into self. Message has no clearable-field
// enumeration in the taxonomy (spec.md names none), so only Patch
// applies to message updates.
func (self Message) Patch(partial *PartialMessage) Message {
	if partial == nil {
		return self
	}
	return Message{
		ID:           self.ID,
		Nonce:        Either(partial.Nonce, self.Nonce),
		Channel:      self.Channel,
		Author:       self.Author,
		Content:      Either(partial.Content, self.Content),
		System:       Either(partial.System, self.System),
		Attachments:  EitherSlice(partial.Attachments, self.Attachments),
		Edited:       Either(partial.Edited, self.Edited),
		Embeds:       EitherSlice(partial.Embeds, self.Embeds),
		Mentions:     EitherSlice(partial.Mentions, self.Mentions),
		Replies:      EitherSlice(partial.Replies, self.Replies),
		Reactions:    eitherMap(partial.Reactions, self.Reactions),
		Interactions: *Either(partial.Interactions, &self.Interactions),
		Masquerade:   Either(partial.Masquerade, self.Masquerade),
	}
}
