package model

import "github.com/catuhana/rive/id"

// EmojiParentKind discriminates whether an Emoji belongs to a server
// or was uploaded detached from one.
type EmojiParentKind int

const (
	EmojiParentServer EmojiParentKind = iota
	EmojiParentDetached
)

// EmojiParent is what owns an Emoji.
type EmojiParent struct {
	Kind EmojiParentKind
	ID   id.Id[id.Server] // meaningful only when Kind == EmojiParentServer
}

// Emoji is a custom emoji, server-scoped or detached.
type Emoji struct {
	ID       id.Id[id.Emoji]
	Parent   EmojiParent
	Creator  id.Id[id.User]
	Name     string
	Animated bool
	NSFW     bool
}
