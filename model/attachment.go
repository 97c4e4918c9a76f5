package model

import "github.com/catuhana/rive/id"

// AttachmentMetadataKind discriminates the shape-specific fields an
// Attachment's metadata carries.
type AttachmentMetadataKind int

const (
	AttachmentFile AttachmentMetadataKind = iota
	AttachmentText
	AttachmentImage
	AttachmentVideo
	AttachmentAudio
)

// AttachmentMetadata describes the parsed shape of an uploaded file.
// Width/Height are only meaningful when Kind is AttachmentImage or
// AttachmentVideo.
type AttachmentMetadata struct {
	Kind   AttachmentMetadataKind
	Width  int
	Height int
}

// Attachment is a file uploaded to the platform's file service and
// referenced from a message, user avatar, server icon/banner, etc.
type Attachment struct {
	ID         id.Id[id.Attachment]
	Tag        string
	Filename   string
	Metadata   AttachmentMetadata
	ContentType string
	Size       int

	Deleted  *bool
	Reported *bool

	MessageID *id.Id[id.Message]
	UserID    *id.Id[id.User]
	ServerID  *id.Id[id.Server]
	ObjectID  *id.Id[id.Object]
}
