package model

import (
	"github.com/catuhana/rive/id"
	"github.com/vincent-petithory/dataurl"
)

// Webhook is a channel webhook: a token-authenticated pseudo-user that
// can post messages without a full session.
type Webhook struct {
	ID      id.Id[id.Webhook]
	Name    string
	Avatar  *Attachment
	Channel id.Id[id.Channel]
	Token   *string
}

// PartialWebhook mirrors Webhook with every field optional.
type PartialWebhook struct {
	Name    *string
	Avatar  *Attachment
	Channel *id.Id[id.Channel]
	Token   *string
}

// FieldsWebhook names one clearable optional field on Webhook.
type FieldsWebhook int

const (
	FieldsWebhookAvatar FieldsWebhook = iota
)

// Patch merges partial into self.
func (self Webhook) Patch(partial *PartialWebhook) Webhook {
	if partial == nil {
		return self
	}
	return Webhook{
		ID:      self.ID,
		Name:    Unwrap(partial.Name, self.Name),
		Avatar:  Either(partial.Avatar, self.Avatar),
		Channel: Unwrap(partial.Channel, self.Channel),
		Token:   Either(partial.Token, self.Token),
	}
}

// Remove clears the named optional field.
func (self Webhook) Remove(field FieldsWebhook) Webhook {
	switch field {
	case FieldsWebhookAvatar:
		self.Avatar = nil
	}
	return self
}

// AvatarFromDataURL decodes a data: URI (as produced by most file
// pickers) into the raw bytes and content type a webhook avatar
// upload expects, the same helper shape the teacher's webhook
// endpoints use for icon/avatar parameters.
func AvatarFromDataURL(raw string) ([]byte, string, error) {
	u, err := dataurl.DecodeString(raw)
	if err != nil {
		return nil, "", err
	}
	return u.Data, u.ContentType(), nil
}
