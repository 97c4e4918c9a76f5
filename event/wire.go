package event

import (
	"encoding/json"
	"fmt"
)

// envelope peeks at the "type" discriminator without committing to a
// concrete payload shape, mirroring the `#[serde(tag = "type")]`
// layout the wire protocol uses for every event.
type envelope struct {
	Type Type `json:"type"`
}

// Decode parses a single inbound event frame. Bulk frames are decoded
// recursively; an unrecognised type decodes to Unknown rather than
// erroring, since the wire format is expected to grow over time.
func Decode(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("event: decode envelope: %w", err)
	}

	switch env.Type {
	case TypeBulk:
		var raw struct {
			V []json.RawMessage `json:"v"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("event: decode Bulk: %w", err)
		}
		items := make([]Inbound, 0, len(raw.V))
		for _, r := range raw.V {
			ev, err := Decode(r)
			if err != nil {
				return nil, err
			}
			items = append(items, ev)
		}
		return Bulk{V: items}, nil
	case TypeError:
		var v Error
		return v, unmarshalInto(data, &v)
	case TypeAuthenticated:
		return Authenticated{}, nil
	case TypeReady:
		var v Ready
		return v, unmarshalInto(data, &v)
	case TypePong:
		var v Pong
		return v, unmarshalInto(data, &v)
	case TypeMessage:
		var v Message
		return v, unmarshalInto(data, &v)
	case TypeMessageUpdate:
		var v MessageUpdate
		return v, unmarshalInto(data, &v)
	case TypeMessageAppend:
		var v MessageAppend
		return v, unmarshalInto(data, &v)
	case TypeMessageDelete:
		var v MessageDelete
		return v, unmarshalInto(data, &v)
	case TypeMessageReact:
		var v MessageReact
		return v, unmarshalInto(data, &v)
	case TypeMessageUnreact:
		var v MessageUnreact
		return v, unmarshalInto(data, &v)
	case TypeMessageRemoveReaction:
		var v MessageRemoveReaction
		return v, unmarshalInto(data, &v)
	case TypeBulkMessageDelete:
		var v BulkMessageDelete
		return v, unmarshalInto(data, &v)
	case TypeChannelCreate:
		var v ChannelCreate
		return v, unmarshalInto(data, &v)
	case TypeChannelUpdate:
		var v ChannelUpdate
		return v, unmarshalInto(data, &v)
	case TypeChannelDelete:
		var v ChannelDelete
		return v, unmarshalInto(data, &v)
	case TypeChannelGroupJoin:
		var v ChannelGroupJoin
		return v, unmarshalInto(data, &v)
	case TypeChannelGroupLeave:
		var v ChannelGroupLeave
		return v, unmarshalInto(data, &v)
	case TypeChannelStartTyping:
		var v ChannelStartTyping
		return v, unmarshalInto(data, &v)
	case TypeChannelStopTyping:
		var v ChannelStopTyping
		return v, unmarshalInto(data, &v)
	case TypeChannelAck:
		var v ChannelAck
		return v, unmarshalInto(data, &v)
	case TypeServerCreate:
		var v ServerCreate
		return v, unmarshalInto(data, &v)
	case TypeServerUpdate:
		var v ServerUpdate
		return v, unmarshalInto(data, &v)
	case TypeServerDelete:
		var v ServerDelete
		return v, unmarshalInto(data, &v)
	case TypeServerMemberUpdate:
		var v ServerMemberUpdate
		return v, unmarshalInto(data, &v)
	case TypeServerMemberJoin:
		var v ServerMemberJoin
		return v, unmarshalInto(data, &v)
	case TypeServerMemberLeave:
		var v ServerMemberLeave
		return v, unmarshalInto(data, &v)
	case TypeServerRoleUpdate:
		var v ServerRoleUpdate
		return v, unmarshalInto(data, &v)
	case TypeServerRoleDelete:
		var v ServerRoleDelete
		return v, unmarshalInto(data, &v)
	case TypeUserUpdate:
		var v UserUpdate
		return v, unmarshalInto(data, &v)
	case TypeUserRelationship:
		var v UserRelationship
		return v, unmarshalInto(data, &v)
	case TypeUserSettingsUpdate:
		var v UserSettingsUpdate
		return v, unmarshalInto(data, &v)
	case TypeUserPlatformWipe:
		var v UserPlatformWipe
		return v, unmarshalInto(data, &v)
	case TypeEmojiCreate:
		var v EmojiCreate
		return v, unmarshalInto(data, &v)
	case TypeEmojiDelete:
		var v EmojiDelete
		return v, unmarshalInto(data, &v)
	case TypeWebhookCreate:
		var v WebhookCreate
		return v, unmarshalInto(data, &v)
	case TypeWebhookUpdate:
		var v WebhookUpdate
		return v, unmarshalInto(data, &v)
	case TypeWebhookDelete:
		var v WebhookDelete
		return v, unmarshalInto(data, &v)
	case TypeReportCreate:
		var v ReportCreate
		return v, unmarshalInto(data, &v)
	case TypeAuthSessionDeleted:
		var v Auth
		return v, unmarshalInto(data, &v)
	default:
		return Unknown{Raw: env.Type}, nil
	}
}

// unmarshalInto decodes the envelope a second time into a concrete
// payload struct; Go has no single-pass tagged-union decode, so the
// bytes are walked twice (cheap relative to one gateway frame).
func unmarshalInto(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("event: decode payload: %w", err)
	}
	return nil
}

// Encode serialises an outbound command with its "type" discriminator
// folded into the same object the command's fields occupy.
func Encode(cmd Outbound) ([]byte, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("event: encode payload: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("event: encode payload: %w", err)
	}
	typeJSON, err := json.Marshal(cmd.Type())
	if err != nil {
		return nil, err
	}
	fields["type"] = typeJSON

	return json.Marshal(fields)
}
