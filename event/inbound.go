// Package event defines the closed set of inbound (server-to-client)
// and outbound (client-to-server) gateway events, and the JSON wire
// envelope that carries them.
package event

import (
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

// Type is the wire discriminator carried in every event's "type"
// field.
type Type string

const (
	TypeBulk                  Type = "Bulk"
	TypeError                 Type = "Error"
	TypeAuthenticated         Type = "Authenticated"
	TypeReady                 Type = "Ready"
	TypePong                  Type = "Pong"
	TypeMessage               Type = "Message"
	TypeMessageUpdate         Type = "MessageUpdate"
	TypeMessageAppend         Type = "MessageAppend"
	TypeMessageDelete         Type = "MessageDelete"
	TypeMessageReact          Type = "MessageReact"
	TypeMessageUnreact        Type = "MessageUnreact"
	TypeMessageRemoveReaction Type = "MessageRemoveReaction"
	TypeBulkMessageDelete     Type = "BulkMessageDelete"
	TypeChannelCreate         Type = "ChannelCreate"
	TypeChannelUpdate         Type = "ChannelUpdate"
	TypeChannelDelete         Type = "ChannelDelete"
	TypeChannelGroupJoin      Type = "ChannelGroupJoin"
	TypeChannelGroupLeave     Type = "ChannelGroupLeave"
	TypeChannelStartTyping    Type = "ChannelStartTyping"
	TypeChannelStopTyping     Type = "ChannelStopTyping"
	TypeChannelAck            Type = "ChannelAck"
	TypeServerCreate          Type = "ServerCreate"
	TypeServerUpdate          Type = "ServerUpdate"
	TypeServerDelete          Type = "ServerDelete"
	TypeServerMemberUpdate    Type = "ServerMemberUpdate"
	TypeServerMemberJoin      Type = "ServerMemberJoin"
	TypeServerMemberLeave     Type = "ServerMemberLeave"
	TypeServerRoleUpdate      Type = "ServerRoleUpdate"
	TypeServerRoleDelete      Type = "ServerRoleDelete"
	TypeUserUpdate            Type = "UserUpdate"
	TypeUserRelationship      Type = "UserRelationship"
	TypeUserSettingsUpdate    Type = "UserSettingsUpdate"
	TypeUserPlatformWipe      Type = "UserPlatformWipe"
	TypeEmojiCreate           Type = "EmojiCreate"
	TypeEmojiDelete           Type = "EmojiDelete"
	TypeWebhookCreate         Type = "WebhookCreate"
	TypeWebhookUpdate         Type = "WebhookUpdate"
	TypeWebhookDelete         Type = "WebhookDelete"
	TypeReportCreate          Type = "ReportCreate"
	TypeAuthSessionDeleted    Type = "Auth" // session-deleted / all-sessions-deleted umbrella
	TypeUnknown               Type = "Unknown"
)

// Inbound is any server-to-client event. Every concrete event type
// implements it; Unknown catches anything the decoder does not
// recognise.
type Inbound interface {
	Type() Type
}

// ErrorID is the closed set of umbrella error categories a server
// Error event can carry.
type ErrorID struct {
	Kind string // LabelMe, InternalError, InvalidSession, OnboardingNotFinished, AlreadyAuthenticated, MalformedData, Unknown
	At   string // set when Kind == InternalError
	Msg  string // set when Kind == MalformedData
}

type Bulk struct{ V []Inbound }

func (Bulk) Type() Type { return TypeBulk }

type Error struct{ Err ErrorID }

func (Error) Type() Type { return TypeError }

type Authenticated struct{}

func (Authenticated) Type() Type { return TypeAuthenticated }

// Ready is a snapshot event carrying the full set of entities the
// client is allowed to see, used to seed or reseed the cache.
type Ready struct {
	Users    []model.User
	Servers  []model.Server
	Channels []model.Channel
	Members  []model.Member
	Emojis   []model.Emoji
}

func (Ready) Type() Type { return TypeReady }

type Pong struct{ Data PingData }

func (Pong) Type() Type { return TypePong }

type MessageUpdate struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
	Data    model.PartialMessage
}

func (MessageUpdate) Type() Type { return TypeMessageUpdate }

type MessageAppend struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
	Append  model.AppendMessage
}

func (MessageAppend) Type() Type { return TypeMessageAppend }

type MessageDelete struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
}

func (MessageDelete) Type() Type { return TypeMessageDelete }

type MessageReact struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
	User    id.Id[id.User]
	Emoji   id.Id[id.Emoji]
}

func (MessageReact) Type() Type { return TypeMessageReact }

type MessageUnreact struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
	User    id.Id[id.User]
	Emoji   id.Id[id.Emoji]
}

func (MessageUnreact) Type() Type { return TypeMessageUnreact }

type MessageRemoveReaction struct {
	ID      id.Id[id.Message]
	Channel id.Id[id.Channel]
	Emoji   id.Id[id.Emoji]
}

func (MessageRemoveReaction) Type() Type { return TypeMessageRemoveReaction }

type BulkMessageDelete struct {
	Channel id.Id[id.Channel]
	IDs     []id.Id[id.Message]
}

func (BulkMessageDelete) Type() Type { return TypeBulkMessageDelete }

// Message is the server's "new message" event; it carries a full
// model.Message rather than a partial.
type Message struct{ model.Message }

func (Message) Type() Type { return TypeMessage }

// ChannelCreate carries a full model.Channel.
type ChannelCreate struct{ model.Channel }

func (ChannelCreate) Type() Type { return TypeChannelCreate }

type ChannelUpdate struct {
	ID    id.Id[id.Channel]
	Data  model.PartialChannel
	Clear []model.FieldsChannel
}

func (ChannelUpdate) Type() Type { return TypeChannelUpdate }

type ChannelDelete struct{ ID id.Id[id.Channel] }

func (ChannelDelete) Type() Type { return TypeChannelDelete }

type ChannelGroupJoin struct {
	ID   id.Id[id.Channel]
	User id.Id[id.User]
}

func (ChannelGroupJoin) Type() Type { return TypeChannelGroupJoin }

type ChannelGroupLeave struct {
	ID   id.Id[id.Channel]
	User id.Id[id.User]
}

func (ChannelGroupLeave) Type() Type { return TypeChannelGroupLeave }

type ChannelStartTyping struct {
	ID   id.Id[id.Channel]
	User id.Id[id.User]
}

func (ChannelStartTyping) Type() Type { return TypeChannelStartTyping }

type ChannelStopTyping struct {
	ID   id.Id[id.Channel]
	User id.Id[id.User]
}

func (ChannelStopTyping) Type() Type { return TypeChannelStopTyping }

type ChannelAck struct {
	ID        id.Id[id.Channel]
	User      id.Id[id.User]
	MessageID id.Id[id.Message]
}

func (ChannelAck) Type() Type { return TypeChannelAck }

type ServerCreate struct {
	ID       id.Id[id.Server]
	Server   model.Server
	Channels []model.Channel
}

func (ServerCreate) Type() Type { return TypeServerCreate }

type ServerUpdate struct {
	ID    id.Id[id.Server]
	Data  model.PartialServer
	Clear []model.FieldsServer
}

func (ServerUpdate) Type() Type { return TypeServerUpdate }

type ServerDelete struct{ ID id.Id[id.Server] }

func (ServerDelete) Type() Type { return TypeServerDelete }

type ServerMemberUpdate struct {
	ID    model.MemberKey
	Data  model.PartialMember
	Clear []model.FieldsMember
}

func (ServerMemberUpdate) Type() Type { return TypeServerMemberUpdate }

type ServerMemberJoin struct {
	ID   id.Id[id.Server]
	User id.Id[id.User]
}

func (ServerMemberJoin) Type() Type { return TypeServerMemberJoin }

type ServerMemberLeave struct {
	ID   id.Id[id.Server]
	User id.Id[id.User]
}

func (ServerMemberLeave) Type() Type { return TypeServerMemberLeave }

type ServerRoleUpdate struct {
	ID     id.Id[id.Server]
	RoleID id.Id[id.Role]
	Data   model.PartialRole
	Clear  []model.FieldsRole
}

func (ServerRoleUpdate) Type() Type { return TypeServerRoleUpdate }

type ServerRoleDelete struct {
	ID     id.Id[id.Server]
	RoleID id.Id[id.Role]
}

func (ServerRoleDelete) Type() Type { return TypeServerRoleDelete }

type UserUpdate struct {
	ID    id.Id[id.User]
	Data  model.PartialUser
	Clear []model.FieldsUser
}

func (UserUpdate) Type() Type { return TypeUserUpdate }

type UserRelationship struct {
	ID     id.Id[id.User]
	User   model.User
	Status model.RelationshipStatus
}

func (UserRelationship) Type() Type { return TypeUserRelationship }

// UserSettings mirrors the source's revision+payload settings map.
type UserSettings map[string]UserSettingEntry

type UserSettingEntry struct {
	Revision int64
	Data     string
}

type UserSettingsUpdate struct {
	ID     id.Id[id.User]
	Update UserSettings
}

func (UserSettingsUpdate) Type() Type { return TypeUserSettingsUpdate }

type UserPlatformWipe struct {
	UserID id.Id[id.User]
	Flags  model.UserFlags
}

func (UserPlatformWipe) Type() Type { return TypeUserPlatformWipe }

// EmojiCreate carries a full model.Emoji.
type EmojiCreate struct{ model.Emoji }

func (EmojiCreate) Type() Type { return TypeEmojiCreate }

type EmojiDelete struct{ ID id.Id[id.Emoji] }

func (EmojiDelete) Type() Type { return TypeEmojiDelete }

// WebhookCreate carries a full model.Webhook.
type WebhookCreate struct{ model.Webhook }

func (WebhookCreate) Type() Type { return TypeWebhookCreate }

type WebhookUpdate struct {
	ID    id.Id[id.Webhook]
	Data  model.PartialWebhook
	Clear []model.FieldsWebhook
}

func (WebhookUpdate) Type() Type { return TypeWebhookUpdate }

type WebhookDelete struct{ ID id.Id[id.Webhook] }

func (WebhookDelete) Type() Type { return TypeWebhookDelete }

// ReportCreate carries a full model.Report.
type ReportCreate struct{ model.Report }

func (ReportCreate) Type() Type { return TypeReportCreate }

// AuthKind discriminates the two session-lifecycle sub-events folded
// under the "Auth" umbrella.
type AuthKind int

const (
	AuthSessionDeleted AuthKind = iota
	AuthAllSessionsDeleted
)

type Auth struct {
	Kind      AuthKind
	UserID    id.Id[id.User]
	SessionID *id.Id[id.Session] // set when Kind == AuthSessionDeleted
	ExcludeID *id.Id[id.Session] // set when Kind == AuthAllSessionsDeleted
}

func (Auth) Type() Type { return TypeAuthSessionDeleted }

// Unknown catches any event variant the decoder does not recognise.
// It is not round-trippable by design: its original bytes are not
// retained.
type Unknown struct{ Raw Type }

func (u Unknown) Type() Type { return TypeUnknown }
