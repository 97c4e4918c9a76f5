// Package id provides a phantom-typed identifier wrapper so that, for
// example, a server id cannot be passed where a channel id is expected
// without an explicit cast.
package id

import "encoding/json"

// Marker tags an Id with the kind of entity it refers to. It carries no
// data and is never instantiated; it only participates at the type
// level.
type Marker interface {
	marker()
}

// Message, Channel, Server, User, Emoji, Account, Attachment, Object,
// Role, Invite, Session, Webhook, MFATicket, Report, Category,
// Snapshot and Strike are the marker tags in use across the platform's
// entity model.
type (
	Message    struct{}
	Channel    struct{}
	Server     struct{}
	User       struct{}
	Emoji      struct{}
	Account    struct{}
	Attachment struct{}
	Object     struct{}
	Role       struct{}
	Invite     struct{}
	Session    struct{}
	Webhook    struct{}
	MFATicket  struct{}
	Report     struct{}
	Category   struct{}
	Snapshot   struct{}
	Strike     struct{}
)

func (Message) marker()    {}
func (Channel) marker()    {}
func (Server) marker()     {}
func (User) marker()       {}
func (Emoji) marker()      {}
func (Account) marker()    {}
func (Attachment) marker() {}
func (Object) marker()     {}
func (Role) marker()       {}
func (Invite) marker()     {}
func (Session) marker()    {}
func (Webhook) marker()    {}
func (MFATicket) marker()  {}
func (Report) marker()     {}
func (Category) marker()   {}
func (Snapshot) marker()   {}
func (Strike) marker()     {}

// Id is an opaque identifier (a ULID in practice) tagged at compile
// time with the kind of entity it identifies. The tag has no runtime
// representation: on the wire and in memory an Id is just its string.
type Id[K Marker] struct {
	value string
}

// New wraps s as an Id of kind K.
func New[K Marker](s string) Id[K] {
	return Id[K]{value: s}
}

// Value returns the inner string.
func (i Id[K]) Value() string {
	return i.value
}

// IsZero reports whether the Id was never assigned a value.
func (i Id[K]) IsZero() bool {
	return i.value == ""
}

// Cast reinterprets an Id of kind K as an Id of kind L. Casting is
// always explicit; there is no implicit conversion between kinds.
func Cast[L Marker, K Marker](i Id[K]) Id[L] {
	return Id[L]{value: i.value}
}

// Equal reports structural equality between two Ids of the same kind.
func (i Id[K]) Equal(other Id[K]) bool {
	return i.value == other.value
}

// Less orders two Ids of the same kind by their inner string, so Ids
// can be used with sort.Slice or as map iteration keys needing a
// deterministic order.
func (i Id[K]) Less(other Id[K]) bool {
	return i.value < other.value
}

// String implements fmt.Stringer.
func (i Id[K]) String() string {
	return i.value
}

// MarshalJSON serialises the Id as its bare inner string; the marker
// tag is invisible on the wire.
func (i Id[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

// UnmarshalJSON parses the bare string into the Id.
func (i *Id[K]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &i.value)
}
