package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
)

func TestDecodeAuthenticated(t *testing.T) {
	ev, err := event.Decode([]byte(`{"type":"Authenticated"}`))
	require.NoError(t, err)
	assert.Equal(t, event.Authenticated{}, ev)
	assert.Equal(t, event.TypeAuthenticated, ev.Type())
}

func TestDecodeBulkRecurses(t *testing.T) {
	ev, err := event.Decode([]byte(`{"type":"Bulk","v":[{"type":"Authenticated"},{"type":"Pong","data":[0,0,0,0,0,0,0,1]}]}`))
	require.NoError(t, err)

	bulk, ok := ev.(event.Bulk)
	require.True(t, ok)
	require.Len(t, bulk.V, 2)
	assert.Equal(t, event.Authenticated{}, bulk.V[0])

	pong, ok := bulk.V[1].(event.Pong)
	require.True(t, ok)
	assert.Equal(t, event.PingData{0, 0, 0, 0, 0, 0, 0, 1}, pong.Data)
}

func TestDecodeUnrecognisedTypeYieldsUnknownInsteadOfError(t *testing.T) {
	ev, err := event.Decode([]byte(`{"type":"SomeFutureEvent","whatever":1}`))
	require.NoError(t, err)
	assert.Equal(t, event.Unknown{Raw: "SomeFutureEvent"}, ev)
}

func TestDecodeMalformedEnvelopeErrors(t *testing.T) {
	_, err := event.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncodeInjectsTypeDiscriminator(t *testing.T) {
	b, err := event.Encode(event.Authenticate{Token: "secret"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Equal(t, "Authenticate", fields["type"])
	assert.Equal(t, "secret", fields["token"])
}

func TestServerRoleUpdateRoundTrips(t *testing.T) {
	newRank := int64(3)
	original := event.ServerRoleUpdate{
		ID:     id.New[id.Server]("S"),
		RoleID: id.New[id.Role]("R"),
		Data:   model.PartialRole{Rank: &newRank},
		Clear:  []model.FieldsRole{model.FieldsRoleColour},
	}

	b, err := json.Marshal(original)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &fields))
	typeJSON, err := json.Marshal(event.TypeServerRoleUpdate)
	require.NoError(t, err)
	fields["type"] = typeJSON
	frame, err := json.Marshal(fields)
	require.NoError(t, err)

	decoded, err := event.Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestMessageEventEmbedsFullModel(t *testing.T) {
	frame := []byte(`{"type":"Message","_id":"M","channel":"C","author":"U","content":"hi"}`)
	ev, err := event.Decode(frame)
	require.NoError(t, err)

	msg, ok := ev.(event.Message)
	require.True(t, ok)
	assert.Equal(t, event.TypeMessage, msg.Type())
}

func TestPingDataMarshalsAsByteArrayRegardlessOfSource(t *testing.T) {
	fromInt := func() event.PingData {
		var d event.PingData
		require.NoError(t, json.Unmarshal([]byte(`1234`), &d))
		return d
	}()

	b, err := json.Marshal(fromInt)
	require.NoError(t, err)
	assert.True(t, b[0] == '[', "expected byte-array JSON shape, got %s", b)
}

func TestPingDataUnmarshalAcceptsEitherShape(t *testing.T) {
	var fromArray event.PingData
	require.NoError(t, json.Unmarshal([]byte(`[0,0,0,0,0,0,0,42]`), &fromArray))
	assert.Equal(t, event.PingData{0, 0, 0, 0, 0, 0, 0, 42}, fromArray)

	var fromInt event.PingData
	require.NoError(t, json.Unmarshal([]byte(`42`), &fromInt))
	assert.Equal(t, event.PingData{0, 0, 0, 0, 0, 0, 0, 42}, fromInt)
}

func TestPingDataUnmarshalRejectsOtherShapes(t *testing.T) {
	var d event.PingData
	assert.Error(t, json.Unmarshal([]byte(`"not a number or array"`), &d))
}

func TestPingEncodesButDecodesAsUnknown(t *testing.T) {
	frame, err := event.Encode(event.Ping{Data: event.PingData{1, 2, 3}})
	require.NoError(t, err)

	ev, err := event.Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, event.Unknown{Raw: event.TypePing}, ev, "Ping is outbound-only and has no inbound decode case")
}
