package id_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catuhana/rive/id"
)

func TestIdRoundTrip(t *testing.T) {
	u := id.New[id.User]("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"01ARZ3NDEKTSV4RRFFQ69G5FAV"`, string(b))

	var back id.Id[id.User]
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, u.Equal(back))
	assert.Equal(t, u.Value(), back.Value())
}

func TestIdCast(t *testing.T) {
	// The saved-messages channel id reuses the owning user's id.
	u := id.New[id.User]("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	c := id.Cast[id.Channel](u)

	assert.Equal(t, u.Value(), c.Value())
}

func TestIdEqualAndLess(t *testing.T) {
	a := id.New[id.Message]("A")
	b := id.New[id.Message]("B")

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Equal(id.New[id.Message]("A")))
	assert.False(t, a.Equal(b))
}

func TestIdZeroValue(t *testing.T) {
	var zero id.Id[id.Server]
	assert.True(t, zero.IsZero())
	assert.False(t, id.New[id.Server]("x").IsZero())
}
