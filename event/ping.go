package event

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// PingData carries a heartbeat payload. The wire protocol has
// historically accepted two shapes for this field: a single integer,
// or an array of byte values (the shape gateway.DefaultHeartbeat
// produces, a big-endian millisecond timestamp). PingData's JSON
// encoding always emits the byte-array shape; its decoder accepts
// either, so a Pong echoed back in the older integer shape still
// round-trips into a typed event.
type PingData []byte

// MarshalJSON always emits the byte-array shape, regardless of how
// the value was constructed.
func (d PingData) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(d))
	for i, b := range d {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON accepts a JSON array of byte values, or a bare JSON
// integer (stored as its big-endian 64-bit representation).
func (d *PingData) UnmarshalJSON(data []byte) error {
	var bytes []uint8
	if err := json.Unmarshal(data, &bytes); err == nil {
		*d = bytes
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(n))
		*d = buf
		return nil
	}

	return fmt.Errorf("event: ping data is neither a byte array nor an integer: %s", string(data))
}
