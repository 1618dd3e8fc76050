package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const UnknownTimestamp = "unknown"

var (
	ErrPayloadRead      = errors.New("failed to read hook payload")
	ErrPayloadMalformed = errors.New("malformed hook payload")
)

// Payload is the hook context delivered on stdin. Only the timestamp is used.
type Payload struct {
	Timestamp    string
	HasTimestamp bool
}

// TimestampOrUnknown returns the payload timestamp or the "unknown" sentinel.
func (p Payload) TimestampOrUnknown() string {
	if !p.HasTimestamp {
		return UnknownTimestamp
	}
	return p.Timestamp
}

// DecodePayload always returns a usable payload. The error tells the caller why
// the payload is empty (ErrPayloadRead or ErrPayloadMalformed); an absent or
// blank payload is not an error.
func DecodePayload(r io.Reader) (Payload, error) {
	if r == nil {
		return Payload{}, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrPayloadRead, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Payload{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrPayloadMalformed, err)
	}

	ts, ok := decodeTimestamp(fields["timestamp"])
	return Payload{Timestamp: ts, HasTimestamp: ok}, nil
}

// decodeTimestamp keeps strings verbatim and any other non-null JSON value as its raw text.
func decodeTimestamp(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}
