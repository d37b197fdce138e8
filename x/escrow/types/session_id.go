package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// SessionID is the opaque 32-byte session identifier clients choose when
// funding. It serializes as lowercase hex with an 0x prefix.
type SessionID [32]byte

// SessionIDFromHex parses a 64-hex-character identifier, with or without an
// 0x prefix.
func SessionIDFromHex(s string) (SessionID, error) {
	s = strings.TrimPrefix(s, "0x")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return SessionID{}, fmt.Errorf("invalid session id: %w", err)
	}
	if len(bz) != 32 {
		return SessionID{}, fmt.Errorf("invalid session id: expected 32 bytes, got %d", len(bz))
	}
	var id SessionID
	copy(id[:], bz)
	return id, nil
}

// SessionIDFromBytes copies a 32-byte slice into a SessionID
func SessionIDFromBytes(bz []byte) (SessionID, error) {
	if len(bz) != 32 {
		return SessionID{}, fmt.Errorf("invalid session id: expected 32 bytes, got %d", len(bz))
	}
	var id SessionID
	copy(id[:], bz)
	return id, nil
}

// String returns the 0x-prefixed lowercase hex form
func (id SessionID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero reports whether the identifier is all zero bytes
func (id SessionID) IsZero() bool {
	return id == SessionID{}
}

// MarshalJSON implements json.Marshaler
func (id SessionID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (id *SessionID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := SessionIDFromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
