package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ConstitutionHash is the 32-byte digest of the DAO's governing document. It
// serializes as 0x-prefixed hex.
type ConstitutionHash [32]byte

// ConstitutionHashFromHex parses a 64-hex-character digest
func ConstitutionHashFromHex(s string) (ConstitutionHash, error) {
	s = strings.TrimPrefix(s, "0x")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return ConstitutionHash{}, fmt.Errorf("invalid constitution hash: %w", err)
	}
	if len(bz) != 32 {
		return ConstitutionHash{}, fmt.Errorf("invalid constitution hash: expected 32 bytes, got %d", len(bz))
	}
	var h ConstitutionHash
	copy(h[:], bz)
	return h, nil
}

// String returns the 0x-prefixed lowercase hex form
func (h ConstitutionHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// MarshalJSON implements json.Marshaler
func (h ConstitutionHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (h *ConstitutionHash) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ConstitutionHashFromHex(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// DaoInfo describes the DAO this deployment serves
type DaoInfo struct {
	Name             string           `json:"name"`
	ConstitutionHash ConstitutionHash `json:"constitution_hash"`
	Authority        string           `json:"authority"`
}

// Validate performs stateless validation of the DAO descriptor
func (d DaoInfo) Validate() error {
	if d.Name == "" {
		return ErrInvalidDaoInfo.Wrap("name cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(d.Authority); err != nil {
		return ErrInvalidDaoInfo.Wrapf("invalid authority: %v", err)
	}
	return nil
}

// Component is one name→address binding in the registry
type Component struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Validate performs stateless validation of a component binding
func (c Component) Validate() error {
	if !KnownComponents[c.Name] {
		return ErrUnknownComponent.Wrapf("name %s", c.Name)
	}
	if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
		return ErrInvalidAddress.Wrapf("component %s: %v", c.Name, err)
	}
	return nil
}
