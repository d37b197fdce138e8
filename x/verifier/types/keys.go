package types

const (
	// ModuleName defines the module name
	ModuleName = "verifier"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for verifier
	RouterKey = ModuleName
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	// ActiveSchemeKey is the store key for the currently active scheme
	ActiveSchemeKey = "ActiveScheme"

	// TrustedSchemeKeyPrefix is the prefix for the trusted scheme set
	TrustedSchemeKeyPrefix = "TrustedScheme/value/"
)

// TrustedSchemeKey returns the store key for a trusted scheme entry
func TrustedSchemeKey(scheme string) []byte {
	return append(KeyPrefix(TrustedSchemeKeyPrefix), []byte(scheme)...)
}
