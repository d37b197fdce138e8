package types

const (
	// ModuleName defines the module name. The module account under this name
	// is the treasury vault: it custodies protocol-owned funds and only
	// releases them on governance-authorized calls.
	ModuleName = "treasury"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for treasury
	RouterKey = ModuleName
)
