package types

// Event types for the verifier module
const (
	EventTypeSchemeActivated = "verifier_scheme_activated"
	EventTypeSchemeTrusted   = "verifier_scheme_trusted"
	EventTypeSchemeRevoked   = "verifier_scheme_revoked"
)

// Event attribute keys for the verifier module
const (
	AttributeKeyScheme    = "scheme"
	AttributeKeyOldScheme = "old_scheme"
)
