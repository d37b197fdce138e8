package schemes

import (
	"github.com/drip-network/drip/x/verifier/types"
)

// AcceptAllVerifier accepts any structurally valid proof. It exists for tests
// and local development; the registry will only dispatch to it when the
// scheme has been explicitly trusted, which production genesis never does.
type AcceptAllVerifier struct{}

var _ types.Verifier = AcceptAllVerifier{}

// NewAcceptAllVerifier returns the accept-all capability.
func NewAcceptAllVerifier() AcceptAllVerifier {
	return AcceptAllVerifier{}
}

// Verify only checks that the public inputs decode.
func (AcceptAllVerifier) Verify(_, publicInputs []byte) error {
	_, err := types.DecodePublicInputs(publicInputs)
	return err
}
