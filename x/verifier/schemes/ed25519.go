package schemes

import (
	"crypto/ed25519"

	"github.com/drip-network/drip/x/verifier/types"
)

// Ed25519Verifier accepts a proof that is a single attestor signature over
// the raw public-input bytes. It backs deployments where a trusted attestor
// set vouches for work instead of a ZK proof.
type Ed25519Verifier struct {
	attestors []ed25519.PublicKey
}

var _ types.Verifier = (*Ed25519Verifier)(nil)

// NewEd25519Verifier constructs a verifier over a fixed attestor key set.
func NewEd25519Verifier(attestors []ed25519.PublicKey) (*Ed25519Verifier, error) {
	if len(attestors) == 0 {
		return nil, types.ErrNoVerifier.Wrap("attestor set cannot be empty")
	}
	for _, key := range attestors {
		if len(key) != ed25519.PublicKeySize {
			return nil, types.ErrInvalidProof.Wrapf("attestor key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
		}
	}
	keys := make([]ed25519.PublicKey, len(attestors))
	copy(keys, attestors)
	return &Ed25519Verifier{attestors: keys}, nil
}

// Verify accepts if any attestor key verifies the signature over publicInputs.
func (v *Ed25519Verifier) Verify(proof, publicInputs []byte) error {
	if len(proof) != ed25519.SignatureSize {
		return types.ErrInvalidProof.Wrapf("signature must be %d bytes, got %d", ed25519.SignatureSize, len(proof))
	}
	if _, err := types.DecodePublicInputs(publicInputs); err != nil {
		return err
	}

	for _, key := range v.attestors {
		if ed25519.Verify(key, publicInputs, proof) {
			return nil
		}
	}
	return types.ErrVerificationFailed.Wrap("no attestor signature matched")
}
