package types

// Scheme identifiers for the verification capabilities the registry can
// dispatch to. The active scheme is resolved at call time, not compile time;
// governance rotates it by trusting a scheme and then activating it.
const (
	// SchemeGroth16 verifies a gnark Groth16 proof over the settlement
	// circuit.
	SchemeGroth16 = "groth16"

	// SchemeEd25519 verifies an attestor signature over the public inputs.
	SchemeEd25519 = "ed25519"

	// SchemeAcceptAll accepts every proof. Test and local-dev deployments
	// only; it must be explicitly trusted in genesis to be usable.
	SchemeAcceptAll = "accept-all"
)

// Verifier is the opaque verification capability the settlement core depends
// on. Implementations decide whether (proof, publicInputs) attests a correct
// unit of work; the registry decides which implementation is trusted.
type Verifier interface {
	Verify(proof, publicInputs []byte) error
}
