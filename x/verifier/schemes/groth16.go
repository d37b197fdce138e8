package schemes

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/drip-network/drip/x/verifier/circuits"
	"github.com/drip-network/drip/x/verifier/types"
)

// commitmentSize is the trailing completion-commitment segment of a Groth16
// proof blob. The commitment is a public witness value but it travels with the
// proof: the 64-byte public-input binding carries only the session id and the
// work value.
const commitmentSize = 32

// Groth16Verifier checks gnark Groth16 proofs over the settlement circuit.
type Groth16Verifier struct {
	vk groth16.VerifyingKey
}

var _ types.Verifier = (*Groth16Verifier)(nil)

// NewGroth16Verifier constructs a verifier from a serialized BN254 verifying
// key (governance distributes the key out of band, typically via genesis).
func NewGroth16Verifier(vkData []byte) (*Groth16Verifier, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkData)); err != nil {
		return nil, types.ErrInvalidProof.Wrapf("failed to deserialize verifying key: %v", err)
	}
	return &Groth16Verifier{vk: vk}, nil
}

// Verify deserializes the proof blob, reconstructs the public witness from
// the session binding, and runs Groth16 verification.
func (v *Groth16Verifier) Verify(proof, publicInputs []byte) error {
	pi, err := types.DecodePublicInputs(publicInputs)
	if err != nil {
		return err
	}
	if len(proof) <= commitmentSize {
		return types.ErrInvalidProof.Wrapf("proof blob too short: %d bytes", len(proof))
	}

	proofData := proof[:len(proof)-commitmentSize]
	commitment := proof[len(proof)-commitmentSize:]

	g16Proof := groth16.NewProof(ecc.BN254)
	if _, err := g16Proof.ReadFrom(bytes.NewReader(proofData)); err != nil {
		return types.ErrInvalidProof.Wrapf("failed to deserialize proof: %v", err)
	}

	assignment := &circuits.SettlementCircuit{
		SessionIDHi:          new(big.Int).SetBytes(pi.SessionID[:16]),
		SessionIDLo:          new(big.Int).SetBytes(pi.SessionID[16:]),
		WorkValue:            pi.WorkValue.BigInt(),
		CompletionCommitment: new(big.Int).SetBytes(commitment),
	}

	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return types.ErrInvalidProof.Wrapf("failed to create witness: %v", err)
	}

	if err := groth16.Verify(g16Proof, v.vk, witness); err != nil {
		return types.ErrVerificationFailed.Wrap(err.Error())
	}
	return nil
}
