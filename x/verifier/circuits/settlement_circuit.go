package circuits

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// SettlementCircuit proves that a unit of work bound to one session was
// completed for the claimed work value.
//
// Circuit Statement: "I hold a result for session S whose completion
// commitment opens to (S, workValue, resultHash), and the execution
// succeeded."
//
// The session identifier is 32 bytes, wider than the BN254 scalar field, so
// it enters the circuit as two 16-byte limbs.
type SettlementCircuit struct {
	// Public inputs
	SessionIDHi          frontend.Variable `gnark:",public"` // upper 16 bytes of the session id
	SessionIDLo          frontend.Variable `gnark:",public"` // lower 16 bytes of the session id
	WorkValue            frontend.Variable `gnark:",public"` // claimed settlement work value
	CompletionCommitment frontend.Variable `gnark:",public"` // MiMC commitment over the private result

	// Private inputs
	ResultHash       frontend.Variable `gnark:",private"` // hash of the work result
	MinerNonce       frontend.Variable `gnark:",private"` // miner-chosen blinding nonce
	ExecutionSuccess frontend.Variable `gnark:",private"` // 1 if the work completed successfully
}

// Define implements the gnark Circuit interface for settlement constraints.
func (circuit *SettlementCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("failed to initialize MiMC: %w", err)
	}

	// Execution must have succeeded; a failed run cannot settle.
	api.AssertIsEqual(circuit.ExecutionSuccess, 1)

	// The commitment opens to exactly this session, work value and result.
	h.Write(circuit.SessionIDHi)
	h.Write(circuit.SessionIDLo)
	h.Write(circuit.WorkValue)
	h.Write(circuit.ResultHash)
	h.Write(circuit.MinerNonce)
	api.AssertIsEqual(h.Sum(), circuit.CompletionCommitment)

	return nil
}
