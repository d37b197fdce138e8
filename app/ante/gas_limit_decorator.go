package ante

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bondingtypes "github.com/drip-network/drip/x/bonding/types"
	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
	registrytypes "github.com/drip-network/drip/x/registry/types"
	treasurytypes "github.com/drip-network/drip/x/treasury/types"
	verifiertypes "github.com/drip-network/drip/x/verifier/types"
)

// Gas limits for different operation types to prevent exhaustion attacks
const (
	// Escrow operations
	MaxGasPerFund    uint64 = 150_000
	MaxGasPerAssign  uint64 = 100_000
	MaxGasPerSettle  uint64 = 500_000 // includes proof verification
	MaxGasPerReclaim uint64 = 100_000

	// Bonding operations
	MaxGasPerBondOp      uint64 = 150_000
	MaxGasPerFraudReport uint64 = 200_000
	MaxGasPerFraudVerdict uint64 = 250_000 // may slash and move deposits

	// Governance-gated admin operations
	MaxGasPerParamChange uint64 = 100_000
	MaxGasPerSchemeOp    uint64 = 100_000
	MaxGasPerRegistryOp  uint64 = 100_000
	MaxGasPerRelease     uint64 = 120_000

	// General limits
	MaxGasPerTx           uint64 = 10_000_000 // Maximum gas per transaction
	MaxGasPerMessage      uint64 = 500_000    // Maximum gas per message in tx
	MaxMessagesPerTx      int    = 10         // Maximum messages per transaction
	MaxStorageReadsPerOp  int    = 100        // Maximum storage reads per operation
	MaxStorageWritesPerOp int    = 50         // Maximum storage writes per operation
)

// GasLimitDecorator enforces per-operation gas limits to prevent exhaustion attacks
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	// Enforce maximum messages per transaction
	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d",
			len(msgs), MaxMessagesPerTx,
		)
	}

	gasBefore := ctx.GasMeter().GasConsumed()

	// Validate each message against its per-operation budget
	for i, msg := range msgs {
		requiredGas := requiredGasForMessage(msg)
		if requiredGas > MaxGasPerMessage {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d requires too much gas: %d > %d",
				i, requiredGas, MaxGasPerMessage,
			)
		}

		msgGasMeter := storetypes.NewGasMeter(requiredGas)
		msgCtx := ctx.WithGasMeter(msgGasMeter)

		if err := validateMessageGasUsage(msgCtx, msg); err != nil {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d failed gas validation: %v", i, err,
			)
		}
	}

	// Check total transaction gas limit
	totalGasRequired := ctx.GasMeter().Limit()
	if totalGasRequired > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			totalGasRequired, MaxGasPerTx,
		)
	}

	newCtx, err := next(ctx, tx, simulate)
	if err != nil {
		return newCtx, err
	}

	gasAfter := newCtx.GasMeter().GasConsumed()
	gasUsed := gasAfter - gasBefore

	// Log excessive gas usage for monitoring
	if gasUsed > MaxGasPerTx/2 {
		ctx.Logger().Info("High gas consumption detected",
			"gas_used", gasUsed,
			"num_messages", len(msgs),
			"tx_hash", fmt.Sprintf("%X", ctx.TxBytes()),
		)
	}

	return newCtx, nil
}

// requiredGasForMessage returns the gas budget for a specific message type
func requiredGasForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	// Escrow messages
	case *escrowtypes.MsgFundSession:
		return MaxGasPerFund
	case *escrowtypes.MsgAssignMiner:
		return MaxGasPerAssign
	case *escrowtypes.MsgSettle:
		return MaxGasPerSettle
	case *escrowtypes.MsgReclaimRemainder:
		return MaxGasPerReclaim

	// Bonding messages
	case *bondingtypes.MsgBondStake,
		*bondingtypes.MsgInitiateUnbond,
		*bondingtypes.MsgWithdrawUnbonded:
		return MaxGasPerBondOp
	case *bondingtypes.MsgReportFraud,
		*bondingtypes.MsgRebutFraud:
		return MaxGasPerFraudReport
	case *bondingtypes.MsgResolveFraud:
		return MaxGasPerFraudVerdict

	// Parameter store messages
	case *daoparamstypes.MsgSetBounds,
		*daoparamstypes.MsgProposeChange,
		*daoparamstypes.MsgFinalizeChange:
		return MaxGasPerParamChange

	// Verifier scheme management
	case *verifiertypes.MsgSetActiveScheme,
		*verifiertypes.MsgTrustScheme,
		*verifiertypes.MsgRevokeScheme:
		return MaxGasPerSchemeOp

	// Registry and treasury
	case *registrytypes.MsgSetDaoInfo, *registrytypes.MsgSetComponent:
		return MaxGasPerRegistryOp
	case *treasurytypes.MsgReleaseFunds:
		return MaxGasPerRelease

	default:
		// For unknown message types, use a conservative default
		return MaxGasPerMessage
	}
}

// validateMessageGasUsage performs pre-validation of message gas requirements
func validateMessageGasUsage(ctx sdk.Context, msg sdk.Msg) error {
	// Static check; dynamic checks happen during execution

	type validateBasicMsg interface {
		ValidateBasic() error
	}

	if vb, ok := msg.(validateBasicMsg); ok {
		if err := vb.ValidateBasic(); err != nil {
			return fmt.Errorf("message validation failed: %w", err)
		}
	}

	return nil
}

// ConsumeGasForOperation consumes gas and checks it doesn't exceed per-operation limits
func ConsumeGasForOperation(ctx sdk.Context, gas uint64, operationType string, maxGas uint64) error {
	if gas > maxGas {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"operation '%s' requires too much gas: %d > %d",
			operationType, gas, maxGas,
		)
	}

	// Consume the gas (will panic if exceeds meter limit)
	ctx.GasMeter().ConsumeGas(gas, operationType)

	return nil
}

// IterateWithGasLimit executes a function in a loop with gas metering and iteration limits
func IterateWithGasLimit(
	ctx sdk.Context,
	maxIterations int,
	gasPerIteration uint64,
	iterFunc func(int) (bool, error),
) error {
	for i := 0; i < maxIterations; i++ {
		// Consume gas for this iteration
		ctx.GasMeter().ConsumeGas(gasPerIteration, fmt.Sprintf("iteration_%d", i))

		// Execute iteration function
		shouldContinue, err := iterFunc(i)
		if err != nil {
			return err
		}

		if !shouldContinue {
			break
		}
	}

	return nil
}

// StorageAccessTracker tracks storage reads/writes to enforce limits
type StorageAccessTracker struct {
	reads  int
	writes int
}

// NewStorageAccessTracker creates a new storage access tracker
func NewStorageAccessTracker() *StorageAccessTracker {
	return &StorageAccessTracker{}
}

// RecordRead records a storage read and checks limits
func (sat *StorageAccessTracker) RecordRead(ctx sdk.Context) error {
	sat.reads++
	if sat.reads > MaxStorageReadsPerOp {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"too many storage reads: %d > %d",
			sat.reads, MaxStorageReadsPerOp,
		)
	}

	ctx.GasMeter().ConsumeGas(storetypes.Gas(1000), "storage_read")
	return nil
}

// RecordWrite records a storage write and checks limits
func (sat *StorageAccessTracker) RecordWrite(ctx sdk.Context) error {
	sat.writes++
	if sat.writes > MaxStorageWritesPerOp {
		return sdkerrors.ErrInvalidRequest.Wrapf(
			"too many storage writes: %d > %d",
			sat.writes, MaxStorageWritesPerOp,
		)
	}

	ctx.GasMeter().ConsumeGas(storetypes.Gas(2000), "storage_write")
	return nil
}

// GetStats returns current storage access statistics
func (sat *StorageAccessTracker) GetStats() (reads int, writes int) {
	return sat.reads, sat.writes
}
