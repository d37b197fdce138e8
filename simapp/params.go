package simapp

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/simulation"
)

// Simulation parameter constants
const (
	// Staking parameters
	StakePerAccount           = "stake_per_account"
	InitiallyBondedValidators = "initially_bonded_validators"

	// Bank parameters
	InitialAccountBalance = "initial_account_balance"

	// Escrow parameters
	InitialSessionCount = "initial_session_count"
	SessionBudget       = "session_budget"
	FundSessionProb     = "fund_session_probability"
	SettleProb          = "settle_probability"

	// Bonding parameters
	InitialBondCount = "initial_bond_count"
	BondStakeProb    = "bond_stake_probability"
	FraudReportProb  = "fraud_report_probability"
)

// SimulationParams defines the parameters for the simulation
type SimulationParams struct {
	// Account parameters
	StakePerAccount       math.Int
	InitialAccountBalance math.Int

	// Staking parameters
	InitiallyBondedValidators int

	// Escrow parameters
	InitialSessionCount int
	SessionBudget       math.Int
	FundSessionProb     math.LegacyDec
	SettleProb          math.LegacyDec

	// Bonding parameters
	InitialBondCount int
	BondStakeProb    math.LegacyDec
	FraudReportProb  math.LegacyDec
}

// DefaultSimulationParams returns default simulation parameters
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		StakePerAccount:           math.NewInt(100000000000),  // 100k tokens
		InitialAccountBalance:     math.NewInt(1000000000000), // 1M tokens
		InitiallyBondedValidators: 50,
		InitialSessionCount:       10,
		SessionBudget:             math.NewInt(10000000000),         // 10k tokens per session
		FundSessionProb:           math.LegacyNewDecWithPrec(30, 2), // 30%
		SettleProb:                math.LegacyNewDecWithPrec(20, 2), // 20%
		InitialBondCount:          5,
		BondStakeProb:             math.LegacyNewDecWithPrec(10, 2), // 10%
		FraudReportProb:           math.LegacyNewDecWithPrec(5, 2),  // 5%
	}
}

// RandomizedParams creates randomized simulation parameters
func RandomizedParams(r *rand.Rand) SimulationParams {
	return SimulationParams{
		StakePerAccount:           simulation.RandomAmount(r, math.NewInt(1000000000000)),
		InitialAccountBalance:     simulation.RandomAmount(r, math.NewInt(10000000000000)),
		InitiallyBondedValidators: simulation.RandIntBetween(r, 10, 100),
		InitialSessionCount:       simulation.RandIntBetween(r, 5, 20),
		SessionBudget:             simulation.RandomAmount(r, math.NewInt(100000000000)),
		FundSessionProb:           simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(50, 2)),
		SettleProb:                simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(40, 2)),
		InitialBondCount:          simulation.RandIntBetween(r, 2, 10),
		BondStakeProb:             simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(30, 2)),
		FraudReportProb:           simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(20, 2)),
	}
}

// ParamChanges intentionally returns no legacy param changes because Cosmos SDK v0.50
// removed ParamChange proposals in favor of MsgUpdateParams governance flow.
// Simulations that need parameter mutations should craft MsgUpdateParams transactions
// through module-specific simulation packages instead of legacy param changes.
func ParamChanges(_ *rand.Rand) []simulation.LegacyParamChange {
	return []simulation.LegacyParamChange{}
}

// RandomAccounts creates random accounts for simulation
func RandomAccounts(r *rand.Rand, n int) []simulation.Account {
	// Use the SDK's RandomAccounts function instead
	return simulation.RandomAccounts(r, n)
}

// WeightedOperations returns the default weighted operations for simulation
// Modules expose their own weighted operations. This shim exists for backward
// compatibility; callers should prefer the app's
// SimulationManager().WeightedOperations(simState).
func WeightedOperations() []simulation.WeightedOperation {
	return []simulation.WeightedOperation{}
}
