package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
	distrtypes "github.com/cosmos/cosmos-sdk/x/distribution/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	bondingtypes "github.com/drip-network/drip/x/bonding/types"
	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
	feeroutertypes "github.com/drip-network/drip/x/feerouter/types"
	registrytypes "github.com/drip-network/drip/x/registry/types"
	treasurytypes "github.com/drip-network/drip/x/treasury/types"
	verifiertypes "github.com/drip-network/drip/x/verifier/types"
)

// NewProductionGenesisState generates the genesis state for a DRIP network
// deployment with the production parameter set.
func NewProductionGenesisState(chainID string) GenesisState {
	genesis := make(GenesisState)

	// Auth module - account authentication
	authGenesis := authtypes.DefaultGenesisState()
	genesis[authtypes.ModuleName] = mustMarshalJSON(authGenesis)

	// Bank module - token balances and transfers
	bankGenesis := banktypes.DefaultGenesisState()
	bankGenesis.Params = banktypes.Params{
		SendEnabled:        []*banktypes.SendEnabled{},
		DefaultSendEnabled: true,
	}
	bankGenesis.Supply = sdk.NewCoins(
		sdk.NewInt64Coin(BondDenom, 100000000000000), // 100M DRIP total supply
	)
	genesis[banktypes.ModuleName] = mustMarshalJSON(bankGenesis)

	// Staking module - validator and delegation management
	stakingGenesis := stakingtypes.DefaultGenesisState()
	stakingGenesis.Params = stakingtypes.Params{
		UnbondingTime:     time.Duration(1814400) * time.Second, // 21 days
		MaxValidators:     100,
		MaxEntries:        7,
		HistoricalEntries: 10000,
		BondDenom:         BondDenom,
		MinCommissionRate: math.LegacyMustNewDecFromStr("0.05"), // 5% minimum commission
	}
	genesis[stakingtypes.ModuleName] = mustMarshalJSON(stakingGenesis)

	// Slashing module - validator punishment
	slashingGenesis := slashingtypes.DefaultGenesisState()
	slashingGenesis.Params = slashingtypes.Params{
		SignedBlocksWindow:      10000,                                // Blocks to track for downtime
		MinSignedPerWindow:      math.LegacyMustNewDecFromStr("0.50"), // 50% minimum uptime
		DowntimeJailDuration:    time.Duration(86400) * time.Second,   // 24 hours jail
		SlashFractionDoubleSign: math.LegacyMustNewDecFromStr("0.05"), // 5% slash for double signing
		SlashFractionDowntime:   math.LegacyMustNewDecFromStr("0.001"), // 0.1% slash for downtime
	}
	genesis[slashingtypes.ModuleName] = mustMarshalJSON(slashingGenesis)

	// Governance module - on-chain governance
	govGenesis := govtypes.DefaultGenesisState()
	govGenesis.Params = &govtypes.Params{
		MinDeposit:                 sdk.NewCoins(sdk.NewInt64Coin(BondDenom, 10000000000)), // 10,000 DRIP
		MaxDepositPeriod:           durationPtr(time.Duration(604800) * time.Second),       // 7 days
		VotingPeriod:               durationPtr(time.Duration(1209600) * time.Second),      // 14 days
		Quorum:                     "0.400000000000000000",                                 // 40% quorum
		Threshold:                  "0.667000000000000000",                                 // 66.7% threshold
		VetoThreshold:              "0.333000000000000000",                                 // 33.3% veto
		MinInitialDepositRatio:     "0.100000000000000000",                                 // 10% initial deposit
		BurnVoteQuorum:             false,
		BurnProposalDepositPrevote: false,
		BurnVoteVeto:               false,
	}
	genesis["gov"] = mustMarshalJSON(govGenesis)

	// Distribution module - fee distribution
	distrGenesis := distrtypes.DefaultGenesisState()
	distrGenesis.Params = distrtypes.Params{
		CommunityTax:        math.LegacyMustNewDecFromStr("0.20"), // 20% to community pool
		BaseProposerReward:  math.LegacyZeroDec(),                 // Deprecated
		BonusProposerReward: math.LegacyZeroDec(),                 // Deprecated
		WithdrawAddrEnabled: true,
	}
	genesis[distrtypes.ModuleName] = mustMarshalJSON(distrGenesis)

	// Mint module - token emission (disabled, using fixed supply)
	mintGenesis := minttypes.DefaultGenesisState()
	mintGenesis.Params = minttypes.Params{
		MintDenom:           BondDenom,
		InflationRateChange: math.LegacyMustNewDecFromStr("0.00"), // No inflation
		InflationMax:        math.LegacyMustNewDecFromStr("0.00"),
		InflationMin:        math.LegacyMustNewDecFromStr("0.00"),
		GoalBonded:          math.LegacyMustNewDecFromStr("0.67"),
		BlocksPerYear:       uint64(7884000), // ~4 second blocks
	}
	mintGenesis.Minter = minttypes.Minter{
		Inflation:        math.LegacyZeroDec(),
		AnnualProvisions: math.LegacyZeroDec(),
	}
	genesis[minttypes.ModuleName] = mustMarshalJSON(mintGenesis)

	// Crisis module - invariant checking
	crisisGenesis := crisistypes.DefaultGenesisState()
	crisisGenesis.ConstantFee = sdk.NewInt64Coin(BondDenom, 1000000000) // 1,000 DRIP
	genesis[crisistypes.ModuleName] = mustMarshalJSON(crisisGenesis)

	// Settlement modules. The bounded parameter store seeds the protocol fee,
	// fee split, and bond floor; the verifier module starts with groth16 as
	// the only trusted scheme.
	genesis[daoparamstypes.ModuleName] = mustMarshalJSON(daoparamstypes.DefaultGenesis())
	genesis[treasurytypes.ModuleName] = mustMarshalJSON(treasurytypes.DefaultGenesis())
	genesis[verifiertypes.ModuleName] = mustMarshalJSON(verifiertypes.DefaultGenesis())
	genesis[bondingtypes.ModuleName] = mustMarshalJSON(bondingtypes.DefaultGenesis())
	genesis[feeroutertypes.ModuleName] = mustMarshalJSON(feeroutertypes.DefaultGenesis())
	genesis[escrowtypes.ModuleName] = mustMarshalJSON(escrowtypes.DefaultGenesis())
	genesis[registrytypes.ModuleName] = mustMarshalJSON(registrytypes.DefaultGenesis())

	return genesis
}

// NewGenesisStateFromConfig creates genesis state with custom parameters
func NewGenesisStateFromConfig(config GenesisConfig) GenesisState {
	genesis := NewProductionGenesisState(config.ChainID)

	// Override staking params
	var stakingGenesis stakingtypes.GenesisState
	mustUnmarshalJSON(genesis[stakingtypes.ModuleName], &stakingGenesis)
	stakingGenesis.Params.MaxValidators = config.MaxValidators
	stakingGenesis.Params.UnbondingTime = time.Duration(config.UnbondingPeriodSeconds) * time.Second
	genesis[stakingtypes.ModuleName] = mustMarshalJSON(stakingGenesis)

	// Override slashing params
	var slashingGenesis slashingtypes.GenesisState
	mustUnmarshalJSON(genesis[slashingtypes.ModuleName], &slashingGenesis)
	slashingGenesis.Params.SlashFractionDoubleSign = math.LegacyMustNewDecFromStr(config.DoubleSignPenalty)
	slashingGenesis.Params.SlashFractionDowntime = math.LegacyMustNewDecFromStr(config.DowntimePenalty)
	slashingGenesis.Params.SignedBlocksWindow = int64(config.DowntimeWindowBlocks)
	slashingGenesis.Params.DowntimeJailDuration = time.Duration(config.DowntimeJailDurationSeconds) * time.Second
	genesis[slashingtypes.ModuleName] = mustMarshalJSON(slashingGenesis)

	// Override governance params
	var govGenesis govtypes.GenesisState
	mustUnmarshalJSON(genesis["gov"], &govGenesis)
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, config.MinDepositAmount))
	govGenesis.Params.VotingPeriod = durationPtr(time.Duration(config.VotingPeriodSeconds) * time.Second)
	govGenesis.Params.Quorum = config.Quorum
	govGenesis.Params.Threshold = config.Threshold
	govGenesis.Params.VetoThreshold = config.VetoThreshold
	genesis["gov"] = mustMarshalJSON(govGenesis)

	// Override bank supply
	var bankGenesis banktypes.GenesisState
	mustUnmarshalJSON(genesis[banktypes.ModuleName], &bankGenesis)
	bankGenesis.Supply = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, config.TotalSupply))
	genesis[banktypes.ModuleName] = mustMarshalJSON(bankGenesis)

	return genesis
}

// GenesisConfig holds configuration parameters for genesis state
type GenesisConfig struct {
	ChainID                     string
	TotalSupply                 int64
	MaxValidators               uint32
	UnbondingPeriodSeconds      int64
	DoubleSignPenalty           string
	DowntimePenalty             string
	DowntimeWindowBlocks        uint64
	DowntimeJailDurationSeconds int64
	MinDepositAmount            int64
	VotingPeriodSeconds         int64
	Quorum                      string
	Threshold                   string
	VetoThreshold               string
}

// DefaultGenesisConfig returns the DRIP testnet configuration
func DefaultGenesisConfig() GenesisConfig {
	return GenesisConfig{
		ChainID:                     "drip-testnet-1",
		TotalSupply:                 100000000000000, // 100M DRIP
		MaxValidators:               100,
		UnbondingPeriodSeconds:      1814400, // 21 days
		DoubleSignPenalty:           "0.05",  // 5%
		DowntimePenalty:             "0.001", // 0.1%
		DowntimeWindowBlocks:        10000,
		DowntimeJailDurationSeconds: 86400,                  // 24 hours
		MinDepositAmount:            10000000000,            // 10,000 DRIP
		VotingPeriodSeconds:         1209600,                // 14 days
		Quorum:                      "0.400000000000000000", // 40%
		Threshold:                   "0.667000000000000000", // 66.7%
		VetoThreshold:               "0.333000000000000000", // 33.3%
	}
}

// Helper functions
func mustMarshalJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func mustUnmarshalJSON(bz []byte, v interface{}) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(err)
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
