package simapp

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/drip-network/drip/app"
	bondingtypes "github.com/drip-network/drip/x/bonding/types"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
)

// AppStateFn returns the initial application state using a genesis or the simulation parameters
func AppStateFn(
	cdc codec.JSONCodec,
	simManager *module.SimulationManager,
	genesisState map[string]json.RawMessage,
) simtypes.AppStateFn {
	return func(
		r *rand.Rand,
		accs []simtypes.Account,
		config simtypes.Config,
	) (json.RawMessage, []simtypes.Account, string, time.Time) {
		// Randomize initial parameters
		var (
			numAccs            = 100
			numInitiallyBonded = 50
			initialStake       = math.NewInt(100000000000)
		)

		if len(accs) == 0 {
			accs = simtypes.RandomAccounts(r, numAccs)
		}

		// Generate random genesis time
		startTime := simtypes.RandTimestamp(r)

		// Generate randomized genesis state
		appParams := make(simtypes.AppParams)
		appState := make(map[string]json.RawMessage)

		if genesisState == nil {
			genesisState = app.NewDefaultGenesisState(cdc)
		}

		// Auth genesis
		authGenesis := RandomizedAuthGenesisState(r, accs)
		appState[authtypes.ModuleName] = cdc.MustMarshalJSON(&authGenesis)

		// Bank genesis
		bankGenesis := RandomizedBankGenesisState(r, accs)
		appState[banktypes.ModuleName] = cdc.MustMarshalJSON(&bankGenesis)

		// Staking genesis
		stakingGenesis := RandomizedStakingGenesisState(r, accs, initialStake, numAccs, numInitiallyBonded)
		appState[stakingtypes.ModuleName] = cdc.MustMarshalJSON(&stakingGenesis)

		// Escrow genesis
		escrowGenesis := RandomizedEscrowGenesisState(r, accs)
		appState[escrowtypes.ModuleName] = mustJSON(&escrowGenesis)

		// Bonding genesis
		bondingGenesis := RandomizedBondingGenesisState(r)
		appState[bondingtypes.ModuleName] = mustJSON(&bondingGenesis)

		// Use simulation manager to randomize all other genesis states
		simState := &module.SimulationState{
			AppParams: appParams,
			Cdc:       cdc,
			Rand:      r,
			Accounts:  accs,
			GenState:  appState,
		}
		simManager.GenerateGenesisStates(simState)

		appStateJSON, err := json.MarshalIndent(appState, "", "  ")
		if err != nil {
			panic(err)
		}

		return appStateJSON, accs, config.ChainID, startTime
	}
}

func mustJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

// RandomizedAuthGenesisState generates a random auth genesis state
func RandomizedAuthGenesisState(r *rand.Rand, accs []simtypes.Account) authtypes.GenesisState {
	accountNumber := uint64(0)

	genesisAccounts := make([]authtypes.GenesisAccount, len(accs))
	for i, acc := range accs {
		bacc := authtypes.NewBaseAccountWithAddress(acc.Address)
		bacc.AccountNumber = accountNumber
		accountNumber++

		genesisAccounts[i] = bacc
	}

	authGenesis := authtypes.NewGenesisState(
		authtypes.DefaultParams(),
		genesisAccounts,
	)

	return *authGenesis
}

// RandomizedBankGenesisState generates a random bank genesis state
func RandomizedBankGenesisState(r *rand.Rand, accs []simtypes.Account) banktypes.GenesisState {
	// Create initial balances
	balances := make([]banktypes.Balance, len(accs))
	totalSupply := sdk.NewCoins()

	for i, acc := range accs {
		// Random balance between 1M and 10M udrip
		balance := simtypes.RandIntBetween(r, 1000000, 10000000)
		coins := sdk.NewCoins(sdk.NewInt64Coin(app.BondDenom, int64(balance)))

		balances[i] = banktypes.Balance{
			Address: acc.Address.String(),
			Coins:   coins,
		}

		totalSupply = totalSupply.Add(coins...)
	}

	bankGenesis := banktypes.NewGenesisState(
		banktypes.DefaultParams(),
		balances,
		totalSupply,
		[]banktypes.Metadata{
			{
				Description: "The native token of the DRIP settlement chain",
				DenomUnits: []*banktypes.DenomUnit{
					{Denom: "udrip", Exponent: uint32(0), Aliases: []string{"microdrip"}},
					{Denom: "drip", Exponent: uint32(6), Aliases: []string{}},
				},
				Base:    "udrip",
				Display: "drip",
				Name:    "DRIP",
				Symbol:  "DRIP",
			},
		},
		[]banktypes.SendEnabled{},
	)

	return *bankGenesis
}

// RandomizedStakingGenesisState generates a random staking genesis state
func RandomizedStakingGenesisState(
	r *rand.Rand,
	accs []simtypes.Account,
	initialStake math.Int,
	numAccs, numInitiallyBonded int,
) stakingtypes.GenesisState {
	// Create validators from first N accounts
	validators := make([]stakingtypes.Validator, numInitiallyBonded)
	delegations := make([]stakingtypes.Delegation, numInitiallyBonded)

	for i := 0; i < numInitiallyBonded && i < len(accs); i++ {
		pubKeyAny, err := codectypes.NewAnyWithValue(accs[i].ConsKey.PubKey())
		if err != nil {
			panic(err)
		}

		val := stakingtypes.Validator{
			OperatorAddress:   sdk.ValAddress(accs[i].Address).String(),
			ConsensusPubkey:   pubKeyAny,
			Jailed:            false,
			Status:            stakingtypes.Bonded,
			Tokens:            initialStake,
			DelegatorShares:   math.LegacyNewDecFromInt(initialStake),
			Description:       stakingtypes.Description{Moniker: fmt.Sprintf("validator-%d", i)},
			UnbondingHeight:   int64(0),
			UnbondingTime:     time.Unix(0, 0).UTC(),
			Commission:        stakingtypes.NewCommission(math.LegacyZeroDec(), math.LegacyZeroDec(), math.LegacyZeroDec()),
			MinSelfDelegation: math.OneInt(),
		}

		validators[i] = val

		delegations[i] = stakingtypes.Delegation{
			DelegatorAddress: accs[i].Address.String(),
			ValidatorAddress: sdk.ValAddress(accs[i].Address).String(),
			Shares:           math.LegacyNewDecFromInt(initialStake),
		}
	}

	stakingGenesis := stakingtypes.NewGenesisState(
		stakingtypes.DefaultParams(),
		validators,
		delegations,
	)

	return *stakingGenesis
}

// RandomizedEscrowGenesisState generates a random escrow genesis state.
// Sessions start empty because funded sessions must be backed by module
// account balances, which the bank genesis above does not mint.
func RandomizedEscrowGenesisState(r *rand.Rand, accs []simtypes.Account) escrowtypes.GenesisState {
	params := escrowtypes.DefaultParams()
	if len(accs) > 0 {
		assigner, _ := simtypes.RandomAcc(r, accs)
		settler, _ := simtypes.RandomAcc(r, accs)
		params.AssignerAddress = assigner.Address.String()
		params.SettlerAddress = settler.Address.String()
	}

	return escrowtypes.GenesisState{
		Params:   params,
		Sessions: []escrowtypes.Session{},
	}
}

// RandomizedBondingGenesisState generates a random bonding genesis state.
// Bonds start empty for the same module account backing reason as sessions.
func RandomizedBondingGenesisState(r *rand.Rand) bondingtypes.GenesisState {
	params := bondingtypes.DefaultParams()
	params.UnbondDelaySeconds = uint64(simtypes.RandIntBetween(r, 3600, 14*24*3600))
	params.DisputeWindowSeconds = uint64(simtypes.RandIntBetween(r, 600, 7*24*3600))
	params.FraudSlashBps = uint64(simtypes.RandIntBetween(r, 100, 10000))
	params.DisputeDeposit = math.NewInt(int64(simtypes.RandIntBetween(r, 1000, 10000000)))

	return bondingtypes.GenesisState{
		Params:        params,
		Bonds:         []bondingtypes.Bond{},
		Disputes:      []bondingtypes.Dispute{},
		NextDisputeID: 1,
	}
}

// RandomizeParamChanges randomizes all parameters for simulation
func RandomizeParamChanges(r *rand.Rand) []simtypes.LegacyParamChange {
	return ParamChanges(r)
}
