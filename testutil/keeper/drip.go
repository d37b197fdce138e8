package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	bondingkeeper "github.com/drip-network/drip/x/bonding/keeper"
	bondingtypes "github.com/drip-network/drip/x/bonding/types"
	daoparamskeeper "github.com/drip-network/drip/x/daoparams/keeper"
	daoparamstypes "github.com/drip-network/drip/x/daoparams/types"
	escrowkeeper "github.com/drip-network/drip/x/escrow/keeper"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
	feerouterkeeper "github.com/drip-network/drip/x/feerouter/keeper"
	feeroutertypes "github.com/drip-network/drip/x/feerouter/types"
	registrykeeper "github.com/drip-network/drip/x/registry/keeper"
	registrytypes "github.com/drip-network/drip/x/registry/types"
	treasurykeeper "github.com/drip-network/drip/x/treasury/keeper"
	treasurytypes "github.com/drip-network/drip/x/treasury/types"
	verifierkeeper "github.com/drip-network/drip/x/verifier/keeper"
	"github.com/drip-network/drip/x/verifier/schemes"
	verifiertypes "github.com/drip-network/drip/x/verifier/types"
)

// Denom is the settlement token denomination all fixtures use
const Denom = "udrip"

// Fixture wires every settlement-layer keeper against a shared in-memory
// multistore with real auth and bank keepers. Tests get the full wiring so
// a settlement can flow escrow → verifier → feerouter → treasury end to end.
type Fixture struct {
	Ctx       sdk.Context
	Authority string

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper

	DaoParams *daoparamskeeper.Keeper
	Treasury  treasurykeeper.Keeper
	Verifier  *verifierkeeper.Keeper
	Bonding   *bondingkeeper.Keeper
	FeeRouter *feerouterkeeper.Keeper
	Escrow    *escrowkeeper.Keeper
	Registry  *registrykeeper.Keeper
}

// NewFixture builds the full keeper wiring. The verifier comes up with the
// accept-all scheme trusted and active so settlement tests do not need to
// produce real proofs; verifier tests install their own schemes.
func NewFixture(t testing.TB) *Fixture {
	return NewFixtureWithVerifiers(t, map[string]verifiertypes.Verifier{
		verifiertypes.SchemeAcceptAll: schemes.NewAcceptAllVerifier(),
	}, &verifiertypes.GenesisState{
		ActiveScheme:   verifiertypes.SchemeAcceptAll,
		TrustedSchemes: []string{verifiertypes.SchemeAcceptAll},
	})
}

// NewFixtureWithVerifiers builds the wiring with a caller-chosen verifier
// scheme set and verifier genesis.
func NewFixtureWithVerifiers(t testing.TB, verifiers map[string]verifiertypes.Verifier, verifierGenesis *verifiertypes.GenesisState) *Fixture {
	escrowStoreKey := storetypes.NewKVStoreKey(escrowtypes.StoreKey)
	bondingStoreKey := storetypes.NewKVStoreKey(bondingtypes.StoreKey)
	daoparamsStoreKey := storetypes.NewKVStoreKey(daoparamstypes.StoreKey)
	feerouterStoreKey := storetypes.NewKVStoreKey(feeroutertypes.StoreKey)
	verifierStoreKey := storetypes.NewKVStoreKey(verifiertypes.StoreKey)
	registryStoreKey := storetypes.NewKVStoreKey(registrytypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range []*storetypes.KVStoreKey{
		escrowStoreKey, bondingStoreKey, daoparamsStoreKey, feerouterStoreKey,
		verifierStoreKey, registryStoreKey, authStoreKey, bankStoreKey,
	} {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		escrowtypes.ModuleName:     nil,
		bondingtypes.ModuleName:    {authtypes.Burner},
		treasurytypes.ModuleName:   nil,
		feeroutertypes.ModuleName:  nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority,
		log.NewNopLogger(),
	)

	daoParams := daoparamskeeper.NewKeeper(daoparamsStoreKey, authority)
	treasury := treasurykeeper.NewKeeper(bankKeeper, accountKeeper, authority, Denom)
	verifier := verifierkeeper.NewKeeper(verifierStoreKey, authority, verifiers)
	bonding := bondingkeeper.NewKeeper(bondingStoreKey, bankKeeper, accountKeeper, authority, Denom)
	feeRouter := feerouterkeeper.NewKeeper(feerouterStoreKey, bankKeeper, daoParams, authority, Denom)
	escrow := escrowkeeper.NewKeeper(
		escrowStoreKey,
		bankKeeper,
		accountKeeper,
		bonding,
		verifier,
		feeRouter,
		daoParams,
		authority,
		Denom,
	)
	bonding.SetSessionSource(escrow)
	registryKeeper := registrykeeper.NewKeeper(registryStoreKey, authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Now().UTC()}, false, log.NewNopLogger())

	require.NoError(t, daoParams.InitGenesis(ctx, *daoparamstypes.DefaultGenesis()))
	require.NoError(t, bonding.InitGenesis(ctx, *bondingtypes.DefaultGenesis()))
	require.NoError(t, feeRouter.InitGenesis(ctx, *feeroutertypes.DefaultGenesis()))
	require.NoError(t, escrow.InitGenesis(ctx, *escrowtypes.DefaultGenesis()))
	if verifierGenesis != nil {
		require.NoError(t, verifier.InitGenesis(ctx, *verifierGenesis))
	}

	return &Fixture{
		Ctx:           ctx,
		Authority:     authority,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		DaoParams:     daoParams,
		Treasury:      treasury,
		Verifier:      verifier,
		Bonding:       bonding,
		FeeRouter:     feeRouter,
		Escrow:        escrow,
		Registry:      registryKeeper,
	}
}

// FundAccount mints fresh settlement tokens to an account
func (f *Fixture) FundAccount(t testing.TB, addr sdk.AccAddress, amount math.Int) {
	coins := sdk.NewCoins(sdk.NewCoin(Denom, amount))
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// Balance returns an account's settlement-token balance
func (f *Fixture) Balance(addr sdk.AccAddress) math.Int {
	return f.BankKeeper.GetBalance(f.Ctx, addr, Denom).Amount
}

// AdvanceTime returns a context whose block time moved forward by d. The
// fixture's stored context advances too.
func (f *Fixture) AdvanceTime(d time.Duration) sdk.Context {
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(d))
	return f.Ctx
}

// Addr derives a deterministic test account address
func Addr(seed string) sdk.AccAddress {
	return sdk.AccAddress([]byte(seed + "____________padding")[:20])
}
