package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/drip-network/drip/testutil/keeper"
	escrowtypes "github.com/drip-network/drip/x/escrow/types"
	"github.com/drip-network/drip/x/feerouter/keeper"
	"github.com/drip-network/drip/x/feerouter/types"
	treasurytypes "github.com/drip-network/drip/x/treasury/types"
)

// fundModule seeds the escrow module account so RouteFee has something to move
func fundModule(t *testing.T, f *keepertest.Fixture, module string, amount math.Int) {
	addr := f.AccountKeeper.GetModuleAddress(module)
	f.FundAccount(t, addr, amount)
}

// TestRouteFee_Split tests the 70/30 routing with a configured pool
func TestRouteFee_Split(t *testing.T) {
	f := keepertest.NewFixture(t)
	pool := keepertest.Addr("validator-pool")
	require.NoError(t, f.FeeRouter.SetParams(f.Ctx, types.Params{
		ValidatorPoolAddress: pool.String(),
	}))
	fundModule(t, f, escrowtypes.ModuleName, math.NewInt(24))

	validators, treasury, err := f.FeeRouter.RouteFee(f.Ctx, escrowtypes.ModuleName, math.NewInt(24))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(16), validators)
	require.Equal(t, math.NewInt(8), treasury)
	require.Equal(t, math.NewInt(16), f.Balance(pool))
	require.Equal(t, math.NewInt(8), f.Treasury.Balance(f.Ctx))
}

// TestRouteFee_NoPool tests that without a pool the fee all reaches the treasury
func TestRouteFee_NoPool(t *testing.T) {
	f := keepertest.NewFixture(t)
	fundModule(t, f, escrowtypes.ModuleName, math.NewInt(24))

	validators, treasury, err := f.FeeRouter.RouteFee(f.Ctx, escrowtypes.ModuleName, math.NewInt(24))
	require.NoError(t, err)
	require.True(t, validators.IsZero())
	require.Equal(t, math.NewInt(24), treasury)
	require.Equal(t, math.NewInt(24), f.Treasury.Balance(f.Ctx))
}

// TestRouteFee_ZeroFee tests rejection of a zero fee
func TestRouteFee_ZeroFee(t *testing.T) {
	f := keepertest.NewFixture(t)

	_, _, err := f.FeeRouter.RouteFee(f.Ctx, escrowtypes.ModuleName, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

// TestRouteFee_Conservation tests that routing never mints or burns
func TestRouteFee_Conservation(t *testing.T) {
	f := keepertest.NewFixture(t)
	pool := keepertest.Addr("validator-pool")
	require.NoError(t, f.FeeRouter.SetParams(f.Ctx, types.Params{
		ValidatorPoolAddress: pool.String(),
	}))

	fee := math.NewInt(12345)
	fundModule(t, f, escrowtypes.ModuleName, fee)

	validators, treasury, err := f.FeeRouter.RouteFee(f.Ctx, escrowtypes.ModuleName, fee)
	require.NoError(t, err)
	require.True(t, validators.Add(treasury).Equal(fee))

	escrowAddr := f.AccountKeeper.GetModuleAddress(escrowtypes.ModuleName)
	require.True(t, f.Balance(escrowAddr).IsZero())

	treasuryAddr := f.AccountKeeper.GetModuleAddress(treasurytypes.ModuleName)
	total := f.Balance(pool).Add(f.Balance(treasuryAddr))
	require.True(t, total.Equal(fee))
}

// TestUpdateParams_AuthorityGate tests the governance gate on params
func TestUpdateParams_AuthorityGate(t *testing.T) {
	f := keepertest.NewFixture(t)
	intruder := keepertest.Addr("intruder")

	srv := keeper.NewMsgServerImpl(f.FeeRouter)
	_, err := srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: intruder.String(),
		Params:    types.DefaultParams(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(f.Ctx, &types.MsgUpdateParams{
		Authority: f.Authority,
		Params:    types.DefaultParams(),
	})
	require.NoError(t, err)
}
