package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/drip-network/drip/testutil/keeper"
	"github.com/drip-network/drip/x/treasury/types"
)

// TestRelease_Valid tests a governance-approved payout
func TestRelease_Valid(t *testing.T) {
	f := keepertest.NewFixture(t)
	recipient := keepertest.Addr("recipient")
	f.FundAccount(t, f.Treasury.VaultAddress(), math.NewInt(500))

	require.NoError(t, f.Treasury.Release(f.Ctx, f.Authority, recipient, math.NewInt(200)))
	require.Equal(t, math.NewInt(200), f.Balance(recipient))
	require.Equal(t, math.NewInt(300), f.Treasury.Balance(f.Ctx))
}

// TestRelease_Unauthorized tests the governance gate
func TestRelease_Unauthorized(t *testing.T) {
	f := keepertest.NewFixture(t)
	intruder := keepertest.Addr("intruder")
	f.FundAccount(t, f.Treasury.VaultAddress(), math.NewInt(500))

	err := f.Treasury.Release(f.Ctx, intruder.String(), intruder, math.NewInt(200))
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Equal(t, math.NewInt(500), f.Treasury.Balance(f.Ctx))
}

// TestRelease_InsufficientFunds tests over-withdrawal rejection
func TestRelease_InsufficientFunds(t *testing.T) {
	f := keepertest.NewFixture(t)
	recipient := keepertest.Addr("recipient")
	f.FundAccount(t, f.Treasury.VaultAddress(), math.NewInt(100))

	err := f.Treasury.Release(f.Ctx, f.Authority, recipient, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

// TestRelease_ZeroAmount tests zero and negative amounts
func TestRelease_ZeroAmount(t *testing.T) {
	f := keepertest.NewFixture(t)
	recipient := keepertest.Addr("recipient")

	err := f.Treasury.Release(f.Ctx, f.Authority, recipient, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}
