package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/drip-network/drip/testutil/keeper"
	"github.com/drip-network/drip/x/registry/types"
)

// TestSetDaoInfo_Valid tests storing and reading the DAO descriptor
func TestSetDaoInfo_Valid(t *testing.T) {
	f := keepertest.NewFixture(t)

	hash, err := types.ConstitutionHashFromHex("0xab00000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)

	info := types.DaoInfo{
		Name:             "SlowDrip DAO LLC",
		ConstitutionHash: hash,
		Authority:        f.Authority,
	}
	require.NoError(t, f.Registry.SetDaoInfo(f.Ctx, f.Authority, info))

	got, found := f.Registry.GetDaoInfo(f.Ctx)
	require.True(t, found)
	require.Equal(t, info, got)
}

// TestSetDaoInfo_Gates tests authority and validation gates
func TestSetDaoInfo_Gates(t *testing.T) {
	f := keepertest.NewFixture(t)

	info := types.DaoInfo{Name: "SlowDrip DAO LLC", Authority: f.Authority}
	err := f.Registry.SetDaoInfo(f.Ctx, keepertest.Addr("intruder").String(), info)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = f.Registry.SetDaoInfo(f.Ctx, f.Authority, types.DaoInfo{Authority: f.Authority})
	require.ErrorIs(t, err, types.ErrInvalidDaoInfo)

	err = f.Registry.SetDaoInfo(f.Ctx, f.Authority, types.DaoInfo{Name: "x", Authority: "not-bech32"})
	require.ErrorIs(t, err, types.ErrInvalidDaoInfo)
}

// TestSetComponent_Valid tests binding and rebinding a known component
func TestSetComponent_Valid(t *testing.T) {
	f := keepertest.NewFixture(t)

	first := keepertest.Addr("treasury-v1").String()
	second := keepertest.Addr("treasury-v2").String()

	require.NoError(t, f.Registry.SetComponent(f.Ctx, f.Authority, types.ComponentTreasury, first))
	got, err := f.Registry.GetComponent(f.Ctx, types.ComponentTreasury)
	require.NoError(t, err)
	require.Equal(t, first, got)

	// Rebinding replaces the address
	require.NoError(t, f.Registry.SetComponent(f.Ctx, f.Authority, types.ComponentTreasury, second))
	got, err = f.Registry.GetComponent(f.Ctx, types.ComponentTreasury)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

// TestSetComponent_Gates tests authority, name-set, and address validation
func TestSetComponent_Gates(t *testing.T) {
	f := keepertest.NewFixture(t)
	addr := keepertest.Addr("component").String()

	err := f.Registry.SetComponent(f.Ctx, keepertest.Addr("intruder").String(), types.ComponentVerifier, addr)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = f.Registry.SetComponent(f.Ctx, f.Authority, "lending_desk", addr)
	require.ErrorIs(t, err, types.ErrUnknownComponent)

	err = f.Registry.SetComponent(f.Ctx, f.Authority, types.ComponentVerifier, "not-bech32")
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

// TestGetComponent_Unbound tests lookups before any binding exists
func TestGetComponent_Unbound(t *testing.T) {
	f := keepertest.NewFixture(t)

	_, err := f.Registry.GetComponent(f.Ctx, types.ComponentFraudProof)
	require.ErrorIs(t, err, types.ErrUnknownComponent)

	_, err = f.Registry.GetComponent(f.Ctx, "lending_desk")
	require.ErrorIs(t, err, types.ErrUnknownComponent)
}

// TestGenesis_RoundTrip tests registry genesis export and re-import
func TestGenesis_RoundTrip(t *testing.T) {
	f := keepertest.NewFixture(t)

	info := types.DaoInfo{Name: "SlowDrip DAO LLC", Authority: f.Authority}
	require.NoError(t, f.Registry.SetDaoInfo(f.Ctx, f.Authority, info))
	require.NoError(t, f.Registry.SetComponent(f.Ctx, f.Authority, types.ComponentSessionEscrow, keepertest.Addr("escrow").String()))
	require.NoError(t, f.Registry.SetComponent(f.Ctx, f.Authority, types.ComponentBondingManager, keepertest.Addr("bonding").String()))

	exported := f.Registry.ExportGenesis(f.Ctx)
	require.NotNil(t, exported.DaoInfo)
	require.Equal(t, info, *exported.DaoInfo)
	require.Len(t, exported.Components, 2)

	other := keepertest.NewFixture(t)
	require.NoError(t, other.Registry.InitGenesis(other.Ctx, *exported))

	got, err := other.Registry.GetComponent(other.Ctx, types.ComponentSessionEscrow)
	require.NoError(t, err)
	require.Equal(t, keepertest.Addr("escrow").String(), got)

	reexported := other.Registry.ExportGenesis(other.Ctx)
	require.Equal(t, exported, reexported)
}
