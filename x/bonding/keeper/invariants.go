package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/bonding/types"
)

// RegisterInvariants registers all bonding module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance",
		ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "bond-nonnegative",
		BondNonNegativeInvariant(k))
}

// AllInvariants runs all invariants of the bonding module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return BondNonNegativeInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the sum
// of all bond collateral plus open dispute deposits.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := math.ZeroInt()
		k.IterateBonds(ctx, func(bond types.Bond) bool {
			required = required.Add(bond.Total())
			return false
		})
		k.IterateDisputes(ctx, func(dispute types.Dispute) bool {
			if dispute.Open() {
				required = required.Add(dispute.Deposit)
			}
			return false
		})

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, k.denom)
		if balance.Amount.LT(required) {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("module account holds %s but bonds and deposits require %s", balance.Amount, required)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance", "module account covers all collateral"), false
	}
}

// BondNonNegativeInvariant checks that no bond record carries a negative
// staked or unbonding amount.
func BondNonNegativeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateBonds(ctx, func(bond types.Bond) bool {
			if bond.Staked.IsNegative() || bond.UnbondingAmount.IsNegative() {
				broken = true
				msg = fmt.Sprintf("bond for %s has negative amounts: staked %s, unbonding %s",
					bond.Worker, bond.Staked, bond.UnbondingAmount)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "bond-nonnegative", msg), broken
	}
}
