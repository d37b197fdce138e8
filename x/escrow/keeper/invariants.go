package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/escrow/types"
)

// RegisterInvariants registers all escrow module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-balance",
		EscrowBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "session-state",
		SessionStateInvariant(k))
}

// AllInvariants runs all invariants of the escrow module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return SessionStateInvariant(k)(ctx)
	}
}

// EscrowBalanceInvariant checks that the module account covers the sum of all
// session balances.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := math.ZeroInt()
		k.IterateSessions(ctx, func(session types.Session) bool {
			required = required.Add(session.Amount)
			return false
		})

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, k.denom)
		if balance.Amount.LT(required) {
			return sdk.FormatInvariant(types.ModuleName, "escrow-balance",
				fmt.Sprintf("module account holds %s but sessions require %s", balance.Amount, required)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "escrow-balance", "module account covers all sessions"), false
	}
}

// SessionStateInvariant checks that every session record is internally
// consistent: non-negative balance, settled implies assigned.
func SessionStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		k.IterateSessions(ctx, func(session types.Session) bool {
			if err := session.Validate(); err != nil {
				broken = true
				msg = fmt.Sprintf("session %s invalid: %v", session.ID, err)
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "session-state", msg), broken
	}
}
