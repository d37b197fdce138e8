package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/treasury/types"
)

// Keeper of the treasury vault. Custody is the module account; the keeper
// only adds the governance gate in front of outbound transfers.
type Keeper struct {
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	authority     string
	denom         string
}

// NewKeeper creates a new treasury Keeper instance
func NewKeeper(bankKeeper types.BankKeeper, accountKeeper types.AccountKeeper, authority, denom string) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	return Keeper{
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		authority:     authority,
		denom:         denom,
	}
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// VaultAddress returns the treasury module account address
func (k Keeper) VaultAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(types.ModuleName)
}

// Balance returns the treasury's settlement-denom balance
func (k Keeper) Balance(ctx context.Context) math.Int {
	return k.bankKeeper.GetBalance(ctx, k.VaultAddress(), k.denom).Amount
}

// Release transfers treasury funds to a recipient. Only the governance
// authority may call it.
func (k Keeper) Release(ctx context.Context, authority string, recipient sdk.AccAddress, amount math.Int) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	if amount.GT(k.Balance(ctx)) {
		return types.ErrInsufficientFunds.Wrapf("requested %s, held %s", amount, k.Balance(ctx))
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return fmt.Errorf("failed to release treasury funds: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTreasuryReleased,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, k.denom),
		),
	)
	return nil
}
