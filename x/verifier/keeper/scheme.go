package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/verifier/types"
)

// GetActiveScheme returns the currently active verification scheme
func (k Keeper) GetActiveScheme(ctx context.Context) (string, error) {
	bz := k.getStore(ctx).Get(types.KeyPrefix(types.ActiveSchemeKey))
	if bz == nil {
		return "", types.ErrUnknownScheme.Wrap("no active scheme configured")
	}
	return string(bz), nil
}

// IsTrusted reports whether a scheme is in the trusted set
func (k Keeper) IsTrusted(ctx context.Context, scheme string) bool {
	return k.getStore(ctx).Has(types.TrustedSchemeKey(scheme))
}

// SetActiveScheme switches the scheme used at settle time. The scheme must
// already be trusted. Governance-only.
func (k Keeper) SetActiveScheme(ctx context.Context, authority, scheme string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if !k.IsTrusted(ctx, scheme) {
		return types.ErrUntrustedScheme.Wrapf("scheme %s must be trusted before activation", scheme)
	}

	store := k.getStore(ctx)
	old := string(store.Get(types.KeyPrefix(types.ActiveSchemeKey)))
	store.Set(types.KeyPrefix(types.ActiveSchemeKey), []byte(scheme))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSchemeActivated,
			sdk.NewAttribute(types.AttributeKeyScheme, scheme),
			sdk.NewAttribute(types.AttributeKeyOldScheme, old),
		),
	)
	return nil
}

// TrustScheme adds a scheme to the trusted set. Governance-only.
func (k Keeper) TrustScheme(ctx context.Context, authority, scheme string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if scheme == "" {
		return types.ErrUnknownScheme.Wrap("scheme cannot be empty")
	}

	k.getStore(ctx).Set(types.TrustedSchemeKey(scheme), []byte{1})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSchemeTrusted,
			sdk.NewAttribute(types.AttributeKeyScheme, scheme),
		),
	)
	return nil
}

// RevokeScheme removes a scheme from the trusted set. The active scheme
// cannot be revoked: activate a replacement first, so settlement never loses
// its verification capability mid-flight. Governance-only.
func (k Keeper) RevokeScheme(ctx context.Context, authority, scheme string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if !k.IsTrusted(ctx, scheme) {
		return types.ErrUntrustedScheme.Wrapf("scheme %s is not trusted", scheme)
	}
	if active, err := k.GetActiveScheme(ctx); err == nil && active == scheme {
		return types.ErrSchemeInUse.Wrapf("scheme %s is active", scheme)
	}

	k.getStore(ctx).Delete(types.TrustedSchemeKey(scheme))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSchemeRevoked,
			sdk.NewAttribute(types.AttributeKeyScheme, scheme),
		),
	)
	return nil
}

// TrustedSchemes returns the trusted scheme set in store order
func (k Keeper) TrustedSchemes(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.TrustedSchemeKeyPrefix))
	defer iterator.Close()

	var schemes []string
	for ; iterator.Valid(); iterator.Next() {
		schemes = append(schemes, string(iterator.Key()[len(types.TrustedSchemeKeyPrefix):]))
	}
	return schemes
}
