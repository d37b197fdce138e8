package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/verifier/types"
)

// Keeper of the verifier registry. Implementations are wired explicitly at
// construction; the store decides which of them is trusted and active, so the
// capability used at settle time is resolved at call time, not compile time.
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string
	verifiers map[string]types.Verifier
}

// NewKeeper creates a new verifier Keeper instance. The verifiers map binds
// scheme names to implementations; entries the store never trusts are inert.
func NewKeeper(key storetypes.StoreKey, authority string, verifiers map[string]types.Verifier) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	bound := make(map[string]types.Verifier, len(verifiers))
	for scheme, v := range verifiers {
		if v == nil {
			panic(fmt.Sprintf("nil verifier for scheme %s", scheme))
		}
		bound[scheme] = v
	}

	return &Keeper{
		storeKey:  key,
		authority: authority,
		verifiers: bound,
	}
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the verifier module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Resolve returns the active, trusted verification capability.
func (k Keeper) Resolve(ctx context.Context) (types.Verifier, error) {
	scheme, err := k.GetActiveScheme(ctx)
	if err != nil {
		return nil, err
	}
	if !k.IsTrusted(ctx, scheme) {
		return nil, types.ErrUntrustedScheme.Wrapf("active scheme %s is not trusted", scheme)
	}
	v, ok := k.verifiers[scheme]
	if !ok {
		return nil, types.ErrNoVerifier.Wrapf("scheme %s has no wired implementation", scheme)
	}
	return v, nil
}

// Verify dispatches (proof, publicInputs) to the active scheme.
func (k Keeper) Verify(ctx context.Context, proof, publicInputs []byte) error {
	v, err := k.Resolve(ctx)
	if err != nil {
		return err
	}
	return v.Verify(proof, publicInputs)
}
