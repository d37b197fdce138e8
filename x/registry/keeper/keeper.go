package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/drip-network/drip/x/registry/types"
)

// Keeper of the registry store. It records which deployed component serves
// each role of the DAO so off-chain tooling can discover the wiring.
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string
}

// NewKeeper creates a new registry Keeper instance
func NewKeeper(key storetypes.StoreKey, authority string) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	return &Keeper{
		storeKey:  key,
		authority: authority,
	}
}

// GetAuthority returns the module's authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the registry module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetDaoInfo retrieves the DAO descriptor, if set
func (k Keeper) GetDaoInfo(ctx context.Context) (types.DaoInfo, bool) {
	bz := k.getStore(ctx).Get(types.KeyPrefix(types.DaoInfoKey))
	if bz == nil {
		return types.DaoInfo{}, false
	}
	var info types.DaoInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.DaoInfo{}, false
	}
	return info, true
}

// SetDaoInfo stores the DAO descriptor. Only the governance authority may
// change it.
func (k Keeper) SetDaoInfo(ctx context.Context, authority string, info types.DaoInfo) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if err := info.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("SetDaoInfo: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.KeyPrefix(types.DaoInfoKey), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDaoInfoSet,
			sdk.NewAttribute(types.AttributeKeyDaoName, info.Name),
		),
	)
	return nil
}

// GetComponent resolves a component name to its bound address
func (k Keeper) GetComponent(ctx context.Context, name string) (string, error) {
	if !types.KnownComponents[name] {
		return "", types.ErrUnknownComponent.Wrapf("name %s", name)
	}
	bz := k.getStore(ctx).Get(types.ComponentKey(name))
	if bz == nil {
		return "", types.ErrUnknownComponent.Wrapf("component %s not bound", name)
	}
	return string(bz), nil
}

// SetComponent binds a component name to an address. Only the governance
// authority may rebind; the name must be in the known set.
func (k Keeper) SetComponent(ctx context.Context, authority, name, address string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	component := types.Component{Name: name, Address: address}
	if err := component.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ComponentKey(name), []byte(address))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeComponentSet,
			sdk.NewAttribute(types.AttributeKeyComponent, name),
			sdk.NewAttribute(types.AttributeKeyAddress, address),
		),
	)
	return nil
}

// IterateComponents walks all component bindings in the known-name order
func (k Keeper) IterateComponents(ctx context.Context, cb func(component types.Component) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.KeyPrefix(types.ComponentKeyPrefix))
	defer iterator.Close()

	prefixLen := len(types.ComponentKeyPrefix)
	for ; iterator.Valid(); iterator.Next() {
		component := types.Component{
			Name:    string(iterator.Key()[prefixLen:]),
			Address: string(iterator.Value()),
		}
		if cb(component) {
			break
		}
	}
}
