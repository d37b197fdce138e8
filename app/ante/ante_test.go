package ante_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/core/address"
	txsigning "cosmossdk.io/x/tx/signing"
	codecaddress "github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	dripante "github.com/drip-network/drip/app/ante"
)

func TestNewAnteHandler_MissingAccountKeeper(t *testing.T) {
	handler, err := dripante.NewAnteHandler(dripante.HandlerOptions{})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "account keeper is required")
}

func TestNewAnteHandler_MissingBankKeeper(t *testing.T) {
	handler, err := dripante.NewAnteHandler(dripante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "bank keeper is required")
}

func TestNewAnteHandler_MissingSignModeHandler(t *testing.T) {
	handler, err := dripante.NewAnteHandler(dripante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
		BankKeeper:    mockBankKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "sign mode handler is required")
}

// TestNewAnteHandler_WithoutSettlementKeepers checks that the chain builds
// without the optional escrow and bonding decorators.
func TestNewAnteHandler_WithoutSettlementKeepers(t *testing.T) {
	handler, err := dripante.NewAnteHandler(dripante.HandlerOptions{
		AccountKeeper:   mockAccountKeeper{},
		BankKeeper:      mockBankKeeper{},
		SignModeHandler: txsigning.NewHandlerMap(),
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
}

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetParams(ctx context.Context) authtypes.Params {
	return authtypes.DefaultParams()
}
func (mockAccountKeeper) GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	return nil
}
func (mockAccountKeeper) SetAccount(ctx context.Context, acc sdk.AccountI) {}
func (mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress      { return nil }
func (mockAccountKeeper) AddressCodec() address.Codec {
	return codecaddress.NewBech32Codec("drip")
}

type mockBankKeeper struct{}

func (mockBankKeeper) IsSendEnabledCoins(ctx context.Context, coins ...sdk.Coin) error { return nil }
func (mockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return nil
}
func (mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return nil
}
func (mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.Coin{}
}
