package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/drip-network/drip/testutil/keeper"
	"github.com/drip-network/drip/x/verifier/schemes"
	"github.com/drip-network/drip/x/verifier/types"
)

func fixtureWithSchemes(t *testing.T) *keepertest.Fixture {
	return keepertest.NewFixtureWithVerifiers(t,
		map[string]types.Verifier{
			types.SchemeAcceptAll: schemes.NewAcceptAllVerifier(),
		},
		&types.GenesisState{
			ActiveScheme:   types.SchemeAcceptAll,
			TrustedSchemes: []string{types.SchemeAcceptAll},
		},
	)
}

// TestTrustAndActivate_Flow tests the trust-then-activate rotation
func TestTrustAndActivate_Flow(t *testing.T) {
	f := fixtureWithSchemes(t)

	// Activating an untrusted scheme fails
	err := f.Verifier.SetActiveScheme(f.Ctx, f.Authority, types.SchemeEd25519)
	require.ErrorIs(t, err, types.ErrUntrustedScheme)

	require.NoError(t, f.Verifier.TrustScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	require.True(t, f.Verifier.IsTrusted(f.Ctx, types.SchemeEd25519))

	require.NoError(t, f.Verifier.SetActiveScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	active, err := f.Verifier.GetActiveScheme(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.SchemeEd25519, active)
}

// TestRevokeScheme_ActiveRefused tests that the active scheme cannot be revoked
func TestRevokeScheme_ActiveRefused(t *testing.T) {
	f := fixtureWithSchemes(t)

	err := f.Verifier.RevokeScheme(f.Ctx, f.Authority, types.SchemeAcceptAll)
	require.ErrorIs(t, err, types.ErrSchemeInUse)

	// Rotate away, then revocation succeeds
	require.NoError(t, f.Verifier.TrustScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	require.NoError(t, f.Verifier.SetActiveScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	require.NoError(t, f.Verifier.RevokeScheme(f.Ctx, f.Authority, types.SchemeAcceptAll))
	require.False(t, f.Verifier.IsTrusted(f.Ctx, types.SchemeAcceptAll))
}

// TestSchemeManagement_AuthorityGate tests that only governance manages schemes
func TestSchemeManagement_AuthorityGate(t *testing.T) {
	f := fixtureWithSchemes(t)
	intruder := keepertest.Addr("intruder").String()

	require.ErrorIs(t, f.Verifier.TrustScheme(f.Ctx, intruder, types.SchemeEd25519), types.ErrUnauthorized)
	require.ErrorIs(t, f.Verifier.SetActiveScheme(f.Ctx, intruder, types.SchemeAcceptAll), types.ErrUnauthorized)
	require.ErrorIs(t, f.Verifier.RevokeScheme(f.Ctx, intruder, types.SchemeAcceptAll), types.ErrUnauthorized)
}

// TestVerify_NoWiredImplementation tests dispatch to a trusted scheme with no
// wired verifier
func TestVerify_NoWiredImplementation(t *testing.T) {
	f := fixtureWithSchemes(t)

	require.NoError(t, f.Verifier.TrustScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	require.NoError(t, f.Verifier.SetActiveScheme(f.Ctx, f.Authority, types.SchemeEd25519))

	err := f.Verifier.Verify(f.Ctx, []byte("proof"), make([]byte, types.PublicInputsSize))
	require.ErrorIs(t, err, types.ErrNoVerifier)
}

// TestVerify_AcceptAll tests dispatch through the registry to the wired scheme
func TestVerify_AcceptAll(t *testing.T) {
	f := fixtureWithSchemes(t)

	err := f.Verifier.Verify(f.Ctx, []byte("anything"), make([]byte, types.PublicInputsSize))
	require.NoError(t, err)
}

// TestTrustedSchemes_Listing tests the trusted set iterator
func TestTrustedSchemes_Listing(t *testing.T) {
	f := fixtureWithSchemes(t)

	require.NoError(t, f.Verifier.TrustScheme(f.Ctx, f.Authority, types.SchemeEd25519))
	require.NoError(t, f.Verifier.TrustScheme(f.Ctx, f.Authority, types.SchemeGroth16))

	listed := f.Verifier.TrustedSchemes(f.Ctx)
	require.ElementsMatch(t, []string{types.SchemeAcceptAll, types.SchemeEd25519, types.SchemeGroth16}, listed)
}
