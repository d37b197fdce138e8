package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drip-network/drip/pkg/manifest"
)

func testnetEntry() manifest.Network {
	return manifest.Network{
		Chain:     "drip-testnet",
		ChainID:   "drip-testnet-1",
		Canonical: false,
		Contracts: []manifest.Contract{
			{Name: "session_escrow", Address: "drip1escrow", Verified: true},
			{Name: "treasury", Address: "drip1treasury", Verified: true, Params: map[string]string{"denom": "udrip"}},
		},
	}
}

// TestLoad_MissingFile tests that a missing manifest yields a fresh one
func TestLoad_MissingFile(t *testing.T) {
	m, err := manifest.Load(filepath.Join(t.TempDir(), "deployments.json"), "slowdrip")
	require.NoError(t, err)
	require.Equal(t, manifest.Version, m.ManifestVersion)
	require.Equal(t, "slowdrip", m.Dao)
	require.Empty(t, m.Networks)
}

// TestLoad_Corrupt tests that unparseable content is an error, not a reset
func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := manifest.Load(path, "slowdrip")
	require.Error(t, err)
}

// TestUpsert_ReplaceAndAppend tests network entry dedup by chain id
func TestUpsert_ReplaceAndAppend(t *testing.T) {
	m := manifest.New("slowdrip")

	first := testnetEntry()
	m.Upsert(first)
	require.Len(t, m.Networks, 1)

	// Same chain id replaces in place
	updated := first
	updated.Canonical = true
	m.Upsert(updated)
	require.Len(t, m.Networks, 1)
	got, found := m.Find("drip-testnet-1")
	require.True(t, found)
	require.True(t, got.Canonical)

	// Different chain id appends
	mainnet := manifest.Network{Chain: "drip", ChainID: "drip-1", Canonical: true}
	m.Upsert(mainnet)
	require.Len(t, m.Networks, 2)

	_, found = m.Find("drip-2")
	require.False(t, found)
}

// TestWriteLoad_RoundTrip tests persistence including nested directories
func TestWriteLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments", "drip", "manifest.json")

	m := manifest.New("slowdrip")
	m.Upsert(testnetEntry())
	require.NoError(t, m.Write(path))

	loaded, err := manifest.Load(path, "ignored-on-existing")
	require.NoError(t, err)
	require.Equal(t, m, loaded)

	// Written file ends with a newline so it diffs cleanly under git
	bz, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, bz)
	require.Equal(t, byte('\n'), bz[len(bz)-1])
}

// TestUpsertNetwork_OneShot tests the load-modify-write convenience path
func TestUpsertNetwork_OneShot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")

	require.NoError(t, manifest.UpsertNetwork(path, "slowdrip", testnetEntry()))

	mainnet := manifest.Network{Chain: "drip", ChainID: "drip-1", Canonical: true}
	require.NoError(t, manifest.UpsertNetwork(path, "slowdrip", mainnet))

	loaded, err := manifest.Load(path, "slowdrip")
	require.NoError(t, err)
	require.Equal(t, "slowdrip", loaded.Dao)
	require.Len(t, loaded.Networks, 2)

	got, found := loaded.Find("drip-1")
	require.True(t, found)
	require.True(t, got.Canonical)
}
