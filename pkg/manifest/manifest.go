// Package manifest reads and writes the deployment manifest file that
// off-chain tooling uses to discover where each DAO component lives on each
// network.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Version is the manifest schema version this package writes
const Version = 1

// Contract is one deployed component entry
type Contract struct {
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Verified bool              `json:"verified"`
	Params   map[string]string `json:"params,omitempty"`
}

// Network is the set of contracts deployed to one chain
type Network struct {
	Chain     string     `json:"chain"`
	ChainID   string     `json:"chainId"`
	Canonical bool       `json:"canonical"`
	Contracts []Contract `json:"contracts"`
}

// Manifest is the full deployment record for a DAO
type Manifest struct {
	ManifestVersion int       `json:"manifestVersion"`
	Dao             string    `json:"dao"`
	Networks        []Network `json:"networks"`
}

// New returns an empty manifest for a DAO
func New(dao string) *Manifest {
	return &Manifest{
		ManifestVersion: Version,
		Dao:             dao,
		Networks:        []Network{},
	}
}

// Load reads a manifest from path. A missing file is not an error; it yields
// a fresh manifest for the given DAO so first deployments and updates share
// one code path.
func Load(path, dao string) (*Manifest, error) {
	bz, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(dao), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(bz, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Upsert replaces the network with the same ChainID or appends it
func (m *Manifest) Upsert(network Network) {
	for i := range m.Networks {
		if m.Networks[i].ChainID == network.ChainID {
			m.Networks[i] = network
			return
		}
	}
	m.Networks = append(m.Networks, network)
}

// Find returns the network entry for a chain id, if present
func (m *Manifest) Find(chainID string) (Network, bool) {
	for _, network := range m.Networks {
		if network.ChainID == chainID {
			return network, true
		}
	}
	return Network{}, false
}

// Write persists the manifest as pretty-printed JSON, creating parent
// directories as needed.
func (m *Manifest) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	bz, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	bz = append(bz, '\n')
	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// UpsertNetwork loads the manifest at path, upserts the network, and writes
// it back.
func UpsertNetwork(path, dao string, network Network) error {
	m, err := Load(path, dao)
	if err != nil {
		return err
	}
	m.ManifestVersion = Version
	if m.Dao == "" {
		m.Dao = dao
	}
	m.Upsert(network)
	return m.Write(path)
}
