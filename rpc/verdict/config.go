package verdict

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

// Config collects client settings from the environment.
type Config struct {
	// Network names the cluster requests go to.
	Network string `env:"SOLANA_NETWORK" envDefault:"devnet"`
	// RPCURL points at the node accepting requests.
	RPCURL string `env:"SOLANA_RPC_URL" envDefault:"https://api.devnet.solana.com"`
	// KeypairPath locates the authority keypair file.
	KeypairPath string `env:"SOLANA_KEYPAIR_PATH"`
	// ProgramID overrides the default program deployment.
	ProgramID string `env:"VERDICTSWARM_PROGRAM_ID"`
}

// LoadConfig reads client settings from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return c, nil
}

// Program returns the configured program address, the default deployment
// when unset.
func (c Config) Program() (ledger.Address, error) {
	if c.ProgramID == "" {
		return Program(), nil
	}
	a, err := ledger.AddressFromString(c.ProgramID)
	if err != nil {
		return ledger.Address{}, fmt.Errorf("program id: %w", err)
	}
	return a, nil
}

// LoadKeypair reads the authority keypair named by the config. The file
// format is the standard wallet one: a JSON array of 64 bytes, the private
// seed followed by the public key.
func (c Config) LoadKeypair() (ed25519.PrivateKey, error) {
	if c.KeypairPath == "" {
		return nil, fmt.Errorf("keypair path is not configured")
	}
	return LoadKeypair(c.KeypairPath)
}

// LoadKeypair reads a keypair file, see Config.LoadKeypair.
func LoadKeypair(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypair file: %w", err)
	}

	var b []byte
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse keypair file: %w", err)
	}
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("keypair file holds %d bytes, want %d", len(b), ed25519.PrivateKeySize)
	}

	priv := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !bytes.Equal(priv[ed25519.SeedSize:], b[ed25519.SeedSize:]) {
		return nil, fmt.Errorf("keypair file is inconsistent, public key does not match the seed")
	}
	return priv, nil
}

// KeyAddress returns the ledger address of a keypair, its public key.
func KeyAddress(priv ed25519.PrivateKey) ledger.Address {
	var a ledger.Address
	copy(a[:], priv[ed25519.SeedSize:])
	return a
}

// ExplorerTxURL renders the block explorer link of a submitted request. All
// clusters except the main one carry a cluster selector.
func ExplorerTxURL(network, txSig string) string {
	if network == "mainnet-beta" {
		return "https://explorer.solana.com/tx/" + txSig
	}
	return "https://explorer.solana.com/tx/" + txSig + "?cluster=" + network
}
