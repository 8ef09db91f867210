package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0600))
	return p
}

func TestLoad(t *testing.T) {
	relay := util.Uint160{1, 2, 3}

	p := writeConfig(t, `
rpc:
  endpoint: http://localhost:30333
  request_timeout: 5s
wallet:
  path: /tmp/wallet.json
  password: secret
contracts:
  relay: `+address.Uint160ToString(relay)+`
  sample: `+relay.StringLE()+`
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:30333", cfg.RPC.Endpoint)
	require.Equal(t, DefaultDialTimeout, cfg.RPC.DialTimeout)
	require.Equal(t, 5*time.Second, cfg.RPC.RequestTimeout)
	require.Equal(t, "/tmp/wallet.json", cfg.Wallet.Path)
	require.Equal(t, "secret", cfg.Wallet.Password)
	require.Equal(t, DefaultLogLevel, cfg.Logger.Level)

	require.NoError(t, cfg.ValidateRPC())
	require.NoError(t, cfg.ValidateWallet())

	h, err := cfg.RelayHash()
	require.NoError(t, err)
	require.Equal(t, relay, h)

	h, err = cfg.SampleHash()
	require.NoError(t, err)
	require.Equal(t, relay, h)

	_, err = cfg.DepositHash()
	require.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "rpc: [not a map"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.ErrorIs(t, cfg.ValidateRPC(), errMissingEndpoint)
	require.ErrorIs(t, cfg.ValidateWallet(), errMissingWallet)

	cfg.RPC.Endpoint = "ws://localhost:30333/ws"
	cfg.RPC.DialTimeout = -time.Second
	require.Error(t, cfg.ValidateRPC())

	cfg.Wallet.Path = "wallet.json"
	cfg.Wallet.Address = "not an address"
	require.Error(t, cfg.ValidateWallet())
}

func TestParseHash(t *testing.T) {
	h := util.Uint160{0xde, 0xad, 0xbe, 0xef}

	res, err := ParseHash(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = ParseHash(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = ParseHash("0x1234")
	require.Error(t, err)
}
