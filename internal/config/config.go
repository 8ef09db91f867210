// Package config provides configuration of the relay command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// Default values of the optional parameters.
const (
	DefaultDialTimeout    = 15 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogLevel       = "info"
)

// Config is a root configuration structure.
type Config struct {
	RPC       RPC       `yaml:"rpc"`
	Wallet    Wallet    `yaml:"wallet"`
	Contracts Contracts `yaml:"contracts"`
	Logger    Logger    `yaml:"logger"`
}

// RPC groups parameters of the Neo RPC connection.
type RPC struct {
	Endpoint       string        `yaml:"endpoint"`
	DialTimeout    time.Duration `yaml:"dial_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Wallet groups parameters of the account signing transactions.
type Wallet struct {
	Path     string `yaml:"path"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
}

// Contracts groups addresses of the deployed contracts. Both Neo addresses
// and little-endian hex strings are accepted.
type Contracts struct {
	Relay   string `yaml:"relay"`
	Deposit string `yaml:"deposit"`
	Sample  string `yaml:"sample"`
}

// Logger groups logging parameters.
type Logger struct {
	Level string `yaml:"level"`
}

// Default returns configuration with default values set.
func Default() Config {
	return Config{
		RPC: RPC{
			DialTimeout:    DefaultDialTimeout,
			RequestTimeout: DefaultRequestTimeout,
		},
		Logger: Logger{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads YAML configuration file. Missing parameters keep default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config file: %w", err)
	}

	return cfg, nil
}

var (
	errMissingEndpoint = errors.New("missing RPC endpoint")
	errMissingWallet   = errors.New("missing wallet path")
)

// ValidateRPC checks parameters required to connect to the network.
func (c Config) ValidateRPC() error {
	if c.RPC.Endpoint == "" {
		return errMissingEndpoint
	}

	if c.RPC.DialTimeout < 0 || c.RPC.RequestTimeout < 0 {
		return fmt.Errorf("negative RPC timeout")
	}

	return nil
}

// ValidateWallet checks parameters required to sign transactions.
func (c Config) ValidateWallet() error {
	if c.Wallet.Path == "" {
		return errMissingWallet
	}

	if c.Wallet.Address != "" {
		_, err := address.StringToUint160(c.Wallet.Address)
		if err != nil {
			return fmt.Errorf("invalid wallet address: %w", err)
		}
	}

	return nil
}

// RelayHash returns parsed address of the Relay contract.
func (c Config) RelayHash() (util.Uint160, error) {
	return parseContract("relay", c.Contracts.Relay)
}

// DepositHash returns parsed address of the Deposit contract.
func (c Config) DepositHash() (util.Uint160, error) {
	return parseContract("deposit", c.Contracts.Deposit)
}

// SampleHash returns parsed address of the Sample contract.
func (c Config) SampleHash() (util.Uint160, error) {
	return parseContract("sample", c.Contracts.Sample)
}

// ParseHash parses Neo address or little-endian hex string of the script hash.
func ParseHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return h, fmt.Errorf("neither Neo address nor LE hex string: %s", s)
	}

	return h, nil
}

func parseContract(name, s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, fmt.Errorf("missing %s contract address", name)
	}

	h, err := ParseHash(s)
	if err != nil {
		return h, fmt.Errorf("invalid %s contract address: %w", name, err)
	}

	return h, nil
}
