package main

import (
	"github.com/gasrelay/relay-contract/internal/config"
	"github.com/gasrelay/relay-contract/internal/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

type metadata struct {
	config config.Config
	log    *zap.Logger
}

func setup(c *cli.Context) error {
	cfg := config.Default()

	if p := c.GlobalString("config"); p != "" {
		var err error

		cfg, err = config.Load(p)
		if err != nil {
			return err
		}
	}

	applyFlags(c, &cfg)

	log, err := logger.New(cfg.Logger.Level)
	if err != nil {
		return err
	}

	c.App.Metadata = map[string]any{
		"config": &metadata{
			config: cfg,
			log:    log,
		},
	}

	return nil
}

func teardown(c *cli.Context) error {
	if m, ok := c.App.Metadata["config"].(*metadata); ok {
		_ = m.log.Sync()
	}
	return nil
}

// applyFlags overrides configuration file values with the non-empty global
// flags.
func applyFlags(c *cli.Context, cfg *config.Config) {
	for _, x := range []struct {
		flag string
		dst  *string
	}{
		{"rpc", &cfg.RPC.Endpoint},
		{"wallet", &cfg.Wallet.Path},
		{"address", &cfg.Wallet.Address},
		{"password", &cfg.Wallet.Password},
		{"relay", &cfg.Contracts.Relay},
		{"deposit-contract", &cfg.Contracts.Deposit},
		{"sample-contract", &cfg.Contracts.Sample},
		{"log-level", &cfg.Logger.Level},
	} {
		if v := c.GlobalString(x.flag); v != "" {
			*x.dst = v
		}
	}
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}
