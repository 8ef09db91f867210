package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/gasrelay/relay-contract/contracts/relay/relayconst"
	"github.com/gasrelay/relay-contract/deploy"
	"github.com/gasrelay/relay-contract/internal/config"
	depositrpc "github.com/gasrelay/relay-contract/rpc/deposit"
	relayrpc "github.com/gasrelay/relay-contract/rpc/relay"
	samplerpc "github.com/gasrelay/relay-contract/rpc/sample"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func runDeploy(c *cli.Context) error {
	m := getMetadata(c)

	dir := c.String("contracts")
	if dir == "" {
		return errors.New("missing compiled contracts directory")
	}

	bc, err := newRemoteBlockchain(context.Background(), m.config, m.log, relayrpc.PaymasterSigner)
	if err != nil {
		return err
	}
	defer bc.close()

	prm := deploy.Prm{
		Logger:       m.log,
		Blockchain:   bc.rpc,
		LocalAccount: bc.account,
	}

	err = deploy.ReadContracts(os.DirFS(dir), &prm)
	if err != nil {
		return err
	}

	if s := c.String("admin"); s != "" {
		prm.Admin, err = config.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid admin: %w", err)
		}
	}

	prm.Sample.Disabled = c.Bool("no-sample")

	for _, s := range c.StringSlice("forwarder") {
		h, err := config.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid forwarder: %w", err)
		}

		prm.Sample.TrustedForwarders = append(prm.Sample.TrustedForwarders, h)
	}

	res, err := deploy.Deploy(context.Background(), prm)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "relay: %s\n", res.Relay.StringLE())
	fmt.Fprintf(c.App.Writer, "deposit: %s\n", res.Deposit.StringLE())
	if !prm.Sample.Disabled {
		fmt.Fprintf(c.App.Writer, "sample: %s\n", res.Sample.StringLE())
	}

	return nil
}

// relayCommand opens the wallet and the Relay contract for the state-changing
// commands.
func relayCommand(c *cli.Context) (*remoteBlockchain, *relayrpc.Contract, error) {
	m := getMetadata(c)

	h, err := m.config.RelayHash()
	if err != nil {
		return nil, nil, err
	}

	bc, err := newRemoteBlockchain(context.Background(), m.config, m.log, relayrpc.PaymasterSigner)
	if err != nil {
		return nil, nil, err
	}

	return bc, relayrpc.New(bc.actor, h), nil
}

func hashArgs(c *cli.Context, names ...string) ([]util.Uint160, error) {
	if c.NArg() != len(names) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(names), c.NArg())
	}

	res := make([]util.Uint160, len(names))
	for i := range names {
		var err error

		res[i], err = config.ParseHash(c.Args().Get(i))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", names[i], err)
		}
	}

	return res, nil
}

func runRegister(c *cli.Context) error {
	hs, err := hashArgs(c, "target", "owner")
	if err != nil {
		return err
	}

	bc, relay, err := relayCommand(c)
	if err != nil {
		return err
	}
	defer bc.close()

	return bc.wait(relay.Register(hs[0], hs[1]))
}

func runDeposit(c *cli.Context) error {
	m := getMetadata(c)

	hs, err := hashArgs(c, "owner")
	if err != nil {
		return err
	}
	owner := hs[0]

	amount, err := parseGAS(c.String("amount"))
	if err != nil {
		return err
	}

	if amount.Sign() == 0 {
		return errors.New("zero deposit")
	}

	relayHash, err := m.config.RelayHash()
	if err != nil {
		return err
	}

	if c.Bool("helper") {
		helper, err := m.config.DepositHash()
		if err != nil {
			return err
		}

		bc, err := newRemoteBlockchain(context.Background(), m.config, m.log,
			func(acc util.Uint160) transaction.Signer {
				return depositrpc.DepositorSigner(acc, helper)
			})
		if err != nil {
			return err
		}
		defer bc.close()

		m.log.Info("depositing through the Deposit contract",
			zap.Stringer("owner", owner), zap.String("amount", formatGAS(amount)))

		return bc.wait(depositrpc.New(bc.actor, helper).Deposit(bc.account.ScriptHash(), relayHash, owner, amount))
	}

	bc, err := newRemoteBlockchain(context.Background(), m.config, m.log, relayrpc.PaymasterSigner)
	if err != nil {
		return err
	}
	defer bc.close()

	from := bc.account.ScriptHash()

	m.log.Info("depositing with GAS transfer",
		zap.Stringer("owner", owner), zap.String("amount", formatGAS(amount)))

	return bc.wait(gas.New(bc.actor).Transfer(from, relayHash, amount, owner))
}

func runCall(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("missing target or method")
	}

	target, err := config.ParseHash(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	method := c.Args().Get(1)

	args, err := parseCallArgs(c.Args()[2:])
	if err != nil {
		return err
	}

	if c.String("caller") == "" {
		return errors.New("missing caller")
	}

	caller, err := config.ParseHash(c.String("caller"))
	if err != nil {
		return fmt.Errorf("invalid caller: %w", err)
	}

	gasAmount, err := parseGAS(c.String("gas"))
	if err != nil {
		return err
	}

	payAmount, err := parseGAS(c.String("pay"))
	if err != nil {
		return err
	}

	bc, relay, err := relayCommand(c)
	if err != nil {
		return err
	}
	defer bc.close()

	return bc.wait(relay.CallOnBehalf(target, method, caller, gasAmount, payAmount, args))
}

func runSetFeeRate(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected fee rate argument")
	}

	rate, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || rate < 0 || rate > relayconst.MaxFeeRate {
		return fmt.Errorf("invalid fee rate %q", c.Args().First())
	}

	bc, relay, err := relayCommand(c)
	if err != nil {
		return err
	}
	defer bc.close()

	return bc.wait(relay.SetFeeRate(big.NewInt(rate)))
}

func runClaimFee(c *cli.Context) error {
	bc, relay, err := relayCommand(c)
	if err != nil {
		return err
	}
	defer bc.close()

	return bc.wait(relay.ClaimFee())
}

func runStatus(c *cli.Context) error {
	m := getMetadata(c)

	h, err := m.config.RelayHash()
	if err != nil {
		return err
	}

	rpcCli, err := dial(context.Background(), m.config)
	if err != nil {
		return err
	}
	defer rpcCli.Close()

	r := relayrpc.NewReader(invoker.New(rpcCli, nil), h)

	admin, err := r.Admin()
	if err != nil {
		return fmt.Errorf("get admin: %w", err)
	}

	rate, err := r.FeeRate()
	if err != nil {
		return fmt.Errorf("get fee rate: %w", err)
	}

	purses, err := r.Purses()
	if err != nil {
		return fmt.Errorf("get purses: %w", err)
	}

	if len(purses) != 3 {
		return fmt.Errorf("unexpected number of purses %d", len(purses))
	}

	total, err := r.LedgerTotal()
	if err != nil {
		return fmt.Errorf("get ledger total: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "admin: %s\n", address.Uint160ToString(admin))
	fmt.Fprintf(w, "fee rate: %s/1000\n", rate)
	fmt.Fprintf(w, "relay purse: %s GAS\n", formatGAS(purses[0]))
	fmt.Fprintf(w, "deposit purse: %s GAS\n", formatGAS(purses[1]))
	fmt.Fprintf(w, "fee purse: %s GAS\n", formatGAS(purses[2]))
	fmt.Fprintf(w, "ledger total: %s GAS\n", formatGAS(total))

	if s := c.String("owner"); s != "" {
		owner, err := config.ParseHash(s)
		if err != nil {
			return fmt.Errorf("invalid owner: %w", err)
		}

		balance, err := r.BalanceOf(owner)
		if err != nil {
			return fmt.Errorf("get owner balance: %w", err)
		}

		fmt.Fprintf(w, "owner balance: %s GAS\n", formatGAS(balance))
	}

	items, err := r.IterateRegistryExpanded(c.Int("max-targets"))
	if err != nil {
		return fmt.Errorf("iterate registry: %w", err)
	}

	entries, err := parseRegistry(items)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "registered targets: %d\n", len(entries))
	for i := range entries {
		fmt.Fprintf(w, "  %s -> %s\n", entries[i].target.StringLE(), address.Uint160ToString(entries[i].owner))
	}

	if m.config.Contracts.Sample == "" {
		return nil
	}

	sh, err := m.config.SampleHash()
	if err != nil {
		return err
	}

	s := samplerpc.NewReader(invoker.New(rpcCli, nil), sh)

	msg, err := s.Message()
	if err != nil {
		return fmt.Errorf("get sample message: %w", err)
	}

	author, err := s.Caller()
	if err != nil {
		return fmt.Errorf("get sample message author: %w", err)
	}

	trusted, err := s.IsTrustedForwarder(h)
	if err != nil {
		return fmt.Errorf("check sample forwarder: %w", err)
	}

	fmt.Fprintf(w, "sample message: %q\n", msg)
	if !author.Equals(util.Uint160{}) {
		fmt.Fprintf(w, "sample message author: %s\n", address.Uint160ToString(author))
	}
	fmt.Fprintf(w, "sample trusts relay: %t\n", trusted)

	return nil
}

func runCost(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected gas amount argument")
	}

	gasAmount, err := parseGAS(c.Args().First())
	if err != nil {
		return err
	}

	rate := c.Int64("rate")
	if rate < 0 || rate > relayconst.MaxFeeRate {
		return fmt.Errorf("fee rate is out of range [0, %d]", relayconst.MaxFeeRate)
	}

	fee := relayrpc.ComputeFee(gasAmount, big.NewInt(rate))
	total := relayrpc.TotalCost(gasAmount, big.NewInt(rate))

	fmt.Fprintf(c.App.Writer, "fee: %s GAS\n", formatGAS(fee))
	fmt.Fprintf(c.App.Writer, "total: %s GAS\n", formatGAS(total))

	return nil
}
