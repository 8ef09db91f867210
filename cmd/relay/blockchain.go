package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gasrelay/relay-contract/internal/config"
	relayrpc "github.com/gasrelay/relay-contract/rpc/relay"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// remoteBlockchain is a wrapper over Neo RPC client and the paymaster
// account signing transactions.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	actor   *actor.Actor
	account *wallet.Account
	log     *zap.Logger
}

// dial connects to the Neo RPC server without opening the wallet.
func dial(ctx context.Context, cfg config.Config) (*rpcclient.Client, error) {
	err := cfg.ValidateRPC()
	if err != nil {
		return nil, err
	}

	c, err := rpcclient.New(ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return c, nil
}

// signerFunc returns transaction signer of the wallet account. It defines the
// witness scope of the command.
type signerFunc func(acc util.Uint160) transaction.Signer

// newRemoteBlockchain dials Neo RPC server and unlocks the wallet account
// signing transactions as the signer function sets.
func newRemoteBlockchain(ctx context.Context, cfg config.Config, log *zap.Logger, signer signerFunc) (*remoteBlockchain, error) {
	err := cfg.ValidateWallet()
	if err != nil {
		return nil, err
	}

	acc, err := openAccount(cfg.Wallet)
	if err != nil {
		return nil, err
	}

	c, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	act, err := actor.New(c, []actor.SignerAccount{{
		Signer:  signer(acc.ScriptHash()),
		Account: acc,
	}})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &remoteBlockchain{
		rpc:     c,
		actor:   act,
		account: acc,
		log:     log,
	}, nil
}

func openAccount(cfg config.Wallet) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var h util.Uint160
	if cfg.Address != "" {
		h, err = config.ParseHash(cfg.Address)
		if err != nil {
			return nil, err
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", h.StringLE())
	}

	err = acc.Decrypt(cfg.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

var errFault = errors.New("transaction failed")

// wait waits for the transaction to be accepted and checks its execution
// result. Known Relay contract exceptions are returned as the rpc/relay
// errors.
func (x *remoteBlockchain) wait(txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	x.log.Info("transaction sent, waiting for it to be accepted...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := x.actor.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("%w: %w", errFault, relayrpc.ParseFault(aer.FaultException))
	}

	x.log.Info("transaction successfully accepted", zap.Stringer("tx", txHash),
		zap.Int64("gas consumed", aer.GasConsumed))

	return nil
}
