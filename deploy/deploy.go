/*
Package deploy provides deployment procedure of the GAS Relay contracts.
*/
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns error with 'Unknown contract' substring if the
	// contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// SampleContractPrm groups deployment parameters of the Sample contract.
type SampleContractPrm struct {
	Common CommonDeployPrm

	// Skip deployment of the Sample contract.
	Disabled bool

	// Additional trusted forwarders. Relay contract is always trusted.
	TrustedForwarders []util.Uint160
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Administrator (paymaster) of the Relay contract. Local account is used
	// if zero.
	Admin util.Uint160

	Relay   CommonDeployPrm
	Deposit CommonDeployPrm
	Sample  SampleContractPrm
}

// Result groups on-chain addresses of the deployed contracts.
type Result struct {
	Relay   util.Uint160
	Deposit util.Uint160
	// Zero if the Sample contract is disabled.
	Sample util.Uint160
}

// Deploy deploys the Relay contract, the Deposit contract and optionally the
// Sample contract in this order. Contracts already present on the chain are
// not deployed again: the address of each contract is a function of the local
// account, NEF checksum and contract name.
//
// Deploy waits for every deployment transaction and fails if any of them is
// not successfully persisted.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	d := deployer{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      localActor,
		sender:     prm.LocalAccount.ScriptHash(),
	}

	admin := prm.Admin
	if admin.Equals(util.Uint160{}) {
		admin = d.sender
	}

	prm.Logger.Info("synchronizing Relay contract with the chain...", zap.Stringer("admin", admin))

	res.Relay, err = d.sync(ctx, prm.Relay, []any{admin})
	if err != nil {
		return res, fmt.Errorf("sync Relay contract with the chain: %w", err)
	}

	prm.Logger.Info("Relay contract successfully synchronized", zap.Stringer("address", res.Relay))

	res.Deposit, err = d.sync(ctx, prm.Deposit, nil)
	if err != nil {
		return res, fmt.Errorf("sync Deposit contract with the chain: %w", err)
	}

	prm.Logger.Info("Deposit contract successfully synchronized", zap.Stringer("address", res.Deposit))

	if prm.Sample.Disabled {
		prm.Logger.Debug("Sample contract is disabled, skip")
		return res, nil
	}

	res.Sample, err = d.sync(ctx, prm.Sample.Common, sampleDeployArgs(res.Relay, prm.Sample.TrustedForwarders))
	if err != nil {
		return res, fmt.Errorf("sync Sample contract with the chain: %w", err)
	}

	prm.Logger.Info("Sample contract successfully synchronized", zap.Stringer("address", res.Sample))

	return res, nil
}

// sampleDeployArgs returns deployment data of the Sample contract: list of
// trusted forwarders starting from the Relay contract.
func sampleDeployArgs(relay util.Uint160, extra []util.Uint160) []any {
	res := make([]any, 0, 1+len(extra))
	res = append(res, relay)

	for i := range extra {
		if !extra[i].Equals(relay) {
			res = append(res, extra[i])
		}
	}

	return res
}

type deployer struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	sender     util.Uint160
}

// sync deploys the contract unless it is already on the chain and returns its
// address.
func (d deployer) sync(ctx context.Context, c CommonDeployPrm, data any) (util.Uint160, error) {
	addr := state.CreateContractHash(d.sender, c.NEF.Checksum, c.Manifest.Name)
	l := d.logger.With(zap.String("contract", c.Manifest.Name), zap.Stringer("address", addr))

	st, err := d.blockchain.GetContractStateByHash(addr)
	if err == nil {
		if st != nil {
			l.Info("contract is already deployed, skip")
			return addr, nil
		}
	} else if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get contract state by address: %w", err)
	}

	l.Info("sending deployment transaction...")

	txHash, vub, err := management.New(d.actor).Deploy(&c.NEF, &c.Manifest, data)
	if err != nil {
		return addr, fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Info("deployment transaction sent, waiting for it to be accepted...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := d.actor.WaitAny(ctx, vub, txHash)
	if err != nil {
		return addr, fmt.Errorf("wait for deployment transaction %s: %w", txHash.StringLE(), err)
	}

	if aer.VMState != vmstate.Halt {
		return addr, fmt.Errorf("%w: %s", errDeployFault, aer.FaultException)
	}

	return addr, nil
}

var errDeployFault = errors.New("deployment transaction failed")

// isErrContractNotFound checks whether the error is returned by Neo RPC
// server for the missing contract.
func isErrContractNotFound(err error) bool {
	return errors.Is(err, neorpc.ErrUnknownContract) || strings.Contains(err.Error(), "Unknown contract")
}
