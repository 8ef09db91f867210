// Package relay contains RPC wrappers for GAS Relay contract.
package relay

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// RegisterEvent represents "Register" event emitted by the contract.
type RegisterEvent struct {
	Target util.Uint160
	Owner util.Uint160
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	Owner util.Uint160
	Amount *big.Int
}

// CallOnBehalfEvent represents "CallOnBehalf" event emitted by the contract.
type CallOnBehalfEvent struct {
	Target util.Uint160
	Owner util.Uint160
	Caller util.Uint160
	Method string
	GasAmount *big.Int
	TokenHash util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(owner util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner))
}

// ComputeFee invokes `computeFee` method of contract.
func (c *ContractReader) ComputeFee(gasAmount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "computeFee", gasAmount))
}

// FeeRate invokes `feeRate` method of contract.
func (c *ContractReader) FeeRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feeRate"))
}

// GetPurse invokes `getPurse` method of contract.
func (c *ContractReader) GetPurse() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getPurse"))
}

// IterateRegistry invokes `iterateRegistry` method of contract.
func (c *ContractReader) IterateRegistry() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateRegistry"))
}

// IterateRegistryExpanded is similar to IterateRegistry (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateRegistryExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateRegistry", _numOfIteratorItems))
}

// LedgerTotal invokes `ledgerTotal` method of contract.
func (c *ContractReader) LedgerTotal() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "ledgerTotal"))
}

// OwnerOf invokes `ownerOf` method of contract. Zero hash is returned for
// unregistered targets.
func (c *ContractReader) OwnerOf(target util.Uint160) (util.Uint160, error) {
	return itemToOptionalUint160(unwrap.Item(c.invoker.Call(c.hash, "ownerOf", target)))
}

// Purses invokes `purses` method of contract.
func (c *ContractReader) Purses() ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "purses"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CallOnBehalf creates a transaction invoking `callOnBehalf` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CallOnBehalf(target util.Uint160, method string, caller util.Uint160, gasAmount *big.Int, payAmount *big.Int, args []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "callOnBehalf", target, method, caller, gasAmount, payAmount, args)
}

// CallOnBehalfTransaction creates a transaction invoking `callOnBehalf` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CallOnBehalfTransaction(target util.Uint160, method string, caller util.Uint160, gasAmount *big.Int, payAmount *big.Int, args []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "callOnBehalf", target, method, caller, gasAmount, payAmount, args)
}

// CallOnBehalfUnsigned creates a transaction invoking `callOnBehalf` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CallOnBehalfUnsigned(target util.Uint160, method string, caller util.Uint160, gasAmount *big.Int, payAmount *big.Int, args []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "callOnBehalf", nil, target, method, caller, gasAmount, payAmount, args)
}

// ClaimFee creates a transaction invoking `claimFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimFee() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimFee")
}

// ClaimFeeTransaction creates a transaction invoking `claimFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimFeeTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimFee")
}

// ClaimFeeUnsigned creates a transaction invoking `claimFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimFeeUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimFee", nil)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", owner)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", owner)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, owner)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(target util.Uint160, owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", target, owner)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(target util.Uint160, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", target, owner)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(target util.Uint160, owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, target, owner)
}

// SetFeeRate creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeeRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeRate", rate)
}

// SetFeeRateTransaction creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeeRate", rate)
}

// SetFeeRateUnsigned creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeeRate", nil, rate)
}

// itemToOptionalUint160 converts stack item into util.Uint160, Null item is
// converted into zero hash.
func itemToOptionalUint160(item stackitem.Item, err error) (util.Uint160, error) {
	if err != nil {
		return util.Uint160{}, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

// RegisterEventsFromApplicationLog retrieves a set of all emitted events
// with "Register" name from the provided [result.ApplicationLog].
func RegisterEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegisterEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RegisterEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Register" {
				continue
			}
			event := new(RegisterEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RegisterEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RegisterEvent or
// returns an error if it's not possible to do to so.
func (e *RegisterEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Target, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Target: %w", err)
	}

	index++
	e.Owner, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// CallOnBehalfEventsFromApplicationLog retrieves a set of all emitted events
// with "CallOnBehalf" name from the provided [result.ApplicationLog].
func CallOnBehalfEventsFromApplicationLog(log *result.ApplicationLog) ([]*CallOnBehalfEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CallOnBehalfEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CallOnBehalf" {
				continue
			}
			event := new(CallOnBehalfEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CallOnBehalfEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CallOnBehalfEvent or
// returns an error if it's not possible to do to so.
func (e *CallOnBehalfEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Target, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Target: %w", err)
	}

	index++
	e.Owner, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Caller, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	index++
	e.Method, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Method: %w", err)
	}

	index++
	e.GasAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasAmount: %w", err)
	}

	index++
	e.TokenHash, err = itemToOptionalUint160(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field TokenHash: %w", err)
	}

	return nil
}
