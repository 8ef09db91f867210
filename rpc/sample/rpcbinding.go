// Package sample contains RPC wrappers for GAS Relay Sample contract.
package sample

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// MessageSetEvent represents "MessageSet" event emitted by the contract.
type MessageSetEvent struct {
	Caller util.Uint160
	Message string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
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

// Caller invokes `caller` method of contract.
func (c *ContractReader) Caller() (util.Uint160, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "caller"))
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

// GetPurse invokes `getPurse` method of contract.
func (c *ContractReader) GetPurse() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getPurse"))
}

// IsTrustedForwarder invokes `isTrustedForwarder` method of contract.
func (c *ContractReader) IsTrustedForwarder(h util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTrustedForwarder", h))
}

// Message invokes `message` method of contract.
func (c *ContractReader) Message() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "message"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// SetMessage creates a transaction invoking `setMessage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMessage(message string, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMessage", message, caller)
}

// SetMessageTransaction creates a transaction invoking `setMessage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMessageTransaction(message string, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMessage", message, caller)
}

// SetMessageUnsigned creates a transaction invoking `setMessage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMessageUnsigned(message string, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMessage", nil, message, caller)
}

// MessageSetEventsFromApplicationLog retrieves a set of all emitted events
// with "MessageSet" name from the provided [result.ApplicationLog].
func MessageSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*MessageSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MessageSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MessageSet" {
				continue
			}
			event := new(MessageSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MessageSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MessageSetEvent or
// returns an error if it's not possible to do to so.
func (e *MessageSetEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	index++
	e.Message, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Message: %w", err)
	}

	return nil
}
