package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

type registryEntry struct {
	target util.Uint160
	owner  util.Uint160
}

// parseRegistry decodes key-value pairs returned by `iterateRegistry` method
// of the Relay contract.
func parseRegistry(items []stackitem.Item) ([]registryEntry, error) {
	res := make([]registryEntry, 0, len(items))

	for i := range items {
		kv, ok := items[i].Value().([]stackitem.Item)
		if !ok || len(kv) != 2 {
			return nil, fmt.Errorf("registry item #%d: %w", i, errors.New("not a key-value pair"))
		}

		var (
			e   registryEntry
			err error
		)

		e.target, err = itemToUint160(kv[0])
		if err != nil {
			return nil, fmt.Errorf("registry item #%d: target: %w", i, err)
		}

		e.owner, err = itemToUint160(kv[1])
		if err != nil {
			return nil, fmt.Errorf("registry item #%d: owner: %w", i, err)
		}

		res = append(res, e)
	}

	return res, nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}

	return util.Uint160DecodeBytesBE(b)
}
