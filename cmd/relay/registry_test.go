package main

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestParseRegistry(t *testing.T) {
	target := util.Uint160{1}
	owner := util.Uint160{2}

	kv := func(k, v []byte) stackitem.Item {
		return stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(k),
			stackitem.NewByteArray(v),
		})
	}

	res, err := parseRegistry([]stackitem.Item{kv(target.BytesBE(), owner.BytesBE())})
	require.NoError(t, err)
	require.Equal(t, []registryEntry{{target: target, owner: owner}}, res)

	res, err = parseRegistry(nil)
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = parseRegistry([]stackitem.Item{stackitem.Make(1)})
	require.Error(t, err)

	_, err = parseRegistry([]stackitem.Item{kv([]byte{1, 2}, owner.BytesBE())})
	require.Error(t, err)

	_, err = parseRegistry([]stackitem.Item{kv(target.BytesBE(), []byte{1, 2})})
	require.Error(t, err)
}
