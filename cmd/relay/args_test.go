package main

import (
	"math/big"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestParseGAS(t *testing.T) {
	v, err := parseGAS("10.5")
	require.NoError(t, err)
	require.Equal(t, int64(10_5000_0000), v.Int64())
	require.Equal(t, "10.5", formatGAS(v))

	v, err = parseGAS("0.00000001")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.Int64())

	_, err = parseGAS("-1")
	require.Error(t, err)

	_, err = parseGAS("0.000000001")
	require.Error(t, err)

	_, err = parseGAS("ten")
	require.Error(t, err)
}

func TestParseCallArg(t *testing.T) {
	h := util.Uint160{1, 2, 3}
	payload := []byte("relayed payload")

	for s, expected := range map[string]any{
		"hello":                                 "hello",
		"str:int:1":                             "int:1",
		"int:-42":                               big.NewInt(-42),
		"bool:true":                             true,
		"hash160:" + address.Uint160ToString(h): h,
		"hash160:" + h.StringLE():               h,
		"bytes:" + base58.Encode(payload):       payload,
		"unknown:prefix":                        "unknown:prefix",
	} {
		v, err := parseCallArg(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, v, s)
	}

	for _, s := range []string{"", "int:x", "bool:maybe", "hash160:nope", "bytes:0OIl"} {
		_, err := parseCallArg(s)
		require.Error(t, err, s)
	}
}

func TestParseCallArgs(t *testing.T) {
	res, err := parseCallArgs([]string{"hello", "int:1"})
	require.NoError(t, err)
	require.Equal(t, []any{"hello", big.NewInt(1)}, res)

	_, err = parseCallArgs([]string{"hello", ""})
	require.ErrorIs(t, err, errEmptyArg)
}
