package main

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/gasrelay/relay-contract/internal/config"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

// gasPrecision is a number of decimals of the native GAS token.
const gasPrecision = 8

// parseGAS parses decimal GAS amount into the fractional units.
func parseGAS(s string) (*big.Int, error) {
	v, err := fixedn.FromString(s, gasPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid GAS amount %q: %w", s, err)
	}

	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative GAS amount %q", s)
	}

	return v, nil
}

// formatGAS formats GAS fractional units as a decimal string.
func formatGAS(v *big.Int) string {
	return fixedn.ToString(v, gasPrecision)
}

var errEmptyArg = errors.New("empty argument")

// parseCallArg converts command line argument of the relayed call into
// contract parameter. Argument type is set by the optional prefix, plain
// string is used by default.
func parseCallArg(s string) (any, error) {
	if s == "" {
		return nil, errEmptyArg
	}

	typ, val, ok := strings.Cut(s, ":")
	if !ok {
		return s, nil
	}

	switch typ {
	case "int":
		v, ok := new(big.Int).SetString(val, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", val)
		}
		return v, nil
	case "bool":
		v, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", val, err)
		}
		return v, nil
	case "hash160":
		return config.ParseHash(val)
	case "bytes":
		v, err := base58.Decode(val)
		if err != nil {
			return nil, fmt.Errorf("invalid base58 bytes %q: %w", val, err)
		}
		return v, nil
	case "str":
		return val, nil
	default:
		return s, nil
	}
}

func parseCallArgs(ss []string) ([]any, error) {
	res := make([]any, 0, len(ss))

	for i := range ss {
		v, err := parseCallArg(ss[i])
		if err != nil {
			return nil, fmt.Errorf("argument #%d: %w", i, err)
		}

		res = append(res, v)
	}

	return res, nil
}
