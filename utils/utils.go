// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/onsi/ginkgo/v2/formatter"

	"github.com/ava-labs/vaultvm/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// nativeUnit is one whole token in base units (10^consts.Decimals).
const nativeUnit uint64 = 1_000_000_000

var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrInvalidBalance = errors.New("invalid balance")
)

// Outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatBalance renders [bal] base units as a decimal amount of the native
// token.
func FormatBalance(bal uint64) string {
	s := strconv.FormatUint(bal, 10)
	if len(s) <= consts.Decimals {
		s = strings.Repeat("0", consts.Decimals-len(s)+1) + s
	}
	split := len(s) - consts.Decimals
	return s[:split] + "." + s[split:]
}

// ParseBalance is the inverse of FormatBalance. At most [consts.Decimals]
// fractional digits are accepted.
func ParseBalance(bal string) (uint64, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(bal), ".")
	if len(frac) > consts.Decimals || (whole == "" && frac == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBalance, bal)
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBalance, err)
	}
	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac+strings.Repeat("0", consts.Decimals-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidBalance, err)
		}
	}
	w, err = smath.Mul(w, nativeUnit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBalance, err)
	}
	return smath.Add(w, f)
}

// SaveBytes writes [b] to [filename] readable only by the current user.
func SaveBytes(filename string, b []byte) error {
	return os.WriteFile(filename, b, perms.ReadWrite)
}

// LoadBytes reads [filename]. If [expectedSize] is not -1, the contents must
// be exactly that long.
func LoadBytes(filename string, expectedSize int) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(b) != expectedSize {
		return nil, fmt.Errorf("%w: %d != %d", ErrInvalidSize, len(b), expectedSize)
	}
	return b, nil
}
