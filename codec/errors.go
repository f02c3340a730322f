// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrDuplicateItem = errors.New("duplicate item")
	ErrInvalidSize   = errors.New("invalid size")
	ErrUnknownType   = errors.New("unknown type")
	ErrEmptyBytes    = errors.New("empty bytes")
	ErrIncorrectHRP  = errors.New("incorrect hrp")
)
