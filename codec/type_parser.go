// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// Typed is implemented by anything registered with a [TypeParser].
type Typed interface {
	GetTypeID() uint8
}

// TypeParser maps type ids to decoders for one family of objects (actions,
// auth). Encoded objects are prefixed with their type id.
type TypeParser[T Typed] struct {
	decoders map[uint8]func([]byte) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		decoders: map[uint8]func([]byte) (T, error){},
	}
}

func (p *TypeParser[T]) Register(o T, f func([]byte) (T, error)) error {
	typeID := o.GetTypeID()
	if _, ok := p.decoders[typeID]; ok {
		return fmt.Errorf("%w: type %d (%T)", ErrDuplicateItem, typeID, o)
	}
	p.decoders[typeID] = f
	return nil
}

// Unmarshal decodes [b] with the decoder registered for [typeID].
func (p *TypeParser[T]) Unmarshal(typeID uint8, b []byte) (T, error) {
	f, ok := p.decoders[typeID]
	if !ok {
		var empty T
		return empty, fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(b)
}
