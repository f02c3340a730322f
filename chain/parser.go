// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/vaultvm/codec"
)

// Parser decodes actions and auth registered by the VM.
type Parser struct {
	ActionRegistry *codec.TypeParser[Action]
	AuthRegistry   *codec.TypeParser[Auth]
}

func NewParser() *Parser {
	return &Parser{
		ActionRegistry: codec.NewTypeParser[Action](),
		AuthRegistry:   codec.NewTypeParser[Auth](),
	}
}

func (p *Parser) ParseTx(s *SerializedTx) (*Transaction, error) {
	if s.Base == nil {
		return nil, fmt.Errorf("%w: missing base", codec.ErrEmptyBytes)
	}
	action, err := p.ActionRegistry.Unmarshal(s.ActionType, s.Action)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownAction, err)
	}
	auth, err := p.AuthRegistry.Unmarshal(s.AuthType, s.Auth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownAuth, err)
	}
	tx := &Transaction{
		Base:   s.Base,
		Action: action,
		Auth:   auth,
	}
	if err := tx.computeID(); err != nil {
		return nil, err
	}
	return tx, nil
}
