// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers writes on top of [v]. Nothing reaches [v] until
// Commit is called; dropping a SimpleMutable discards every change.
type SimpleMutable struct {
	v Mutable

	changes map[string]*changeOp
	order   []string
}

func NewSimpleMutable(v Mutable) *SimpleMutable {
	return &SimpleMutable{v: v, changes: make(map[string]*changeOp)}
}

func (s *SimpleMutable) GetValue(ctx context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return v.value, nil
	}
	return s.v.GetValue(ctx, k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.record(k, &changeOp{value: v})
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.record(k, &changeOp{delete: true})
	return nil
}

func (s *SimpleMutable) record(k []byte, op *changeOp) {
	key := string(k)
	if _, ok := s.changes[key]; !ok {
		s.order = append(s.order, key)
	}
	s.changes[key] = op
}

// Len returns the number of keys modified.
func (s *SimpleMutable) Len() int {
	return len(s.order)
}

// Commit writes all buffered changes to the underlying state in the order
// the keys were first touched and resets the buffer.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	if b, ok := s.v.(Batcher); ok {
		return s.commitBatch(ctx, b)
	}
	for _, key := range s.order {
		op := s.changes[key]
		var err error
		if op.delete {
			err = s.v.Remove(ctx, []byte(key))
		} else {
			err = s.v.Insert(ctx, []byte(key), op.value)
		}
		if err != nil {
			return err
		}
	}
	s.reset()
	return nil
}

func (s *SimpleMutable) commitBatch(ctx context.Context, b Batcher) error {
	batch := b.NewBatch()
	for _, key := range s.order {
		op := s.changes[key]
		if op.delete {
			batch.Delete([]byte(key))
		} else {
			batch.Put([]byte(key), op.value)
		}
	}
	if err := batch.Write(ctx); err != nil {
		return err
	}
	s.reset()
	return nil
}

func (s *SimpleMutable) reset() {
	s.changes = make(map[string]*changeOp)
	s.order = nil
}
