// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

// Batcher is implemented by stores that can apply a set of writes
// atomically. [SimpleMutable] prefers it when committing.
type Batcher interface {
	NewBatch() Batch
}

type Batch interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Write(ctx context.Context) error
}
