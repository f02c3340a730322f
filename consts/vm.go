// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
	"github.com/mr-tron/base58"
)

const (
	HRP      = "vault"
	Name     = "vaultvm"
	Symbol   = "VLT"
	Decimals = 9

	// programIDStr is the declared identity of the vault program. It is fixed
	// at deployment.
	programIDStr = "22222222222222222222222222222222222222222222"
)

// VaultSeed is the domain tag mixed into every vault address.
var VaultSeed = []byte("vault")

var (
	ID ids.ID

	programID ids.ID
)

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID

	raw, err := base58.Decode(programIDStr)
	if err != nil {
		panic(err)
	}
	programID, err = ids.ToID(raw)
	if err != nil {
		panic(err)
	}
}

// ProgramID returns the identity of the vault program. It is fixed for the
// lifetime of the process.
func ProgramID() ids.ID {
	return programID
}
