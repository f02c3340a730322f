// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pda derives program addresses: accounts whose address is a pure
// function of a program id and a list of seeds, and for which no private key
// can exist. Control over such an account is proven by presenting the seeds
// and bump that re-derive it.
package pda
