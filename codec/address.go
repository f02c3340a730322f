// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const AddressLen = 33

// Address represents the 33 byte address of a vaultvm account. The first
// byte identifies how the account is controlled (a key type or a program
// derivation), the remaining 32 bytes are its id.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	var a Address
	a[0] = typeID
	copy(a[1:], id[:])
	return a
}

// CreateKeyAddress returns the address of the account controlled by
// [publicKey] under key type [typeID].
func CreateKeyAddress(typeID uint8, publicKey []byte) Address {
	return CreateAddress(typeID, hashing.ComputeHash256Array(publicKey))
}

// TypeID returns the leading type byte of a.
func (a Address) TypeID() uint8 {
	return a[0]
}

// ID returns the 32 byte id of a.
func (a Address) ID() ids.ID {
	return ids.ID(a[1:])
}

// StringToAddress parses a hex address, with or without the 0x prefix.
func StringToAddress(s string) (Address, error) {
	b, err := LoadHex(s, AddressLen)
	if err != nil {
		return EmptyAddress, err
	}
	return Address(b), nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + ToHex(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	addr, err := StringToAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// AddressBech32 returns a Bech32 address string from [hrp] and [p].
func AddressBech32(hrp string, p Address) (string, error) {
	data, err := bech32.ConvertBits(p[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, data)
}

func MustAddressBech32(hrp string, p Address) string {
	addr, err := AddressBech32(hrp, p)
	if err != nil {
		panic(err)
	}
	return addr
}

// ParseAddressBech32 is the inverse of AddressBech32. The 5 bit groups are
// converted back without padding, so the zero bits added when encoding are
// dropped rather than surfacing as an extra byte.
func ParseAddressBech32(hrp, saddr string) (Address, error) {
	phrp, data, err := bech32.Decode(saddr)
	if err != nil {
		return EmptyAddress, err
	}
	if phrp != hrp {
		return EmptyAddress, ErrIncorrectHRP
	}
	p, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return EmptyAddress, err
	}
	if len(p) != AddressLen {
		return EmptyAddress, ErrInvalidSize
	}
	return Address(p), nil
}
