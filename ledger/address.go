package ledger

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLen is the length of a chain address in bytes.
const AddressLen = 32

// Address identifies an account on the host chain. Regular accounts are
// ed25519 public keys; program-owned record accounts are derived digests,
// see FindProgramAddress.
type Address [AddressLen]byte

// SystemProgram is the identity of the chain's native account-management
// service, the collaborator that creates and funds new accounts. It is the
// all-zero address by convention.
var SystemProgram = Address{}

// AddressFromBytes converts a raw 32-byte value into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("invalid address length %d", len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromString parses the base58 form of an address.
func AddressFromString(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("decode address: %w", err)
	}
	return AddressFromBytes(b)
}

// String returns the base58 form of the address.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// IsZero reports whether a is the all-zero (system program) address.
func (a Address) IsZero() bool {
	return a == Address{}
}
