package ledger

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"
)

const (
	// MaxSeeds bounds the number of seed components in a single derivation.
	MaxSeeds = 16
	// MaxSeedLen bounds the byte length of a single seed component.
	MaxSeedLen = 32
)

// addressMarker domain-separates derived addresses from ed25519 public keys
// inside the digest. Must match the host chain byte for byte, otherwise
// client-side re-derivation disagrees with the runtime.
var addressMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress hashes the seed tuple together with the owning program
// identity into a candidate address. It fails with ErrAddressOnCurve when the
// digest decodes as an ed25519 point; such digests would be forgeable by
// whoever holds the corresponding private key and are never valid derived
// addresses. Callers searching for a usable address should prefer
// FindProgramAddress.
func CreateProgramAddress(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, ErrTooManySeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLen {
			return Address{}, ErrSeedTooLong
		}
	}

	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write(program[:])
	h.Write(addressMarker)

	var a Address
	copy(a[:], h.Sum(nil))
	if IsOnCurve(a[:]) {
		return Address{}, ErrAddressOnCurve
	}
	return a, nil
}

// FindProgramAddress derives the unique program-owned address for the seed
// tuple, along with the bump seed that produced it. The bump is searched
// downwards from 255; the first value whose digest is off-curve wins, which
// makes the result reproducible by anyone holding the same seeds and program
// identity. Fails with ErrAddressSpaceExhausted if no bump works.
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	trial := make([][]byte, len(seeds)+1)
	copy(trial, seeds)

	var bump [1]byte
	trial[len(seeds)] = bump[:]

	for i := 255; i >= 0; i-- {
		bump[0] = byte(i)
		a, err := CreateProgramAddress(trial, program)
		if err == nil {
			return a, byte(i), nil
		}
		if !errors.Is(err, ErrAddressOnCurve) {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, ErrAddressSpaceExhausted
}

// IsOnCurve reports whether b is a valid ed25519 point encoding. An address
// that is off-curve cannot correspond to any private key.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// DerivedAuthority is proof-of-derivation evidence: the full seed tuple,
// bump included, that produced a derived address. A program presents it in
// place of a private-key signature when acting for an address it derived, and
// the account-management collaborator verifies it by re-deriving the address.
type DerivedAuthority struct {
	Seeds [][]byte
}

// Authorizes reports whether the proof grants program signing authority over
// addr.
func (d DerivedAuthority) Authorizes(program, addr Address) bool {
	derived, err := CreateProgramAddress(d.Seeds, program)
	return err == nil && derived == addr
}
