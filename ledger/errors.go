package ledger

import "errors"

// Errors of the chain boundary. They are terminal: the runtime discards every
// state change of a request that surfaces one of them.
var (
	// ErrMissingSignature appears when an account that must authorize a
	// request (by signature or by derived authority) has not done so.
	ErrMissingSignature = errors.New("required signature is missing")

	// ErrAccountExists appears when account creation targets an address that
	// already holds an account. Registration races surface it to the losing
	// caller, which must treat it as "already registered".
	ErrAccountExists = errors.New("account already exists")

	// ErrInsufficientFunds appears when the funding account cannot cover the
	// balance a new account must hold.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAddressSpaceExhausted appears when no bump seed in [0, 255] produces
	// an off-curve address for a seed tuple. Practically unreachable, but it
	// is a defined outcome rather than a silent wrong answer.
	ErrAddressSpaceExhausted = errors.New("no viable bump seed for derivation")

	// ErrAddressOnCurve appears when a fully-specified seed tuple hashes to a
	// valid ed25519 point and therefore cannot be used as a derived address.
	ErrAddressOnCurve = errors.New("derived address is on the ed25519 curve")

	// ErrSeedTooLong appears when a single derivation seed exceeds MaxSeedLen.
	ErrSeedTooLong = errors.New("derivation seed too long")

	// ErrTooManySeeds appears when a derivation uses more than MaxSeeds seeds.
	ErrTooManySeeds = errors.New("too many derivation seeds")
)
