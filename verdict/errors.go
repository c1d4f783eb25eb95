package verdictprogram

import "errors"

var (
	// ErrMalformedRequest is returned when request data or the account list
	// is too short to process.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrAddressMismatch is returned when the verdict account passed in a
	// request is not the address derived from the request contents.
	ErrAddressMismatch = errors.New("verdict address mismatch")

	// ErrAccountSizeMismatch is returned when a freshly created verdict
	// account does not have the size the program asked for. Unreachable while
	// the account manager honors the creation parameters.
	ErrAccountSizeMismatch = errors.New("verdict account size mismatch")

	// ErrTokenAddressTooLong is returned for token verdicts naming a token
	// over the storage cap.
	ErrTokenAddressTooLong = errors.New("token address exceeds 64 characters")

	// ErrChainTooLong is returned for token verdicts naming a chain over the
	// storage cap.
	ErrChainTooLong = errors.New("chain name exceeds 16 characters")

	// ErrScoreOutOfRange is returned for token verdicts with a score above
	// the scale.
	ErrScoreOutOfRange = errors.New("score must be 0-1000")

	// ErrGradeTooLong is returned for token verdicts with a grade over the
	// storage cap.
	ErrGradeTooLong = errors.New("grade exceeds 4 characters")

	// ErrTierTooLong is returned for token verdicts with a tier over the
	// storage cap.
	ErrTierTooLong = errors.New("tier exceeds 16 characters")
)
