package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRentMinimumBalance(t *testing.T) {
	r := DefaultRent()

	// Zero-length data still pays for the account metadata.
	require.EqualValues(t, 890_880, r.MinimumBalance(0))
	require.EqualValues(t, 1_398_960, r.MinimumBalance(73))

	// Larger accounts scale linearly.
	require.EqualValues(t, r.MinimumBalance(0)+2*AccountStorageOverhead*DefaultLamportsPerByteYear,
		r.MinimumBalance(AccountStorageOverhead))

	custom := Rent{LamportsPerByteYear: 1, ExemptionThreshold: 1}
	require.EqualValues(t, AccountStorageOverhead+10, custom.MinimumBalance(10))
}
