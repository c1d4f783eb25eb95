package ledger

const (
	// AccountStorageOverhead is the per-account metadata charge, in bytes,
	// added to the data length when computing storage cost.
	AccountStorageOverhead = 128
	// DefaultLamportsPerByteYear is the storage price used by the default
	// rent schedule.
	DefaultLamportsPerByteYear = 3480
	// DefaultExemptionThreshold is the number of prepaid years that makes an
	// account rent-exempt.
	DefaultExemptionThreshold = 2
	// MaxAccountDataLen caps the payload size of a single account.
	MaxAccountDataLen = 10 * 1024 * 1024
)

// Rent is the storage pricing schedule. Accounts funded to at least
// MinimumBalance for their size are exempt from collection and live forever.
type Rent struct {
	// LamportsPerByteYear is the price of storing one byte for one year.
	LamportsPerByteYear uint64
	// ExemptionThreshold is the prepaid period, in years, required for
	// exemption.
	ExemptionThreshold uint64
}

// DefaultRent returns the schedule used by the public networks.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
	}
}

// MinimumBalance returns the smallest balance that makes an account with
// dataLen bytes of payload rent-exempt.
func (r Rent) MinimumBalance(dataLen uint64) uint64 {
	return (AccountStorageOverhead + dataLen) * r.LamportsPerByteYear * r.ExemptionThreshold
}
