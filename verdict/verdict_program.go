package verdictprogram

import (
	"bytes"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

// Derivation seed prefixes. Every account the program owns lives at an
// address derived from one of them.
const (
	// RecordSeed prefixes fixed-form record addresses, derived together
	// with the scan hash.
	RecordSeed = "v"
	// VerdictSeed prefixes token-verdict addresses, derived together with
	// the token address, chain name and scan hash.
	VerdictSeed = "verdict"
)

// Runtime is the execution environment a request runs in. It is implemented
// by the ledger hosting the program; swarmtest provides one for tests.
type Runtime interface {
	// Rent returns the storage pricing schedule in effect.
	Rent() ledger.Rent
	// Now returns the ledger clock as a Unix timestamp.
	Now() int64
	// CreateAccount asks the account manager to allocate the target slot,
	// fund it from the funder and hand ownership to prm.Owner. The program
	// proves its authority over the derived target with auth.
	CreateAccount(prm CreateAccountPrm, auth ledger.DerivedAuthority) error
	// Log emits a program diagnostic line.
	Log(msg string)
}

// CreateAccountPrm groups parameters of Runtime.CreateAccount.
type CreateAccountPrm struct {
	// Funder pays for the new slot. Must have signed the request.
	Funder *ledger.Account
	// Target is the slot to allocate.
	Target *ledger.Account
	// Lamports is the opening balance transferred from the funder.
	Lamports uint64
	// Space is the data size to allocate.
	Space uint64
	// Owner is the program given write authority over the slot.
	Owner ledger.Address
}

// Process executes one request. The account list order is fixed: authority,
// verdict slot, account manager. The authority both authorizes and funds the
// write. Any error leaves no observable state change behind, the hosting
// ledger rolls the request back.
func Process(rt Runtime, program ledger.Address, accounts []*ledger.Account, data []byte) error {
	req, err := parseRequest(data)
	if err != nil {
		return err
	}
	return req.process(rt, program, accounts)
}

// request is one decoded program request. Exactly two forms exist, told
// apart by the leading tag: storeVerdictRequest carries it, recordRequest
// is everything else.
type request interface {
	process(rt Runtime, program ledger.Address, accounts []*ledger.Account) error
}

func parseRequest(data []byte) (request, error) {
	if len(data) >= 8 && bytes.Equal(data[:8], storeVerdictTag[:]) {
		return parseStoreVerdictRequest(data)
	}
	return parseRecordRequest(data)
}
