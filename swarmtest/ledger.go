package swarmtest

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// genesisTime is the clock value of a fresh ledger. It advances by one
// second per submitted request.
const genesisTime = 1_700_000_000

// Ledger is an in-memory account store with the hosting chain's execution
// rules. All mutations go through request submission, except Fund which
// plays the faucet.
type Ledger struct {
	log      *zap.Logger
	rent     ledger.Rent
	now      int64
	accounts map[ledger.Address]*accountState
}

type accountState struct {
	lamports uint64
	owner    ledger.Address
	data     []byte
}

// NewLedger returns an empty ledger with the default storage pricing and the
// clock at genesis.
func NewLedger(tb testing.TB) *Ledger {
	return &Ledger{
		log:      zaptest.NewLogger(tb),
		rent:     ledger.DefaultRent(),
		now:      genesisTime,
		accounts: make(map[ledger.Address]*accountState),
	}
}

// Rent returns the storage pricing schedule of the ledger.
func (l *Ledger) Rent() ledger.Rent { return l.rent }

// Now returns the current clock value as a Unix timestamp.
func (l *Ledger) Now() int64 { return l.now }

// Fund deposits lamports to addr out of thin air.
func (l *Ledger) Fund(addr ledger.Address, lamports uint64) {
	st := l.accounts[addr]
	if st == nil {
		st = new(accountState)
		l.accounts[addr] = st
	}
	st.lamports += lamports
	l.log.Debug("faucet deposit",
		zap.Stringer("account", addr), zap.Uint64("lamports", lamports))
}

// Account returns a copy of the account stored at addr and whether it
// exists. Mutating the copy does not touch ledger state.
func (l *Ledger) Account(addr ledger.Address) (ledger.Account, bool) {
	st, ok := l.accounts[addr]
	if !ok {
		return ledger.Account{}, false
	}
	return ledger.Account{
		Key:      addr,
		Lamports: st.lamports,
		Owner:    st.owner,
		Data:     append([]byte{}, st.data...),
	}, true
}

// Balance returns the lamport balance of addr, zero for missing accounts.
func (l *Ledger) Balance(addr ledger.Address) uint64 {
	st, ok := l.accounts[addr]
	if !ok {
		return 0
	}
	return st.lamports
}

// Signer is a funded keypair able to sign requests.
type Signer struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

// NewSigner generates a keypair and funds its address.
func (l *Ledger) NewSigner(tb testing.TB, lamports uint64) *Signer {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(tb, err)

	s := &Signer{pub: pub, priv: priv}
	if lamports > 0 {
		l.Fund(s.Address(), lamports)
	}
	return s
}

// Address returns the ledger address of the signer, its public key.
func (s *Signer) Address() ledger.Address {
	var a ledger.Address
	copy(a[:], s.pub)
	return a
}

func (s *Signer) sign(digest []byte) []byte {
	return ed25519.Sign(s.priv, digest)
}

// stage builds request-scoped account views. Metas repeating an address
// share one view with merged flags.
func (l *Ledger) stage(metas []ledger.AccountMeta, signed map[ledger.Address]bool) []*ledger.Account {
	views := make([]*ledger.Account, 0, len(metas))
	byAddr := make(map[ledger.Address]*ledger.Account, len(metas))

	for _, m := range metas {
		if acc, ok := byAddr[m.Key]; ok {
			acc.Signer = acc.Signer || signed[m.Key]
			acc.Writable = acc.Writable || m.Writable
			views = append(views, acc)
			continue
		}
		acc := &ledger.Account{
			Key:      m.Key,
			Signer:   signed[m.Key],
			Writable: m.Writable,
		}
		if st, ok := l.accounts[m.Key]; ok {
			acc.Lamports = st.lamports
			acc.Owner = st.owner
			acc.Data = append([]byte{}, st.data...)
		}
		byAddr[m.Key] = acc
		views = append(views, acc)
	}
	return views
}

// commit writes mutable views back. Views left without balance, data and
// owner do not materialize as accounts.
func (l *Ledger) commit(views []*ledger.Account) {
	for _, acc := range views {
		if !acc.Writable {
			continue
		}
		if acc.Lamports == 0 && len(acc.Data) == 0 && acc.Owner.IsZero() {
			delete(l.accounts, acc.Key)
			continue
		}
		l.accounts[acc.Key] = &accountState{
			lamports: acc.Lamports,
			owner:    acc.Owner,
			data:     append([]byte{}, acc.Data...),
		}
	}
}
