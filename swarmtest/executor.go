package swarmtest

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
	"go.uber.org/zap"
)

// Program executes one request against the runtime. verdictprogram.Process
// satisfies it.
type Program func(rt verdictprogram.Runtime, program ledger.Address, accounts []*ledger.Account, data []byte) error

// Executor submits requests to a single program deployed on an in-memory
// ledger.
type Executor struct {
	*Ledger

	program ledger.Address
	proc    Program
}

// NewExecutor creates a fresh ledger with the program deployed at the given
// address.
func NewExecutor(tb testing.TB, program ledger.Address, proc Program) *Executor {
	return &Executor{
		Ledger:  NewLedger(tb),
		program: program,
		proc:    proc,
	}
}

// Program returns the deployed program address.
func (e *Executor) Program() ledger.Address { return e.program }

// Submit executes one request. Signatures of the given signers are attached
// and verified against the metas that claim them. On error the ledger state
// is unchanged; on success all account mutations commit and the clock
// advances.
func (e *Executor) Submit(instr ledger.Instruction, signers ...*Signer) error {
	if instr.Program != e.program {
		return fmt.Errorf("program %s is not deployed", instr.Program)
	}

	e.now++

	digest := requestDigest(instr)
	sigs := make(map[ledger.Address][]byte, len(signers))
	for _, s := range signers {
		sigs[s.Address()] = s.sign(digest)
	}

	signed := make(map[ledger.Address]bool, len(sigs))
	for _, m := range instr.Accounts {
		if !m.Signer {
			continue
		}
		sig, ok := sigs[m.Key]
		if !ok || !ed25519.Verify(ed25519.PublicKey(m.Key[:]), digest, sig) {
			e.log.Warn("request rejected",
				zap.Stringer("account", m.Key), zap.Error(ledger.ErrMissingSignature))
			return fmt.Errorf("account %s: %w", m.Key, ledger.ErrMissingSignature)
		}
		signed[m.Key] = true
	}

	accounts := e.stage(instr.Accounts, signed)
	rt := &runtimeEnv{ledger: e.Ledger, program: e.program, accounts: accounts}

	if err := e.proc(rt, e.program, accounts, instr.Data); err != nil {
		e.log.Warn("request failed", zap.Stringer("program", e.program), zap.Error(err))
		return err
	}

	e.commit(accounts)
	e.log.Info("request executed",
		zap.Stringer("program", e.program), zap.Int("accounts", len(accounts)))
	return nil
}

// Invoke submits a request and requires success.
func (e *Executor) Invoke(t testing.TB, instr ledger.Instruction, signers ...*Signer) {
	require.NoError(t, e.Submit(instr, signers...))
}

// InvokeFail submits a request and requires it to fail with the expected
// error.
func (e *Executor) InvokeFail(t testing.TB, expected error, instr ledger.Instruction, signers ...*Signer) {
	require.ErrorIs(t, e.Submit(instr, signers...), expected)
}

// requestDigest is the message signers sign: the target program, every meta
// with its flags, and the request data.
func requestDigest(instr ledger.Instruction) []byte {
	h := sha256.New()
	h.Write(instr.Program[:])

	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(instr.Accounts)))
	h.Write(n[:])
	for _, m := range instr.Accounts {
		h.Write(m.Key[:])
		var flags byte
		if m.Signer {
			flags |= 1
		}
		if m.Writable {
			flags |= 2
		}
		h.Write([]byte{flags})
	}

	binary.LittleEndian.PutUint32(n[:], uint32(len(instr.Data)))
	h.Write(n[:])
	h.Write(instr.Data)
	return h.Sum(nil)
}
