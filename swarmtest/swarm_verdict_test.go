package swarmtest_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
	"github.com/verdictswarm/verdictswarm-contract/rpc/verdict"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
)

func tokenVerdictArgs(scanHash [32]byte) verdictprogram.VerdictArgs {
	return verdictprogram.VerdictArgs{
		TokenAddress: "BONK",
		Chain:        "solana",
		Score:        850,
		Grade:        "A",
		AgentCount:   12,
		Tier:         "premium",
		ScanHash:     scanHash,
	}
}

func TestStoreVerdict(t *testing.T) {
	e := newVerdictExecutor(t)
	acc := e.NewSigner(t, 10_000_000_000)
	args := tokenVerdictArgs(sha256.Sum256([]byte("full scan")))

	instr, err := verdict.NewStoreVerdictInstruction(e.Program(), acc.Address(), args)
	require.NoError(t, err)
	e.Invoke(t, instr, acc)

	addr, bump, err := verdict.VerdictAddress(e.Program(), args.TokenAddress, args.Chain, args.ScanHash)
	require.NoError(t, err)

	slot, ok := e.Account(addr)
	require.True(t, ok)
	require.Equal(t, e.Program(), slot.Owner)
	require.EqualValues(t, e.Rent().MinimumBalance(uint64(len(slot.Data))),
		slot.Lamports)

	v, err := verdictprogram.DecodeVerdict(slot.Data)
	require.NoError(t, err)
	require.Equal(t, acc.Address(), v.Authority)
	require.Equal(t, args.TokenAddress, v.TokenAddress)
	require.Equal(t, args.Chain, v.Chain)
	require.Equal(t, args.Score, v.Score)
	require.Equal(t, args.Grade, v.Grade)
	require.Equal(t, args.AgentCount, v.AgentCount)
	require.Equal(t, args.Tier, v.Tier)
	require.Equal(t, args.ScanHash, v.ScanHash)
	require.Equal(t, bump, v.Bump)
	require.Equal(t, e.Now(), v.Timestamp)
}

func TestStoreVerdictDuplicate(t *testing.T) {
	e := newVerdictExecutor(t)
	acc := e.NewSigner(t, 10_000_000_000)
	args := tokenVerdictArgs(sha256.Sum256([]byte("dup")))

	instr, err := verdict.NewStoreVerdictInstruction(e.Program(), acc.Address(), args)
	require.NoError(t, err)
	e.Invoke(t, instr, acc)
	e.InvokeFail(t, ledger.ErrAccountExists, instr, acc)

	// A different scan of the same token lands in its own slot.
	args.ScanHash = sha256.Sum256([]byte("rescan"))
	instr, err = verdict.NewStoreVerdictInstruction(e.Program(), acc.Address(), args)
	require.NoError(t, err)
	e.Invoke(t, instr, acc)

	addr, _, err := verdict.VerdictAddress(e.Program(), args.TokenAddress, args.Chain, args.ScanHash)
	require.NoError(t, err)
	_, ok := e.Account(addr)
	require.True(t, ok)
}

func TestStoreVerdictCapEnforcedOnChain(t *testing.T) {
	e := newVerdictExecutor(t)
	acc := e.NewSigner(t, 10_000_000_000)

	// Bypass the client-side validation to prove the program checks caps
	// itself. The grade is not a derivation seed, so the address still
	// derives.
	args := tokenVerdictArgs(sha256.Sum256([]byte("cap")))
	args.Grade = "AAAAA"

	addr, _, err := verdict.VerdictAddress(e.Program(), args.TokenAddress, args.Chain, args.ScanHash)
	require.NoError(t, err)

	instr := ledger.Instruction{
		Program: e.Program(),
		Accounts: []ledger.AccountMeta{
			ledger.Meta(acc.Address(), true, true),
			ledger.Meta(addr, false, true),
			ledger.Meta(ledger.SystemProgram, false, false),
		},
		Data: verdictprogram.EncodeStoreVerdict(args),
	}

	e.InvokeFail(t, verdictprogram.ErrGradeTooLong, instr, acc)
	_, ok := e.Account(addr)
	require.False(t, ok)
}

func TestStoreVerdictAndRecordCoexist(t *testing.T) {
	e := newVerdictExecutor(t)
	acc := e.NewSigner(t, 10_000_000_000)
	scanHash := sha256.Sum256([]byte("both forms"))

	e.Invoke(t, recordInstruction(t, e, acc.Address(), scanHash), acc)

	instr, err := verdict.NewStoreVerdictInstruction(e.Program(), acc.Address(), tokenVerdictArgs(scanHash))
	require.NoError(t, err)
	e.Invoke(t, instr, acc)

	// Same scan hash, two derivation prefixes, two independent slots.
	record, _, err := verdict.RecordAddress(e.Program(), scanHash)
	require.NoError(t, err)
	tokenVerdict, _, err := verdict.VerdictAddress(e.Program(), "BONK", "solana", scanHash)
	require.NoError(t, err)
	require.NotEqual(t, record, tokenVerdict)

	recSlot, ok := e.Account(record)
	require.True(t, ok)
	_, err = verdictprogram.DecodeRecord(recSlot.Data)
	require.NoError(t, err)

	verSlot, ok := e.Account(tokenVerdict)
	require.True(t, ok)
	_, err = verdictprogram.DecodeVerdict(verSlot.Data)
	require.NoError(t, err)
}
