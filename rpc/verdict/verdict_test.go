package verdict

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
)

func TestProgram(t *testing.T) {
	require.Equal(t, ProgramID, Program().String())
	require.False(t, Program().IsZero())
}

func TestRecordAddress(t *testing.T) {
	addr, bump, err := RecordAddress(Program(), [32]byte{})
	require.NoError(t, err)
	require.Equal(t, "8Li54841yTA8kbdqDgiz4bo9MQQzzJYpPRVNgmCkV5Dq", addr.String())
	require.EqualValues(t, 255, bump)
}

func TestVerdictAddress(t *testing.T) {
	var scanHash [32]byte
	for i := range scanHash {
		scanHash[i] = byte(i)
	}

	addr, bump, err := VerdictAddress(Program(), "BONK", "solana", scanHash)
	require.NoError(t, err)
	require.Equal(t, "7z8E2i7uKqbtvgW4Z6vh1xuKXpmki176UU8P1idSYD1u", addr.String())
	require.EqualValues(t, 254, bump)

	// Token addresses longer than a derivation seed have no verdict
	// address.
	_, _, err = VerdictAddress(Program(), "So11111111111111111111111111111111111111112", "solana", scanHash)
	require.ErrorIs(t, err, ledger.ErrSeedTooLong)
}

func TestNewRecordInstruction(t *testing.T) {
	authority := ledger.Address{0xaa}
	var scanHash [32]byte
	scanHash[0] = 0x11

	instr, err := NewRecordInstruction(Program(), authority, scanHash,
		[7]byte{1, 2, 3, 4, 5, 6, 7}, 0x09)
	require.NoError(t, err)
	require.Equal(t, Program(), instr.Program)

	record, _, err := RecordAddress(Program(), scanHash)
	require.NoError(t, err)
	require.Equal(t, []ledger.AccountMeta{
		{Key: authority, Signer: true, Writable: true},
		{Key: record, Signer: false, Writable: true},
		{Key: ledger.SystemProgram, Signer: false, Writable: false},
	}, instr.Accounts)

	require.Len(t, instr.Data, 40)
	require.Equal(t, scanHash[:], instr.Data[:32])
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, instr.Data[32:39])
	require.EqualValues(t, 0x09, instr.Data[39])
}

func TestNewStoreVerdictInstruction(t *testing.T) {
	authority := ledger.Address{0xbb}
	args := verdictprogram.VerdictArgs{
		TokenAddress: "BONK",
		Chain:        "solana",
		Score:        850,
		Grade:        "A",
		AgentCount:   12,
		Tier:         "premium",
	}

	instr, err := NewStoreVerdictInstruction(Program(), authority, args)
	require.NoError(t, err)
	require.Equal(t, Program(), instr.Program)
	require.Equal(t, verdictprogram.EncodeStoreVerdict(args), instr.Data)

	verdict, _, err := VerdictAddress(Program(), args.TokenAddress, args.Chain, args.ScanHash)
	require.NoError(t, err)
	require.Equal(t, []ledger.AccountMeta{
		{Key: authority, Signer: true, Writable: true},
		{Key: verdict, Signer: false, Writable: true},
		{Key: ledger.SystemProgram, Signer: false, Writable: false},
	}, instr.Accounts)

	args.Score = verdictprogram.MaxScore + 1
	_, err = NewStoreVerdictInstruction(Program(), authority, args)
	require.ErrorIs(t, err, verdictprogram.ErrScoreOutOfRange)
}
