// Package verdict provides client-side bindings of the verdict registry
// program: address derivation and request builders matching what the program
// expects on-chain.
package verdict

import (
	"fmt"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
	verdictprogram "github.com/verdictswarm/verdictswarm-contract/verdict"
)

// ProgramID is the verdict registry deployment shared by all networks.
const ProgramID = "3i6GVUgshmbymqrsvxWQMX98yKzqLxNRUHEhtwRBZ35p"

var defaultProgram = func() ledger.Address {
	a, err := ledger.AddressFromString(ProgramID)
	if err != nil {
		panic(err)
	}
	return a
}()

// Program returns ProgramID parsed into a ledger address.
func Program() ledger.Address {
	return defaultProgram
}

// RecordAddress derives the account address holding the fixed-form record of
// a scan hash, together with its bump seed.
func RecordAddress(program ledger.Address, scanHash [32]byte) (ledger.Address, uint8, error) {
	return ledger.FindProgramAddress(
		[][]byte{[]byte(verdictprogram.RecordSeed), scanHash[:]}, program)
}

// VerdictAddress derives the account address holding the token verdict of a
// scan, together with its bump seed. Token and chain double as derivation
// seeds, so they are bound by the seed length limit on top of the storage
// caps.
func VerdictAddress(program ledger.Address, tokenAddress, chain string, scanHash [32]byte) (ledger.Address, uint8, error) {
	return ledger.FindProgramAddress([][]byte{
		[]byte(verdictprogram.VerdictSeed),
		[]byte(tokenAddress),
		[]byte(chain),
		scanHash[:],
	}, program)
}

// NewRecordInstruction builds a fixed-form registration request: authority
// signs and funds, the derived record account receives the write.
func NewRecordInstruction(program, authority ledger.Address, scanHash [32]byte, payload [verdictprogram.RecordPayloadLen]byte, kind byte) (ledger.Instruction, error) {
	record, _, err := RecordAddress(program, scanHash)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("derive record address: %w", err)
	}

	data := make([]byte, 0, 40)
	data = append(data, scanHash[:]...)
	data = append(data, payload[:]...)
	data = append(data, kind)

	return ledger.Instruction{
		Program: program,
		Accounts: []ledger.AccountMeta{
			ledger.Meta(authority, true, true),
			ledger.Meta(record, false, true),
			ledger.Meta(ledger.SystemProgram, false, false),
		},
		Data: data,
	}, nil
}

// NewStoreVerdictInstruction builds a token-verdict request. Args are
// validated against the storage caps first, so oversized fields fail here
// rather than on-chain.
func NewStoreVerdictInstruction(program, authority ledger.Address, args verdictprogram.VerdictArgs) (ledger.Instruction, error) {
	if err := args.Validate(); err != nil {
		return ledger.Instruction{}, err
	}

	verdict, _, err := VerdictAddress(program, args.TokenAddress, args.Chain, args.ScanHash)
	if err != nil {
		return ledger.Instruction{}, fmt.Errorf("derive verdict address: %w", err)
	}

	return ledger.Instruction{
		Program: program,
		Accounts: []ledger.AccountMeta{
			ledger.Meta(authority, true, true),
			ledger.Meta(verdict, false, true),
			ledger.Meta(ledger.SystemProgram, false, false),
		},
		Data: verdictprogram.EncodeStoreVerdict(args),
	}, nil
}
