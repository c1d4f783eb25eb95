package verdictprogram

import (
	"fmt"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

// Record layout constants. The stored form is fixed-size, offsets below are
// part of the public data format.
const (
	// RecordLen is the exact size of a stored record account.
	RecordLen = 73
	// RecordPayloadLen is the size of the caller-defined payload slot.
	RecordPayloadLen = 7

	recordRequestLen = 40
)

// Record is the fixed-form verdict: a small attestation bound to a scan hash.
//
// Stored encoding:
//
//	[0]      bump seed of the record address
//	[1:33]   scan hash
//	[33:40]  payload
//	[40]     kind
//	[41:73]  authority that registered the record
type Record struct {
	Bump      uint8
	ScanHash  [32]byte
	Payload   [RecordPayloadLen]byte
	Kind      byte
	Authority ledger.Address
}

// Marshal encodes the record into its stored form.
func (r Record) Marshal() []byte {
	b := make([]byte, RecordLen)
	b[0] = r.Bump
	copy(b[1:33], r.ScanHash[:])
	copy(b[33:40], r.Payload[:])
	b[40] = r.Kind
	copy(b[41:73], r.Authority[:])
	return b
}

// DecodeRecord parses the stored form of a record account.
func DecodeRecord(b []byte) (Record, error) {
	var r Record
	if len(b) != RecordLen {
		return r, fmt.Errorf("unexpected record length %d", len(b))
	}
	r.Bump = b[0]
	copy(r.ScanHash[:], b[1:33])
	copy(r.Payload[:], b[33:40])
	r.Kind = b[40]
	copy(r.Authority[:], b[41:73])
	return r, nil
}

// recordRequest is the fixed-form request: scan hash, payload and kind
// packed back to back. Trailing request bytes are ignored.
type recordRequest struct {
	scanHash [32]byte
	payload  [RecordPayloadLen]byte
	kind     byte
}

func parseRecordRequest(data []byte) (recordRequest, error) {
	var r recordRequest
	if len(data) < recordRequestLen {
		return r, ErrMalformedRequest
	}
	copy(r.scanHash[:], data[:32])
	copy(r.payload[:], data[32:39])
	r.kind = data[39]
	return r, nil
}

func (r recordRequest) process(rt Runtime, program ledger.Address, accounts []*ledger.Account) error {
	if len(accounts) < 3 {
		return ErrMalformedRequest
	}
	authority, record := accounts[0], accounts[1]

	if !authority.Signer {
		return ledger.ErrMissingSignature
	}

	expected, bump, err := ledger.FindProgramAddress(
		[][]byte{[]byte(RecordSeed), r.scanHash[:]}, program)
	if err != nil {
		return fmt.Errorf("derive record address: %w", err)
	}
	if expected != record.Key {
		return ErrAddressMismatch
	}

	err = rt.CreateAccount(CreateAccountPrm{
		Funder:   authority,
		Target:   record,
		Lamports: rt.Rent().MinimumBalance(RecordLen),
		Space:    RecordLen,
		Owner:    program,
	}, ledger.DerivedAuthority{
		Seeds: [][]byte{[]byte(RecordSeed), r.scanHash[:], {bump}},
	})
	if err != nil {
		return fmt.Errorf("create record account: %w", err)
	}

	if len(record.Data) != RecordLen {
		return fmt.Errorf("%w: %d bytes, want %d", ErrAccountSizeMismatch, len(record.Data), RecordLen)
	}
	copy(record.Data, Record{
		Bump:      bump,
		ScanHash:  r.scanHash,
		Payload:   r.payload,
		Kind:      r.kind,
		Authority: authority.Key,
	}.Marshal())

	rt.Log("verdict stored")
	return nil
}
