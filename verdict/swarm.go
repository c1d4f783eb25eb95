package verdictprogram

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

// Storage caps of the token-verdict form.
const (
	MaxTokenAddressLen = 64
	MaxChainLen        = 16
	MaxGradeLen        = 4
	MaxTierLen         = 16
	MaxScore           = 1000
)

// Request and stored-object tags: the first 8 bytes of the hash of a
// namespaced name. Requests and accounts of the token-verdict form carry
// them so readers can tell the two verdict forms apart.
var (
	storeVerdictTag   = discriminator("global", "store_verdict")
	verdictAccountTag = discriminator("account", "Verdict")
)

func discriminator(namespace, name string) (tag [8]byte) {
	h := sha256.Sum256([]byte(namespace + ":" + name))
	copy(tag[:], h[:8])
	return
}

// VerdictArgs are the caller-supplied fields of a token verdict.
type VerdictArgs struct {
	TokenAddress string
	Chain        string
	Score        uint16
	Grade        string
	AgentCount   uint8
	Tier         string
	ScanHash     [32]byte
}

// Validate checks the storage caps. The same checks gate request processing,
// so a client calling it first never pays for a doomed request.
func (a VerdictArgs) Validate() error {
	switch {
	case len(a.TokenAddress) > MaxTokenAddressLen:
		return ErrTokenAddressTooLong
	case len(a.Chain) > MaxChainLen:
		return ErrChainTooLong
	case a.Score > MaxScore:
		return ErrScoreOutOfRange
	case len(a.Grade) > MaxGradeLen:
		return ErrGradeTooLong
	case len(a.Tier) > MaxTierLen:
		return ErrTierTooLong
	}
	return nil
}

// Verdict is the stored form of a token verdict.
type Verdict struct {
	Authority    ledger.Address
	TokenAddress string
	Chain        string
	Score        uint16
	Grade        string
	AgentCount   uint8
	Tier         string
	Timestamp    int64
	ScanHash     [32]byte
	Bump         uint8
}

// Marshal encodes the verdict into its stored form: the account tag, then
// every field in declaration order. Strings carry a little-endian length
// prefix.
func (v Verdict) Marshal() []byte {
	b := make([]byte, 0, 8+32+4+len(v.TokenAddress)+4+len(v.Chain)+2+
		4+len(v.Grade)+1+4+len(v.Tier)+8+32+1)
	b = append(b, verdictAccountTag[:]...)
	b = append(b, v.Authority[:]...)
	b = appendString(b, v.TokenAddress)
	b = appendString(b, v.Chain)
	b = binary.LittleEndian.AppendUint16(b, v.Score)
	b = appendString(b, v.Grade)
	b = append(b, v.AgentCount)
	b = appendString(b, v.Tier)
	b = binary.LittleEndian.AppendUint64(b, uint64(v.Timestamp))
	b = append(b, v.ScanHash[:]...)
	b = append(b, v.Bump)
	return b
}

// DecodeVerdict parses the stored form of a token-verdict account.
func DecodeVerdict(b []byte) (Verdict, error) {
	var v Verdict
	if len(b) < 8 || !bytes.Equal(b[:8], verdictAccountTag[:]) {
		return v, fmt.Errorf("not a verdict account")
	}
	b = b[8:]

	if len(b) < 32 {
		return v, fmt.Errorf("truncated verdict account")
	}
	copy(v.Authority[:], b[:32])
	b = b[32:]

	var err error
	if v.TokenAddress, b, err = readString(b); err != nil {
		return v, fmt.Errorf("token address: %w", err)
	}
	if v.Chain, b, err = readString(b); err != nil {
		return v, fmt.Errorf("chain: %w", err)
	}
	if len(b) < 2 {
		return v, fmt.Errorf("truncated verdict account")
	}
	v.Score = binary.LittleEndian.Uint16(b)
	b = b[2:]
	if v.Grade, b, err = readString(b); err != nil {
		return v, fmt.Errorf("grade: %w", err)
	}
	if len(b) < 1 {
		return v, fmt.Errorf("truncated verdict account")
	}
	v.AgentCount = b[0]
	b = b[1:]
	if v.Tier, b, err = readString(b); err != nil {
		return v, fmt.Errorf("tier: %w", err)
	}
	if len(b) != 8+32+1 {
		return v, fmt.Errorf("unexpected verdict tail length %d", len(b))
	}
	v.Timestamp = int64(binary.LittleEndian.Uint64(b))
	copy(v.ScanHash[:], b[8:40])
	v.Bump = b[40]
	return v, nil
}

// EncodeStoreVerdict packs args into token-verdict request data. The layout
// is the request tag followed by the fields in declaration order.
func EncodeStoreVerdict(a VerdictArgs) []byte {
	b := append([]byte{}, storeVerdictTag[:]...)
	b = appendString(b, a.TokenAddress)
	b = appendString(b, a.Chain)
	b = binary.LittleEndian.AppendUint16(b, a.Score)
	b = appendString(b, a.Grade)
	b = append(b, a.AgentCount)
	b = appendString(b, a.Tier)
	b = append(b, a.ScanHash[:]...)
	return b
}

type storeVerdictRequest struct {
	args VerdictArgs
}

func parseStoreVerdictRequest(data []byte) (storeVerdictRequest, error) {
	var (
		r   storeVerdictRequest
		err error
	)
	b := data[8:]
	if r.args.TokenAddress, b, err = readString(b); err != nil {
		return r, ErrMalformedRequest
	}
	if r.args.Chain, b, err = readString(b); err != nil {
		return r, ErrMalformedRequest
	}
	if len(b) < 2 {
		return r, ErrMalformedRequest
	}
	r.args.Score = binary.LittleEndian.Uint16(b)
	b = b[2:]
	if r.args.Grade, b, err = readString(b); err != nil {
		return r, ErrMalformedRequest
	}
	if len(b) < 1 {
		return r, ErrMalformedRequest
	}
	r.args.AgentCount = b[0]
	b = b[1:]
	if r.args.Tier, b, err = readString(b); err != nil {
		return r, ErrMalformedRequest
	}
	if len(b) != 32 {
		return r, ErrMalformedRequest
	}
	copy(r.args.ScanHash[:], b)
	return r, nil
}

func (r storeVerdictRequest) process(rt Runtime, program ledger.Address, accounts []*ledger.Account) error {
	if len(accounts) < 3 {
		return ErrMalformedRequest
	}
	authority, verdict := accounts[0], accounts[1]

	if !authority.Signer {
		return ledger.ErrMissingSignature
	}
	if err := r.args.Validate(); err != nil {
		return err
	}

	seeds := [][]byte{
		[]byte(VerdictSeed),
		[]byte(r.args.TokenAddress),
		[]byte(r.args.Chain),
		r.args.ScanHash[:],
	}
	expected, bump, err := ledger.FindProgramAddress(seeds, program)
	if err != nil {
		return fmt.Errorf("derive verdict address: %w", err)
	}
	if expected != verdict.Key {
		return ErrAddressMismatch
	}

	blob := Verdict{
		Authority:    authority.Key,
		TokenAddress: r.args.TokenAddress,
		Chain:        r.args.Chain,
		Score:        r.args.Score,
		Grade:        r.args.Grade,
		AgentCount:   r.args.AgentCount,
		Tier:         r.args.Tier,
		Timestamp:    rt.Now(),
		ScanHash:     r.args.ScanHash,
		Bump:         bump,
	}.Marshal()

	err = rt.CreateAccount(CreateAccountPrm{
		Funder:   authority,
		Target:   verdict,
		Lamports: rt.Rent().MinimumBalance(uint64(len(blob))),
		Space:    uint64(len(blob)),
		Owner:    program,
	}, ledger.DerivedAuthority{
		Seeds: append(seeds, []byte{bump}),
	})
	if err != nil {
		return fmt.Errorf("create verdict account: %w", err)
	}

	if len(verdict.Data) != len(blob) {
		return fmt.Errorf("%w: %d bytes, want %d", ErrAccountSizeMismatch, len(verdict.Data), len(blob))
	}
	copy(verdict.Data, blob)

	rt.Log(fmt.Sprintf("VerdictSwarm: stored verdict for %s on %s, score %d/%d, grade %s",
		r.args.TokenAddress, r.args.Chain, r.args.Score, MaxScore, r.args.Grade))
	return nil
}

func appendString(b []byte, s string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}

func readString(b []byte) (string, []byte, error) {
	if len(b) < 4 {
		return "", nil, fmt.Errorf("truncated string length")
	}
	n := binary.LittleEndian.Uint32(b)
	b = b[4:]
	if uint64(len(b)) < uint64(n) {
		return "", nil, fmt.Errorf("string length %d exceeds remaining %d bytes", n, len(b))
	}
	return string(b[:n]), b[n:], nil
}
