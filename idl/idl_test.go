package idl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	d, err := Get()
	require.NoError(t, err)
	require.Equal(t, "verdictswarm_onchain", d.Name)
	require.Equal(t, "0.1.0", d.Version)

	p, err := d.Program()
	require.NoError(t, err)
	require.Equal(t, "3i6GVUgshmbymqrsvxWQMX98yKzqLxNRUHEhtwRBZ35p", p.String())
}

func TestStoreVerdictInstruction(t *testing.T) {
	d, err := Get()
	require.NoError(t, err)

	ins, ok := d.Instruction("storeVerdict")
	require.True(t, ok)

	require.Equal(t, []AccountMeta{
		{Name: "authority", IsMut: true, IsSigner: true},
		{Name: "verdict", IsMut: true, IsSigner: false},
		{Name: "systemProgram", IsMut: false, IsSigner: false},
	}, ins.Accounts)

	argNames := make([]string, len(ins.Args))
	for i := range ins.Args {
		argNames[i] = ins.Args[i].Name
	}
	require.Equal(t, []string{
		"tokenAddress", "chain", "score", "grade", "agentCount", "tier", "scanHash",
	}, argNames)

	_, ok = d.Instruction("closeVerdict")
	require.False(t, ok)
}

func TestVerdictAccount(t *testing.T) {
	d, err := Get()
	require.NoError(t, err)

	require.Len(t, d.Accounts, 1)
	acc := d.Accounts[0]
	require.Equal(t, "Verdict", acc.Name)
	require.Equal(t, "struct", acc.Type.Kind)

	fieldNames := make([]string, len(acc.Type.Fields))
	for i := range acc.Type.Fields {
		fieldNames[i] = acc.Type.Fields[i].Name
	}
	require.Equal(t, []string{
		"authority", "tokenAddress", "chain", "score", "grade",
		"agentCount", "tier", "timestamp", "scanHash", "bump",
	}, fieldNames)
}

func TestErrors(t *testing.T) {
	d, err := Get()
	require.NoError(t, err)

	require.Equal(t, []Error{
		{Code: 6000, Name: "TokenAddressTooLong", Msg: "Token address exceeds 64 characters"},
		{Code: 6001, Name: "ChainTooLong", Msg: "Chain name exceeds 16 characters"},
		{Code: 6002, Name: "ScoreOutOfRange", Msg: "Score must be 0-1000"},
		{Code: 6003, Name: "GradeTooLong", Msg: "Grade exceeds 4 characters"},
		{Code: 6004, Name: "TierTooLong", Msg: "Tier exceeds 16 characters"},
	}, d.Errors)
}

func TestParseInvalid(t *testing.T) {
	_, err := parse([]byte("not a document"))
	require.ErrorIs(t, err, errInvalidDocument)

	_, err = parse([]byte(`{}`))
	require.ErrorIs(t, err, errInvalidDocument)

	_, err = parse([]byte(`{"name":"x","instructions":[{"name":"y"}],"metadata":{"address":"bad!"}}`))
	require.ErrorIs(t, err, errInvalidDocument)
}
