package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressFromBytes(t *testing.T) {
	_, err := AddressFromBytes(nil)
	require.Error(t, err)
	_, err = AddressFromBytes(make([]byte, 31))
	require.Error(t, err)
	_, err = AddressFromBytes(make([]byte, 33))
	require.Error(t, err)

	b := make([]byte, AddressLen)
	b[0] = 0x28
	b[31] = 0xff
	a, err := AddressFromBytes(b)
	require.NoError(t, err)
	require.EqualValues(t, b, a[:])

	b[0] = 0x00
	require.EqualValues(t, byte(0x28), a[0], "address must copy, not alias")
}

func TestAddressString(t *testing.T) {
	require.Equal(t, "11111111111111111111111111111111", SystemProgram.String())

	const s = "3i6GVUgshmbymqrsvxWQMX98yKzqLxNRUHEhtwRBZ35p"
	a, err := AddressFromString(s)
	require.NoError(t, err)
	require.Equal(t, s, a.String())
	require.False(t, a.IsZero())

	back, err := AddressFromString(a.String())
	require.NoError(t, err)
	require.Equal(t, a, back)
}

func TestAddressFromStringInvalid(t *testing.T) {
	_, err := AddressFromString("")
	require.Error(t, err)
	_, err = AddressFromString("0OIl")
	require.Error(t, err)
	_, err = AddressFromString("abc")
	require.Error(t, err)
}

func TestAddressIsZero(t *testing.T) {
	require.True(t, SystemProgram.IsZero())
	require.True(t, Address{}.IsZero())
	require.False(t, Address{1}.IsZero())
}
