package verdictprogram

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verdictswarm/verdictswarm-contract/ledger"
)

func TestRecordMarshal(t *testing.T) {
	var r Record
	r.Bump = 255
	r.Payload = [7]byte{1, 2, 3, 4, 5, 6, 7}
	r.Kind = 0x09
	r.Authority = ledger.Address{0xaa, 0xbb}

	b := r.Marshal()
	require.Len(t, b, RecordLen)
	require.EqualValues(t, 255, b[0])
	require.Equal(t, make([]byte, 32), b[1:33])
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, b[33:40])
	require.EqualValues(t, 0x09, b[40])
	require.Equal(t, r.Authority[:], b[41:73])

	back, err := DecodeRecord(b)
	require.NoError(t, err)
	require.Equal(t, r, back)
}

func TestDecodeRecordLength(t *testing.T) {
	_, err := DecodeRecord(nil)
	require.Error(t, err)
	_, err = DecodeRecord(make([]byte, RecordLen-1))
	require.Error(t, err)
	_, err = DecodeRecord(make([]byte, RecordLen+1))
	require.Error(t, err)

	_, err = DecodeRecord(make([]byte, RecordLen))
	require.NoError(t, err)
}
