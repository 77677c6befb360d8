package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/tamer/internal/span"
)

func TestGetBit(t *testing.T) {
	m := []byte{0b0000_0101, 0b1000_0000}

	want := map[int]bool{0: true, 1: false, 2: true, 7: false, 8: false, 15: true}
	for i, exp := range want {
		got, err := GetBit(m, i)
		require.NoError(t, err)
		assert.Equal(t, exp, got, "bit %d", i)
	}

	_, err := GetBit(m, 16)
	require.ErrorIs(t, err, span.ErrBufferUnderrun)
	_, err = GetBit(m, -1)
	require.ErrorIs(t, err, span.ErrBufferUnderrun)
	_, err = GetBit(nil, 0)
	require.ErrorIs(t, err, span.ErrBufferUnderrun)
}

func TestReadMessage(t *testing.T) {
	m := mask(2, 0, 1)
	payload := (&payloadBuilder{}).u32(7).f64(3.5).bytes()

	v, err := ReadMessage(body(m, payload), 42, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.SchemaHash)
	assert.Equal(t, uint64(1000), v.Timestamp)
	assert.Equal(t, m, v.ActiveMask)
	assert.Equal(t, payload, v.Payload)
}

func TestReadMessage_ThenDecode(t *testing.T) {
	s := mustSchema(t, "__version__: 3\n__channel_name__: chan\nuint32 a\nfloat64 b\n")
	b := body(mask(2, 0, 1), (&payloadBuilder{}).u32(7).f64(3.5).bytes())

	v, err := ReadMessage(b, s.Hash, 0)
	require.NoError(t, err)

	var rec recorder
	ok, err := Decode(s, v, rec.number, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []call{{"a", uint32(7)}, {"b", 3.5}}, rec.calls)
}

func TestReadMessage_Truncated(t *testing.T) {
	full := body([]byte{0x03}, []byte{1, 2, 3, 4})
	for cut := 0; cut < len(full); cut++ {
		_, err := ReadMessage(full[:cut], 0, 0)
		require.ErrorIs(t, err, span.ErrBufferUnderrun, "cut=%d", cut)
	}

	_, err := ReadMessage(append(full, 0xFF), 0, 0)
	require.NoError(t, err, "trailing bytes are ignored")
}
