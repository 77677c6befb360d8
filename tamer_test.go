package tamer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/tamer"
	"github.com/tuannm99/tamer/internal/alias/bx"
)

const jointSchema = `__version__: 3
__channel_name__: joints
uint16 id
float32[] angles
`

func jointBody() []byte {
	var payload []byte
	payload = bx.AppendU16(payload, 3)
	payload = bx.AppendU32(payload, 2)
	payload = bx.AppendU32(payload, 0x3F000000) // 0.5
	payload = bx.AppendU32(payload, 0x3F800000) // 1

	var body []byte
	body = bx.AppendU32(body, 1)
	body = append(body, 0b11)
	body = bx.AppendU32(body, uint32(len(payload)))
	return append(body, payload...)
}

func Example() {
	s, err := tamer.ParseSchema(jointSchema, nil)
	if err != nil {
		panic(err)
	}

	ok, err := tamer.DecodeMessage(s, jointBody(), s.Hash, 0, func(name string, v tamer.VarNumber) {
		fmt.Println(name, v)
	}, nil)
	fmt.Println(ok, err)
	// Output:
	// id 3
	// angles[0] 0.5
	// angles[1] 1
	// true <nil>
}

func TestDecodeMessage_HashMismatch(t *testing.T) {
	s, err := tamer.ParseSchema(jointSchema, nil)
	require.NoError(t, err)

	calls := 0
	ok, err := tamer.DecodeMessage(s, jointBody(), s.Hash^1, 0, func(string, tamer.VarNumber) { calls++ }, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, calls)
}

func TestParseSchema_Hashers(t *testing.T) {
	std, err := tamer.ParseSchema(jointSchema, tamer.LibstdcxxHash)
	require.NoError(t, err)
	def, err := tamer.ParseSchema(jointSchema, nil)
	require.NoError(t, err)
	xx, err := tamer.ParseSchema(jointSchema, tamer.XXHash)
	require.NoError(t, err)

	assert.Equal(t, std.Hash, def.Hash)
	assert.NotEqual(t, std.Hash, xx.Hash)
}

func TestDecodeRouted(t *testing.T) {
	s, err := tamer.ParseSchema(jointSchema, nil)
	require.NoError(t, err)
	reg := tamer.NewRegistry()
	require.NoError(t, reg.Add(s))

	v := tamer.View{SchemaHash: 1, ActiveMask: []byte{0}}
	_, err = tamer.DecodeRouted(reg, v, nil, nil)
	require.ErrorIs(t, err, tamer.ErrSnapshotSchemaMismatch)

	v.SchemaHash = s.Hash
	got, err := tamer.DecodeRouted(reg, v, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "joints", got.ChannelName)
}

func TestDecodeMessage_Truncated(t *testing.T) {
	s, err := tamer.ParseSchema(jointSchema, nil)
	require.NoError(t, err)

	b := jointBody()
	_, err = tamer.DecodeMessage(s, b[:len(b)-1], s.Hash, 0, nil, nil)
	require.ErrorIs(t, err, tamer.ErrBufferUnderrun)
}
