package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/tamer/internal/alias/bx"
	"github.com/tuannm99/tamer/internal/schema"
)

// payloadBuilder assembles host-order payloads for tests.
type payloadBuilder struct{ b []byte }

func (p *payloadBuilder) u8(v ...uint8) *payloadBuilder { p.b = append(p.b, v...); return p }
func (p *payloadBuilder) u16(v uint16) *payloadBuilder  { p.b = bx.AppendU16(p.b, v); return p }
func (p *payloadBuilder) u32(v uint32) *payloadBuilder  { p.b = bx.AppendU32(p.b, v); return p }
func (p *payloadBuilder) u64(v uint64) *payloadBuilder  { p.b = bx.AppendU64(p.b, v); return p }
func (p *payloadBuilder) i32(v int32) *payloadBuilder   { return p.u32(uint32(v)) }
func (p *payloadBuilder) i64(v int64) *payloadBuilder   { return p.u64(uint64(v)) }
func (p *payloadBuilder) f32(v float32) *payloadBuilder {
	var tmp [4]byte
	bx.PutF32(tmp[:], v)
	p.b = append(p.b, tmp[:]...)
	return p
}
func (p *payloadBuilder) f64(v float64) *payloadBuilder {
	var tmp [8]byte
	bx.PutF64(tmp[:], v)
	p.b = append(p.b, tmp[:]...)
	return p
}
func (p *payloadBuilder) bytes() []byte { return p.b }

// mask sets the listed bits in a mask sized for n fields.
func mask(n int, present ...int) []byte {
	m := make([]byte, (n+7)/8)
	for _, i := range present {
		m[i>>3] |= 1 << (uint(i) & 7)
	}
	return m
}

// body frames mask and payload as a recorded message body.
func body(m, payload []byte) []byte {
	var out []byte
	out = bx.AppendU32(out, uint32(len(m)))
	out = append(out, m...)
	out = bx.AppendU32(out, uint32(len(payload)))
	out = append(out, payload...)
	return out
}

func mustSchema(t *testing.T, text string) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(text)
	require.NoError(t, err)
	return s
}

type call struct {
	Name  string
	Value any
}

// recorder collects callbacks in order.
type recorder struct {
	calls []call
}

func (r *recorder) number(name string, v VarNumber) {
	r.calls = append(r.calls, call{Name: name, Value: v.Any()})
}
