// stand for bytes helper
package bx

import (
	"encoding/binary"
	"math"
)

var NE = binary.NativeEndian

// --- NE: read (snapshot payloads are in the producer's native order) ---
func U16(b []byte) uint16  { return NE.Uint16(b) }
func U32(b []byte) uint32  { return NE.Uint32(b) }
func U64(b []byte) uint64  { return NE.Uint64(b) }
func I16(b []byte) int16   { return int16(U16(b)) }
func I32(b []byte) int32   { return int32(U32(b)) }
func I64(b []byte) int64   { return int64(U64(b)) }
func F32(b []byte) float32 { return math.Float32frombits(U32(b)) }
func F64(b []byte) float64 { return math.Float64frombits(U64(b)) }

// --- NE: write ---
func PutU16(b []byte, v uint16)  { NE.PutUint16(b, v) }
func PutU32(b []byte, v uint32)  { NE.PutUint32(b, v) }
func PutU64(b []byte, v uint64)  { NE.PutUint64(b, v) }
func PutF32(b []byte, v float32) { PutU32(b, math.Float32bits(v)) }
func PutF64(b []byte, v float64) { PutU64(b, math.Float64bits(v)) }

// --- NE: append, used when building buffers piecewise ---
func AppendU16(b []byte, v uint16) []byte { return NE.AppendUint16(b, v) }
func AppendU32(b []byte, v uint32) []byte { return NE.AppendUint32(b, v) }
func AppendU64(b []byte, v uint64) []byte { return NE.AppendUint64(b, v) }
