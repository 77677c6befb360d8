package snapshot

import (
	"math"
	"strconv"

	"github.com/tuannm99/tamer/internal/schema"
)

// VarNumber holds one decoded scalar of any non-Other BasicType. Signed
// integers are kept sign-extended, floats as their IEEE bits.
type VarNumber struct {
	typ  schema.BasicType
	bits uint64
}

func boolNumber(v bool) VarNumber {
	if v {
		return VarNumber{typ: schema.Bool, bits: 1}
	}
	return VarNumber{typ: schema.Bool}
}

func signedNumber(t schema.BasicType, v int64) VarNumber {
	return VarNumber{typ: t, bits: uint64(v)}
}

func unsignedNumber(t schema.BasicType, v uint64) VarNumber {
	return VarNumber{typ: t, bits: v}
}

func float32Number(v float32) VarNumber {
	return VarNumber{typ: schema.Float32, bits: uint64(math.Float32bits(v))}
}

func float64Number(v float64) VarNumber {
	return VarNumber{typ: schema.Float64, bits: math.Float64bits(v)}
}

// Type is the tag of the held value.
func (n VarNumber) Type() schema.BasicType { return n.typ }

func (n VarNumber) isSigned() bool {
	switch n.typ {
	case schema.Int8, schema.Int16, schema.Int32, schema.Int64:
		return true
	}
	return false
}

func (n VarNumber) isFloat() bool {
	return n.typ == schema.Float32 || n.typ == schema.Float64
}

func (n VarNumber) float() float64 {
	if n.typ == schema.Float32 {
		return float64(math.Float32frombits(uint32(n.bits)))
	}
	return math.Float64frombits(n.bits)
}

// Bool reports whether the value is non-zero.
func (n VarNumber) Bool() bool {
	if n.isFloat() {
		return n.float() != 0
	}
	return n.bits != 0
}

// Int64 converts the value, truncating floats toward zero.
func (n VarNumber) Int64() int64 {
	if n.isFloat() {
		return int64(n.float())
	}
	return int64(n.bits)
}

// Uint64 converts the value; negative integers wrap.
func (n VarNumber) Uint64() uint64 {
	if n.isFloat() {
		return uint64(n.float())
	}
	return n.bits
}

// Float64 converts the value to float64.
func (n VarNumber) Float64() float64 {
	switch {
	case n.isFloat():
		return n.float()
	case n.isSigned():
		return float64(int64(n.bits))
	}
	return float64(n.bits)
}

// Any returns the value as its native Go type. char is an unsigned byte.
func (n VarNumber) Any() any {
	switch n.typ {
	case schema.Bool:
		return n.bits != 0
	case schema.Char:
		return byte(n.bits)
	case schema.Int8:
		return int8(n.bits)
	case schema.Uint8:
		return uint8(n.bits)
	case schema.Int16:
		return int16(n.bits)
	case schema.Uint16:
		return uint16(n.bits)
	case schema.Int32:
		return int32(n.bits)
	case schema.Uint32:
		return uint32(n.bits)
	case schema.Int64:
		return int64(n.bits)
	case schema.Uint64:
		return n.bits
	case schema.Float32:
		return math.Float32frombits(uint32(n.bits))
	case schema.Float64:
		return math.Float64frombits(n.bits)
	case schema.Other:
		return nil
	}
	return nil
}

func (n VarNumber) String() string {
	switch {
	case n.typ == schema.Bool:
		return strconv.FormatBool(n.bits != 0)
	case n.typ == schema.Char:
		return strconv.QuoteRuneToASCII(rune(byte(n.bits)))
	case n.typ == schema.Float32:
		return strconv.FormatFloat(n.float(), 'g', -1, 32)
	case n.isFloat():
		return strconv.FormatFloat(n.float(), 'g', -1, 64)
	case n.isSigned():
		return strconv.FormatInt(int64(n.bits), 10)
	}
	return strconv.FormatUint(n.bits, 10)
}
