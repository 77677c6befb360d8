package snapshot

import (
	"fmt"
	"math"

	"github.com/tuannm99/tamer/internal/schema"
	"github.com/tuannm99/tamer/internal/span"
)

// DecodeScalar reads one fixed-width value of type t from s, in host byte
// order. char is read as an unsigned byte, so 0xFF converts to 255 rather
// than the -1 a signed C++ char would give. For schema.Other it returns a
// NaN float64 and leaves s untouched: custom types never go through this path.
func DecodeScalar(t schema.BasicType, s *span.Span) (VarNumber, error) {
	switch t {
	case schema.Bool:
		v, err := s.Bool()
		return boolNumber(v), err
	case schema.Char:
		v, err := s.Char()
		return unsignedNumber(schema.Char, uint64(v)), err

	case schema.Int8:
		v, err := s.Int8()
		return signedNumber(t, int64(v)), err
	case schema.Uint8:
		v, err := s.Uint8()
		return unsignedNumber(t, uint64(v)), err

	case schema.Int16:
		v, err := s.Int16()
		return signedNumber(t, int64(v)), err
	case schema.Uint16:
		v, err := s.Uint16()
		return unsignedNumber(t, uint64(v)), err

	case schema.Int32:
		v, err := s.Int32()
		return signedNumber(t, int64(v)), err
	case schema.Uint32:
		v, err := s.Uint32()
		return unsignedNumber(t, uint64(v)), err

	case schema.Int64:
		v, err := s.Int64()
		return signedNumber(t, v), err
	case schema.Uint64:
		v, err := s.Uint64()
		return unsignedNumber(t, v), err

	case schema.Float32:
		v, err := s.Float32()
		return float32Number(v), err
	case schema.Float64:
		v, err := s.Float64()
		return float64Number(v), err

	case schema.Other:
		return float64Number(math.NaN()), nil
	}
	return VarNumber{}, fmt.Errorf("%w: %d", ErrUnknownType, t)
}
