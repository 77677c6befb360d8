package snapshot

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tuannm99/tamer/internal/schema"
	"github.com/tuannm99/tamer/internal/span"
)

// NumberFunc receives one decoded numeric field. Vector elements are named
// "<field>[<index>]".
type NumberFunc func(name string, value VarNumber)

// CustomFunc receives a field of a custom type. payload is the live decode
// cursor positioned at the field: the handler knows its type's width and
// must consume exactly the field's bytes from it. A returned error aborts
// the decode.
type CustomFunc func(name string, payload *span.Span, typeName string) error

// Decode walks s against v, calling onNumber for every present numeric
// field (or element) and onCustom for every present custom one.
//
// A snapshot stamped with another schema's hash yields (false, nil) with no
// callback invoked. Any read failure aborts with (false, err); callbacks may
// already have fired by then and their output should be discarded.
func Decode(s *schema.Schema, v View, onNumber NumberFunc, onCustom CustomFunc) (bool, error) {
	if v.SchemaHash != s.Hash {
		zap.L().Debug("snapshot: schema hash mismatch",
			zap.String("channel", s.ChannelName),
			zap.Uint64("schema_hash", s.Hash),
			zap.Uint64("snapshot_hash", v.SchemaHash),
		)
		return false, nil
	}

	buf := span.New(v.Payload)
	var name []byte // per-call scratch for element names

	for i, f := range s.Fields {
		present, err := GetBit(v.ActiveMask, i)
		if err != nil {
			return false, err
		}
		if !present {
			continue
		}

		if !f.IsVector {
			if err := decodeOne(f, f.Name, buf, onNumber, onCustom); err != nil {
				return false, err
			}
			continue
		}

		count := uint64(f.ArraySize)
		if f.IsDynamic() {
			n, err := buf.Uint32()
			if err != nil {
				return false, fmt.Errorf("field %q length: %w", f.Name, err)
			}
			count = uint64(n)
		}
		// custom elements take at least one byte each
		w := f.Type.Size()
		if w == 0 {
			w = 1
		}
		if count*uint64(w) > uint64(buf.Len()) {
			return false, fmt.Errorf("field %q: %w: %d elements of %d bytes, have %d",
				f.Name, span.ErrBufferUnderrun, count, w, buf.Len())
		}

		for a := uint64(0); a < count; a++ {
			name = append(name[:0], f.Name...)
			name = append(name, '[')
			name = strconv.AppendUint(name, a, 10)
			name = append(name, ']')
			if err := decodeOne(f, string(name), buf, onNumber, onCustom); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func decodeOne(f schema.Field, name string, buf *span.Span, onNumber NumberFunc, onCustom CustomFunc) error {
	if f.Type == schema.Other {
		if onCustom == nil {
			return fmt.Errorf("field %q (%s): %w", name, f.CustomTypeName, ErrCustomTypeUnhandled)
		}
		if err := onCustom(name, buf, f.CustomTypeName); err != nil {
			return fmt.Errorf("field %q (%s): %w", name, f.CustomTypeName, err)
		}
		return nil
	}

	val, err := DecodeScalar(f.Type, buf)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	if onNumber != nil {
		onNumber(name, val)
	}
	return nil
}

// DecodeRouted picks the schema for v from reg by hash and decodes with it.
// An unknown hash fails with ErrSnapshotSchemaMismatch.
func DecodeRouted(reg *schema.Registry, v View, onNumber NumberFunc, onCustom CustomFunc) (*schema.Schema, error) {
	s, err := reg.ByHash(v.SchemaHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotSchemaMismatch, err)
	}
	if _, err := Decode(s, v, onNumber, onCustom); err != nil {
		return s, err
	}
	return s, nil
}
