// Package span is a bounds-checked read cursor over a borrowed byte slice.
// Every read validates the remaining length before it advances.
package span

import (
	"errors"
	"fmt"

	"github.com/tuannm99/tamer/internal/alias/bx"
)

var ErrBufferUnderrun = errors.New("span: buffer underrun")

// Span is a non-owning view of the unread part of a buffer.
// The zero value is an empty span.
type Span struct {
	data []byte
}

func New(b []byte) *Span { return &Span{data: b} }

// Len reports the number of unread bytes.
func (s *Span) Len() int { return len(s.data) }

// Bytes returns the unread bytes without consuming them. The result aliases
// the underlying buffer.
func (s *Span) Bytes() []byte { return s.data }

// Take consumes n bytes and returns them. The result aliases the
// underlying buffer.
func (s *Span) Take(n int) ([]byte, error) {
	if n < 0 || n > len(s.data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferUnderrun, n, len(s.data))
	}
	b := s.data[:n:n]
	s.data = s.data[n:]
	return b, nil
}

// Skip consumes n bytes.
func (s *Span) Skip(n int) error {
	_, err := s.Take(n)
	return err
}

func (s *Span) Bool() (bool, error) {
	b, err := s.Take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (s *Span) Char() (byte, error) {
	b, err := s.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Span) Int8() (int8, error) {
	b, err := s.Take(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (s *Span) Uint8() (uint8, error) {
	b, err := s.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Span) Int16() (int16, error) {
	b, err := s.Take(2)
	if err != nil {
		return 0, err
	}
	return bx.I16(b), nil
}

func (s *Span) Uint16() (uint16, error) {
	b, err := s.Take(2)
	if err != nil {
		return 0, err
	}
	return bx.U16(b), nil
}

func (s *Span) Int32() (int32, error) {
	b, err := s.Take(4)
	if err != nil {
		return 0, err
	}
	return bx.I32(b), nil
}

func (s *Span) Uint32() (uint32, error) {
	b, err := s.Take(4)
	if err != nil {
		return 0, err
	}
	return bx.U32(b), nil
}

func (s *Span) Int64() (int64, error) {
	b, err := s.Take(8)
	if err != nil {
		return 0, err
	}
	return bx.I64(b), nil
}

func (s *Span) Uint64() (uint64, error) {
	b, err := s.Take(8)
	if err != nil {
		return 0, err
	}
	return bx.U64(b), nil
}

func (s *Span) Float32() (float32, error) {
	b, err := s.Take(4)
	if err != nil {
		return 0, err
	}
	return bx.F32(b), nil
}

func (s *Span) Float64() (float64, error) {
	b, err := s.Take(8)
	if err != nil {
		return 0, err
	}
	return bx.F64(b), nil
}
