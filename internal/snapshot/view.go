package snapshot

import (
	"fmt"

	"github.com/tuannm99/tamer/internal/span"
)

// View is one decode unit. ActiveMask and Payload borrow the caller's memory.
type View struct {
	SchemaHash uint64
	Timestamp  uint64
	// ActiveMask has one bit per schema field: bit i lives in byte i>>3 at
	// position i%8, LSB first. A set bit means the field is in Payload.
	ActiveMask []byte
	// Payload is the concatenated data of the present fields, in schema order.
	Payload []byte
}

// GetBit reports bit i of mask.
func GetBit(mask []byte, i int) (bool, error) {
	if i < 0 || i>>3 >= len(mask) {
		return false, fmt.Errorf("%w: mask bit %d out of %d bytes", span.ErrBufferUnderrun, i, len(mask))
	}
	return mask[i>>3]&(1<<(uint(i)&7)) != 0, nil
}

// ReadMessage splits a recorded message body into a View. The body layout
// is: u32 mask length | mask | u32 payload length | payload, with lengths
// in host byte order. Trailing bytes after the payload are ignored.
func ReadMessage(body []byte, schemaHash, timestamp uint64) (View, error) {
	s := span.New(body)

	maskLen, err := s.Uint32()
	if err != nil {
		return View{}, fmt.Errorf("snapshot: mask length: %w", err)
	}
	mask, err := s.Take(int(maskLen))
	if err != nil {
		return View{}, fmt.Errorf("snapshot: mask: %w", err)
	}
	payloadLen, err := s.Uint32()
	if err != nil {
		return View{}, fmt.Errorf("snapshot: payload length: %w", err)
	}
	payload, err := s.Take(int(payloadLen))
	if err != nil {
		return View{}, fmt.Errorf("snapshot: payload: %w", err)
	}

	return View{
		SchemaHash: schemaHash,
		Timestamp:  timestamp,
		ActiveMask: mask,
		Payload:    payload,
	}, nil
}
