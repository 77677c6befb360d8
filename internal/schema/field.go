package schema

import (
	"strconv"
	"strings"
)

// Field is one schema entry.
type Field struct {
	Name string
	Type BasicType
	// IsVector marks an array field. ArraySize 0 means the element count is
	// carried in the payload; any other value is a fixed length.
	IsVector  bool
	ArraySize uint16
	// CustomTypeName is set only when Type is Other.
	CustomTypeName string
}

// Equal compares vector-ness, type, array size and name.
// CustomTypeName is not part of field identity.
func (f Field) Equal(o Field) bool {
	return f.IsVector == o.IsVector &&
		f.Type == o.Type &&
		f.ArraySize == o.ArraySize &&
		f.Name == o.Name
}

// IsDynamic reports a vector whose length prefixes its elements in the payload.
func (f Field) IsDynamic() bool { return f.IsVector && f.ArraySize == 0 }

// TypeToken renders the type half of a field line, e.g. "uint8[4]".
// Custom types render their recorded type name verbatim.
func (f Field) TypeToken() string {
	var sb strings.Builder
	if f.Type == Other && f.CustomTypeName != "" {
		sb.WriteString(f.CustomTypeName)
		if !f.IsVector || strings.ContainsRune(f.CustomTypeName, '[') {
			return sb.String()
		}
	} else {
		sb.WriteString(f.Type.String())
	}
	if f.IsVector {
		sb.WriteByte('[')
		if f.ArraySize != 0 {
			sb.WriteString(strconv.FormatUint(uint64(f.ArraySize), 10))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// String renders the field in the current text format: "<type> <name>".
func (f Field) String() string {
	return f.TypeToken() + " " + f.Name
}
