package schema

// Version is the schema text format version this package understands.
const Version = 3

// BasicType is the wire type tag of a field. The ordinal of each constant is
// part of the wire contract and must never change.
type BasicType uint8

const (
	Bool BasicType = iota
	Char
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Other
)

// TypesCount is the number of BasicType tags, Other included.
const TypesCount = 13

// Current keywords, indexed by BasicType.
var typeKeywords = [TypesCount]string{
	"bool", "char",
	"int8", "uint8",
	"int16", "uint16",
	"int32", "uint32",
	"int64", "uint64",
	"float32", "float64",
	"other",
}

// Legacy keywords of the older "<name> <TYPE>" convention, indexed by BasicType.
var legacyKeywords = [TypesCount]string{
	"BOOL", "CHAR",
	"INT8", "UINT8",
	"INT16", "UINT16",
	"INT32", "UINT32",
	"INT64", "UINT64",
	"FLOAT", "DOUBLE",
	"OTHER",
}

func (t BasicType) String() string {
	if t < TypesCount {
		return typeKeywords[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the defined tags.
func (t BasicType) Valid() bool { return t < TypesCount }

// Size is the encoded width in bytes of one value of type t.
// Other has no fixed width and reports 0.
func (t BasicType) Size() int {
	switch t {
	case Bool, Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Other:
		return 0
	}
	return 0
}
