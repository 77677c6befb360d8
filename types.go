// Package tamer decodes DataTamer snapshots: it parses the schema text a
// producer publishes for a channel and walks snapshot payloads against it.
package tamer

import (
	"github.com/tuannm99/tamer/internal/schema"
	"github.com/tuannm99/tamer/internal/snapshot"
	"github.com/tuannm99/tamer/internal/span"
)

type (
	BasicType  = schema.BasicType
	Field      = schema.Field
	Schema     = schema.Schema
	Registry   = schema.Registry
	StringHash = schema.StringHash
	LineError  = schema.LineError

	View       = snapshot.View
	VarNumber  = snapshot.VarNumber
	NumberFunc = snapshot.NumberFunc
	CustomFunc = snapshot.CustomFunc

	Span = span.Span
)

const (
	Bool    = schema.Bool
	Char    = schema.Char
	Int8    = schema.Int8
	Uint8   = schema.Uint8
	Int16   = schema.Int16
	Uint16  = schema.Uint16
	Int32   = schema.Int32
	Uint32  = schema.Uint32
	Int64   = schema.Int64
	Uint64  = schema.Uint64
	Float32 = schema.Float32
	Float64 = schema.Float64
	Other   = schema.Other

	SchemaVersion = schema.Version
)

var (
	ErrBufferUnderrun         = span.ErrBufferUnderrun
	ErrSchemaVersionMismatch  = schema.ErrSchemaVersionMismatch
	ErrSchemaHashMismatch     = schema.ErrSchemaHashMismatch
	ErrMalformedSchemaLine    = schema.ErrMalformedSchemaLine
	ErrSchemaNotFound         = schema.ErrSchemaNotFound
	ErrDuplicateSchema        = schema.ErrDuplicateSchema
	ErrSnapshotSchemaMismatch = snapshot.ErrSnapshotSchemaMismatch
	ErrCustomTypeUnhandled    = snapshot.ErrCustomTypeUnhandled

	LibstdcxxHash StringHash = schema.LibstdcxxHash
	XXHash        StringHash = schema.XXHash
)

// ParseSchema parses schema text. hashString picks the string hash used for
// the schema hash; nil selects the libstdc++-compatible one.
func ParseSchema(text string, hashString StringHash) (*Schema, error) {
	if hashString == nil {
		return schema.Parse(text)
	}
	return schema.Parse(text, schema.WithStringHash(hashString))
}

// NewRegistry returns an empty schema registry.
func NewRegistry() *Registry { return schema.NewRegistry() }

// Decode walks v against s. See snapshot.Decode.
func Decode(s *Schema, v View, onNumber NumberFunc, onCustom CustomFunc) (bool, error) {
	return snapshot.Decode(s, v, onNumber, onCustom)
}

// DecodeMessage frames a recorded message body and decodes it against s.
func DecodeMessage(s *Schema, body []byte, schemaHash, timestamp uint64, onNumber NumberFunc, onCustom CustomFunc) (bool, error) {
	v, err := snapshot.ReadMessage(body, schemaHash, timestamp)
	if err != nil {
		return false, err
	}
	return snapshot.Decode(s, v, onNumber, onCustom)
}

// DecodeRouted decodes v with the schema reg holds for v.SchemaHash.
func DecodeRouted(reg *Registry, v View, onNumber NumberFunc, onCustom CustomFunc) (*Schema, error) {
	return snapshot.DecodeRouted(reg, v, onNumber, onCustom)
}
