package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaVersionMismatch = errors.New("schema: unsupported format version")
	ErrSchemaHashMismatch    = errors.New("schema: declared hash does not match computed hash")
	ErrMalformedSchemaLine   = errors.New("schema: malformed line")
	ErrSchemaNotFound        = errors.New("schema: not found")
	ErrDuplicateSchema       = errors.New("schema: different schema already registered with this hash")
)

// LineError locates a parse failure in the schema text. Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
