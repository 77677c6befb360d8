package schema

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const sectionEnd = "---------"

const (
	directiveVersion = "__version__:"
	directiveHash    = "__hash__:"
	directiveChannel = "__channel_name__:"
)

type parseOptions struct {
	hashString StringHash
}

// ParseOption tunes Parse.
type ParseOption func(*parseOptions)

// WithStringHash selects the string hash folded into the schema hash.
func WithStringHash(h StringHash) ParseOption {
	return func(o *parseOptions) { o.hashString = h }
}

func trimLine(s string) string { return strings.Trim(s, " \r") }

// Parse builds a Schema from its text description. Parsing stops at the
// first "---------" line. Any error is fatal and no schema is returned.
func Parse(text string, opts ...ParseOption) (*Schema, error) {
	o := parseOptions{hashString: LibstdcxxHash}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Schema{hashString: o.hashString}
	var declared uint64

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), len(text)+1)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := trimLine(raw)
		if line == "" {
			continue
		}
		if line == sectionEnd {
			break
		}

		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return nil, &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: missing space separator", ErrMalformedSchemaLine)}
		}
		left := trimLine(line[:sp])
		right := trimLine(line[sp+1:])

		switch left {
		case directiveVersion:
			v, err := strconv.Atoi(right)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: version %q", ErrMalformedSchemaLine, right)}
			}
			if v != Version {
				return nil, &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: got %d, want %d", ErrSchemaVersionMismatch, v, Version)}
			}
			continue

		case directiveHash:
			h, err := strconv.ParseUint(right, 10, 64)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: raw, Err: fmt.Errorf("%w: hash %q", ErrMalformedSchemaLine, right)}
			}
			declared = h
			continue

		case directiveChannel:
			s.SetChannel(right)
			continue
		}

		f, err := parseField(left, right)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: raw, Err: err}
		}
		s.AddField(f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schema: read text: %w", err)
	}

	if declared != 0 && declared != s.Hash {
		return nil, fmt.Errorf("%w: declared %d, computed %d", ErrSchemaHashMismatch, declared, s.Hash)
	}

	zap.L().Debug("schema: parsed",
		zap.String("channel", s.ChannelName),
		zap.Int("fields", len(s.Fields)),
		zap.Uint64("hash", s.Hash),
	)
	return s, nil
}

// parseField resolves which token is the type and which the name. The
// current format is "<type> <name>", the legacy one "<name> <TYPE>".
func parseField(left, right string) (Field, error) {
	f := Field{Type: Other}
	typeTok, nameTok := left, right

	matched := false
	for i, kw := range typeKeywords {
		if strings.HasPrefix(left, kw) {
			f.Type = BasicType(i)
			matched = true
			break
		}
	}
	if !matched {
		for i, kw := range legacyKeywords {
			if strings.HasPrefix(right, kw) {
				f.Type = BasicType(i)
				typeTok, nameTok = right, left
				break
			}
		}
	}

	if f.Type == Other {
		f.CustomTypeName = typeTok
	}

	if open := strings.IndexAny(typeTok, " ["); open >= 0 && typeTok[open] == '[' {
		f.IsVector = true
		closing := strings.IndexByte(typeTok[open:], ']')
		if closing < 0 {
			return Field{}, fmt.Errorf("%w: unterminated array size in %q", ErrMalformedSchemaLine, typeTok)
		}
		if digits := typeTok[open+1 : open+closing]; digits != "" {
			n, err := strconv.ParseUint(digits, 10, 16)
			if err != nil {
				return Field{}, fmt.Errorf("%w: array size %q", ErrMalformedSchemaLine, digits)
			}
			f.ArraySize = uint16(n)
		}
	}

	f.Name = trimLine(nameTok)
	if f.Name == "" {
		return Field{}, fmt.Errorf("%w: empty field name", ErrMalformedSchemaLine)
	}
	return f, nil
}
