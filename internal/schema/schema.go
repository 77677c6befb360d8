package schema

import (
	"strconv"
	"strings"
)

// Schema is an ordered field list plus the running content hash seeded by the
// channel name. Field order is both the hash fold order and the wire order.
//
// A Schema is built once and then shared read-only; nothing in this module
// mutates a Schema after Parse returns.
type Schema struct {
	Fields      []Field
	Hash        uint64
	ChannelName string

	hashString StringHash
}

// New returns an empty schema for channel, with the hash seeded from the
// channel name, or 0 when there is none, as for text without a
// __channel_name__ line. A nil hashString selects LibstdcxxHash.
func New(channel string, hashString StringHash) *Schema {
	if hashString == nil {
		hashString = LibstdcxxHash
	}
	s := &Schema{hashString: hashString}
	if channel != "" {
		s.SetChannel(channel)
	}
	return s
}

// SetChannel replaces the channel name and reseeds the hash from it.
// Fields already added are no longer reflected in the hash.
func (s *Schema) SetChannel(channel string) {
	s.ChannelName = channel
	s.Hash = s.hasher()(channel)
}

// AddField appends f and folds it into the hash. The custom type name of an
// Other field is replaced by its rendered type token ("other" when empty,
// array suffix included), which is what parsing Text yields.
func (s *Schema) AddField(f Field) {
	if f.Type == Other {
		f.CustomTypeName = f.TypeToken()
	}
	s.Hash = AddFieldToHash(f, s.Hash, s.hasher())
	s.Fields = append(s.Fields, f)
}

func (s *Schema) hasher() StringHash {
	if s.hashString == nil {
		return LibstdcxxHash
	}
	return s.hashString
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Equal reports the same channel and pairwise-equal fields.
func (s *Schema) Equal(o *Schema) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.ChannelName != o.ChannelName || len(s.Fields) != len(o.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}

// Text renders s in the current text format. Parsing the result with the
// same StringHash yields the same hash. The channel line is left out when
// there is no channel.
func (s *Schema) Text() string {
	var sb strings.Builder
	sb.WriteString("__version__: ")
	sb.WriteString(strconv.Itoa(Version))
	sb.WriteString("\n__hash__: ")
	sb.WriteString(strconv.FormatUint(s.Hash, 10))
	sb.WriteByte('\n')
	if s.ChannelName != "" {
		sb.WriteString("__channel_name__: ")
		sb.WriteString(s.ChannelName)
		sb.WriteByte('\n')
	}
	for _, f := range s.Fields {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *Schema) String() string { return s.Text() }
