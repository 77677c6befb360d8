package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tuannm99/tamer/internal"
	"github.com/tuannm99/tamer/internal/schema"
)

func TestPrinter_SchemasText(t *testing.T) {
	s, err := schema.Parse(poseSchema)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := newPrinter(&buf, internal.FormatText, false)
	require.NoError(t, p.schemas([]schemaDoc{newSchemaDoc("pose.txt", s)}))

	out := buf.String()
	assert.Contains(t, out, "robot pose.txt (hash ")
	assert.Contains(t, out, "  uint32 seq\n")
	assert.Contains(t, out, "  float64[2] xy\n")
	assert.Contains(t, out, "  Pose pose\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_SchemasYAML(t *testing.T) {
	s, err := schema.Parse(poseSchema)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := newPrinter(&buf, internal.FormatYAML, true)
	require.NoError(t, p.schemas([]schemaDoc{newSchemaDoc("pose.txt", s)}))

	var got []schemaDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, s.Hash, got[0].Hash)
	assert.Equal(t, "robot", got[0].Channel)
	assert.Equal(t, []fieldDoc{{"seq", "uint32"}, {"xy", "float64[2]"}, {"pose", "Pose"}}, got[0].Fields)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_SnapshotsText(t *testing.T) {
	docs := []snapshotDoc{
		{File: "a.bin", Channel: "robot", Timestamp: 5, Values: []fieldValue{{Name: "seq", Type: "uint32", Value: "9"}}},
		{File: "b.bin", Error: "snapshot: payload: span: buffer underrun"},
	}

	var buf bytes.Buffer
	require.NoError(t, newPrinter(&buf, internal.FormatText, false).snapshots(docs))
	assert.Equal(t, "a.bin robot @5\n"+
		"  seq = 9 (uint32)\n"+
		"b.bin  @0\n"+
		"  error: snapshot: payload: span: buffer underrun\n", buf.String())
}

func TestPrinter_Colored(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, internal.FormatText, true)
	require.NoError(t, p.snapshots([]snapshotDoc{{File: "a.bin"}}))
	assert.Contains(t, buf.String(), "\x1b[")
}
