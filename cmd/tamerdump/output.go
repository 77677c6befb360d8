package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/tuannm99/tamer/internal"
	"github.com/tuannm99/tamer/internal/schema"
)

type fieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type schemaDoc struct {
	File    string     `yaml:"file"`
	Channel string     `yaml:"channel"`
	Hash    uint64     `yaml:"hash"`
	Fields  []fieldDoc `yaml:"fields"`
}

func newSchemaDoc(file string, s *schema.Schema) schemaDoc {
	doc := schemaDoc{File: file, Channel: s.ChannelName, Hash: s.Hash}
	for _, f := range s.Fields {
		doc.Fields = append(doc.Fields, fieldDoc{Name: f.Name, Type: f.TypeToken()})
	}
	return doc
}

type printer struct {
	w      io.Writer
	format string

	header func(a ...any) string
	typ    func(a ...any) string
	value  func(a ...any) string
	fail   func(a ...any) string
}

func newPrinter(w io.Writer, format string, colored bool) *printer {
	palette := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &printer{
		w:      w,
		format: format,
		header: palette(color.FgCyan, color.Bold),
		typ:    palette(color.FgYellow),
		value:  palette(color.FgGreen),
		fail:   palette(color.FgRed),
	}
}

func (p *printer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (p *printer) schemas(docs []schemaDoc) error {
	if p.format == internal.FormatYAML {
		return p.encodeYAML(docs)
	}
	for _, d := range docs {
		fmt.Fprintf(p.w, "%s %s (hash %d)\n", p.header(d.Channel), d.File, d.Hash)
		for _, f := range d.Fields {
			fmt.Fprintf(p.w, "  %s %s\n", p.typ(f.Type), f.Name)
		}
	}
	return nil
}

func (p *printer) snapshots(docs []snapshotDoc) error {
	if p.format == internal.FormatYAML {
		return p.encodeYAML(docs)
	}
	for _, d := range docs {
		fmt.Fprintf(p.w, "%s %s @%d\n", p.header(d.File), d.Channel, d.Timestamp)
		for _, v := range d.Values {
			fmt.Fprintf(p.w, "  %s = %s (%s)\n", v.Name, p.value(v.Value), p.typ(v.Type))
		}
		if d.Truncated {
			fmt.Fprintf(p.w, "  %s\n", p.fail("(fields after the custom value not decoded)"))
		}
		if d.Error != "" {
			fmt.Fprintf(p.w, "  %s\n", p.fail("error: "+d.Error))
		}
	}
	return nil
}
