package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tuannm99/tamer/internal/alias/bx"
	"github.com/tuannm99/tamer/internal/alias/util"
	"github.com/tuannm99/tamer/internal/schema"
	"github.com/tuannm99/tamer/internal/snapshot"
	"github.com/tuannm99/tamer/internal/span"
)

// errRestSkipped stops a decode after a custom field took the remaining payload.
var errRestSkipped = errors.New("rest of payload skipped")

type fieldValue struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

type snapshotDoc struct {
	File      string       `yaml:"file"`
	Channel   string       `yaml:"channel"`
	Hash      uint64       `yaml:"hash"`
	Timestamp uint64       `yaml:"timestamp"`
	Values    []fieldValue `yaml:"values"`
	Truncated bool         `yaml:"truncated,omitempty"`
	Error     string       `yaml:"error,omitempty"`
}

// decodeBody decodes one message body. Custom fields cannot be sized here,
// so the first one reports the remaining byte count, takes the rest and ends
// the snapshot; Truncated is set if anything after it was left undecoded.
func decodeBody(reg *schema.Registry, file string, body []byte, hash, timestamp uint64) (snapshotDoc, error) {
	doc := snapshotDoc{File: file, Hash: hash, Timestamp: timestamp}

	v, err := snapshot.ReadMessage(body, hash, timestamp)
	if err != nil {
		return doc, err
	}

	onNumber := func(name string, val snapshot.VarNumber) {
		doc.Values = append(doc.Values, fieldValue{Name: name, Type: val.Type().String(), Value: val.String()})
	}
	var stopName string
	var stopOffset int
	onCustom := func(name string, payload *span.Span, typeName string) error {
		stopName, stopOffset = name, len(v.Payload)-payload.Len()
		doc.Values = append(doc.Values, fieldValue{
			Name:  name,
			Type:  typeName,
			Value: fmt.Sprintf("<%d bytes>", payload.Len()),
		})
		if err := payload.Skip(payload.Len()); err != nil {
			return err
		}
		return errRestSkipped
	}

	s, err := snapshot.DecodeRouted(reg, v, onNumber, onCustom)
	if s != nil {
		doc.Channel = s.ChannelName
	}
	if errors.Is(err, errRestSkipped) {
		doc.Truncated = skippedAfter(s, v, stopName, stopOffset)
		return doc, nil
	}
	return doc, err
}

// skippedAfter reports whether decoding stopped at the custom value name,
// found at payload offset, left anything undecoded: more elements of the
// same vector or a later field present in the active mask. The stop is
// always at element 0 of a vector, so a dynamic count sits in the four
// bytes before offset.
func skippedAfter(s *schema.Schema, v snapshot.View, name string, offset int) bool {
	for i, f := range s.Fields {
		if f.Type != schema.Other {
			continue
		}
		if f.IsVector {
			if name != f.Name+"[0]" {
				continue
			}
			count := uint32(f.ArraySize)
			if f.IsDynamic() && offset >= 4 {
				count = bx.U32(v.Payload[offset-4 : offset])
			}
			if count > 1 {
				return true
			}
		} else if name != f.Name {
			continue
		}

		for j := i + 1; j < len(s.Fields); j++ {
			if present, _ := snapshot.GetBit(v.ActiveMask, j); present {
				return true
			}
		}
		return false
	}
	return false
}

// decodeFiles decodes every file with at most workers in flight. Results
// keep the input order; per-file failures are combined into one error.
func decodeFiles(ctx context.Context, reg *schema.Registry, files []string, hash, timestamp uint64, workers int) ([]snapshotDoc, error) {
	docs := make([]snapshotDoc, len(files))
	errs := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				docs[i] = snapshotDoc{File: file, Error: err.Error()}
				errs[i] = fmt.Errorf("%s: %w", file, err)
				return nil
			}
			body, err := util.ReadFile(file)
			if err != nil {
				docs[i] = snapshotDoc{File: file, Error: err.Error()}
				errs[i] = fmt.Errorf("%s: %w", file, err)
				return nil
			}
			doc, err := decodeBody(reg, file, body, hash, timestamp)
			if err != nil {
				doc.Error = err.Error()
				errs[i] = fmt.Errorf("%s: %w", file, err)
			}
			docs[i] = doc
			zap.L().Debug("decoded", zap.String("file", file), zap.Int("values", len(doc.Values)), zap.Error(err))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return docs, err
	}
	return docs, multierr.Combine(errs...)
}

func appendFileErr(errs error, path string, err error) error {
	return multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
}
