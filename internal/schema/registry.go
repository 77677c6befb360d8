package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tuannm99/tamer/internal/alias/util"
)

// schema file extensions picked up by LoadDir
var schemaExts = map[string]struct{}{
	".txt":    {},
	".schema": {},
}

// Registry indexes schemas by hash and by channel name. Registered schemas
// are shared read-only; the registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	byHash    map[uint64]*Schema
	byChannel map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{
		byHash:    make(map[uint64]*Schema),
		byChannel: make(map[string]*Schema),
	}
}

// Add registers s. A schema already registered for the same channel is
// replaced. A different schema that collides on hash is rejected.
func (r *Registry) Add(s *Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.byHash[s.Hash]; ok && !cur.Equal(s) {
		return fmt.Errorf("%w: hash %d (channel %q vs %q)", ErrDuplicateSchema, s.Hash, cur.ChannelName, s.ChannelName)
	}
	if old, ok := r.byChannel[s.ChannelName]; ok && old.Hash != s.Hash {
		delete(r.byHash, old.Hash)
		zap.L().Debug("schema registry: replace",
			zap.String("channel", s.ChannelName),
			zap.Uint64("old_hash", old.Hash),
			zap.Uint64("new_hash", s.Hash),
		)
	}
	r.byHash[s.Hash] = s
	r.byChannel[s.ChannelName] = s
	return nil
}

func (r *Registry) ByHash(h uint64) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byHash[h]
	if !ok {
		return nil, fmt.Errorf("%w: hash %d", ErrSchemaNotFound, h)
	}
	return s, nil
}

func (r *Registry) ByChannel(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byChannel[name]
	if !ok {
		return nil, fmt.Errorf("%w: channel %q", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Channels returns the registered channel names, sorted.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byChannel))
	for name := range r.byChannel {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byHash)
}

// LoadFile parses one schema text file and registers it.
func (r *Registry) LoadFile(path string, opts ...ParseOption) (*Schema, error) {
	text, err := util.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(string(text), opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadDir registers every *.txt and *.schema file directly under dir. Files
// that fail do not stop the others; their errors are combined.
func (r *Registry) LoadDir(dir string, opts ...ParseOption) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("schema registry: read dir: %w", err)
	}

	var errs error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := schemaExts[filepath.Ext(e.Name())]; !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if _, err := r.LoadFile(path, opts...); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return errs
}
