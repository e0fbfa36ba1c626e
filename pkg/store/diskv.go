package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/todo"
)

// Keys of the durable key-value store.
const (
	// KeyNotes holds the free-text note of every whole hour.
	KeyNotes = "tasks"
	// KeyTodos holds the todo registry.
	KeyTodos = "todoItems"
	// KeyAssignments holds one sequence of todo IDs per slot.
	KeyAssignments = "taskAssignments"
)

var keys = []string{KeyNotes, KeyTodos, KeyAssignments}

// Persistence defines the persistence contract for planner snapshots.
type Persistence interface {
	// Load reads every key once. Missing keys use the default value and
	// malformed keys are logged and replaced by the default value.
	Load(ctx context.Context, g slot.Granularity) planner.Snapshot
	// Save writes every key.
	Save(snap planner.Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, logger *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// No read cache: other processes write the same files and Load must
	// observe them.
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		TempDir:   filepath.Join(basePath, tempDirName),
	}), basePath: basePath, log: logger}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

// storedTodo accepts the current shape and the older {text, completed} one.
type storedTodo struct {
	ID        todo.ID `json:"id"`
	Label     string  `json:"label"`
	Text      string  `json:"text,omitempty"`
	Completed bool    `json:"completed"`
}

func (p *persistence) Load(ctx context.Context, g slot.Granularity) planner.Snapshot {
	snap := planner.DefaultSnapshot(g)

	if data, ok := p.read(ctx, KeyTodos); ok {
		if todos, err := decodeTodos(data); err != nil {
			p.malformed(KeyTodos, err)
		} else {
			snap.Todos = todos
		}
	}

	if data, ok := p.read(ctx, KeyAssignments); ok {
		registry := todo.NewRegistry(snap.Todos...)
		if assignments, dropped, err := decodeAssignments(data, g, registry); err != nil {
			p.malformed(KeyAssignments, err)
		} else {
			snap.Assignments = assignments
			if dropped > 0 {
				p.log.Info("dropped unresolved assignments",
					zap.String("key", KeyAssignments), zap.Int("count", dropped))
			}
		}
	}

	if data, ok := p.read(ctx, KeyNotes); ok {
		if notes, err := decodeNotes(data); err != nil {
			p.malformed(KeyNotes, err)
		} else {
			snap.Notes = notes
		}
	}
	return snap
}

func (p *persistence) read(ctx context.Context, key string) ([]byte, bool) {
	if ctx.Err() != nil || !p.d.Has(key) {
		return nil, false
	}
	data, err := p.readDirect(key)
	if err != nil {
		p.log.Warn("read failed, using default", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return data, true
}

// readDirect reads key from disk, never from diskv's in-process cache.
func (p *persistence) readDirect(key string) ([]byte, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (p *persistence) malformed(key string, err error) {
	p.log.Warn("malformed snapshot, using default", zap.String("key", key), zap.Error(err))
}

func (p *persistence) Save(snap planner.Snapshot) error {
	todos := snap.Todos
	if todos == nil {
		todos = []todo.Entry{}
	}
	assignments := make([][]todo.ID, len(snap.Assignments))
	for s, seq := range snap.Assignments {
		if seq == nil {
			seq = []todo.ID{}
		}
		assignments[s] = seq
	}
	notes := make([]string, slot.HoursPerDay)
	copy(notes, snap.Notes)

	for _, kv := range []struct {
		key string
		val any
	}{
		{KeyTodos, todos},
		{KeyAssignments, assignments},
		{KeyNotes, notes},
	} {
		data, err := json.Marshal(kv.val)
		if err != nil {
			return fmt.Errorf("store: encode %s: %w", kv.key, err)
		}
		if err := p.d.Write(kv.key, data); err != nil {
			return fmt.Errorf("store: write %s: %w", kv.key, err)
		}
	}
	return nil
}

func decodeTodos(data []byte) ([]todo.Entry, error) {
	var stored []storedTodo
	if err := json.Unmarshal(data, &stored); err != nil {
		// Plain label lists predate completion flags.
		var labels []string
		if err2 := json.Unmarshal(data, &labels); err2 != nil {
			return nil, err
		}
		out := make([]todo.Entry, 0, len(labels))
		for _, l := range labels {
			out = append(out, todo.Entry{ID: todo.NewID(), Label: l})
		}
		return out, nil
	}
	out := make([]todo.Entry, 0, len(stored))
	seen := make(map[todo.ID]bool, len(stored))
	for _, s := range stored {
		label := s.Label
		if label == "" {
			label = s.Text
		}
		id := s.ID
		if id == "" || seen[id] {
			id = todo.NewID()
		}
		seen[id] = true
		out = append(out, todo.Entry{ID: id, Label: label, Completed: s.Completed})
	}
	return out, nil
}

// decodeAssignments accepts an array with one sequence per slot or an object
// keyed by slot index. Values are todo IDs, or labels written by older
// versions; labels resolve to the first todo item carrying them.
func decodeAssignments(data []byte, g slot.Granularity, registry *todo.Registry) ([][]todo.ID, int, error) {
	raw := make([][]string, g.Slots())
	var list [][]string
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) != g.Slots() {
			return nil, 0, fmt.Errorf("store: %d slots stored, grid has %d", len(list), g.Slots())
		}
		copy(raw, list)
	} else {
		var byIndex map[string][]string
		if err2 := json.Unmarshal(data, &byIndex); err2 != nil {
			return nil, 0, err
		}
		for k, seq := range byIndex {
			idx, err := strconv.Atoi(k)
			if err != nil || idx < 0 || idx >= g.Slots() {
				return nil, 0, fmt.Errorf("store: slot key %q outside grid of %d", k, g.Slots())
			}
			raw[idx] = seq
		}
	}

	dropped := 0
	out := make([][]todo.ID, g.Slots())
	for s, seq := range raw {
		out[s] = make([]todo.ID, 0, len(seq))
		for _, v := range seq {
			id := todo.ID(v)
			if !registry.Contains(id) {
				idx, ok := registry.FindLabel(v)
				if !ok {
					dropped++
					continue
				}
				id = registry.At(idx).ID
			}
			out[s] = append(out[s], id)
		}
	}
	return out, dropped, nil
}

func decodeNotes(data []byte) ([]string, error) {
	var notes []string
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, err
	}
	if len(notes) > slot.HoursPerDay {
		return nil, fmt.Errorf("store: %d hour notes stored, day has %d", len(notes), slot.HoursPerDay)
	}
	out := make([]string, slot.HoursPerDay)
	copy(out, notes)
	return out, nil
}

func flatTransform(string) []string {
	return []string{}
}
