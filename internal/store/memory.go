package store

import (
	"context"
	"slices"
	"sync"
)

type memRecord struct {
	Record
	seq int64
}

// Memory is a Store kept in process memory. It backs tests and the
// "memory" database driver.
type Memory struct {
	mu      sync.RWMutex
	records map[Kind]map[string]*memRecord
	seq     int64
}

func NewMemory() *Memory {
	return &Memory{records: make(map[Kind]map[string]*memRecord)}
}

func (m *Memory) Create(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byName := m.records[rec.Kind]
	if byName == nil {
		byName = make(map[string]*memRecord)
		m.records[rec.Kind] = byName
	}
	if _, ok := byName[rec.Name]; ok {
		return ErrAlreadyExists
	}
	m.seq++
	byName[rec.Name] = &memRecord{Record: copyRecord(rec), seq: m.seq}
	return nil
}

func (m *Memory) Get(_ context.Context, kind Kind, name string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[kind][name]
	if !ok {
		return nil, ErrNotFound
	}
	rec := copyRecord(&r.Record)
	return &rec, nil
}

func (m *Memory) Update(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[rec.Kind][rec.Name]
	if !ok {
		return ErrNotFound
	}
	r.Parent = rec.Parent
	r.Deleted = rec.Deleted
	r.UpdateTime = rec.UpdateTime
	r.Payload = slices.Clone(rec.Payload)
	return nil
}

func (m *Memory) Delete(_ context.Context, kind Kind, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[kind][name]; !ok {
		return ErrNotFound
	}
	delete(m.records[kind], name)
	return nil
}

func (m *Memory) List(_ context.Context, kind Kind, opts ListOptions) ([]*Record, error) {
	m.mu.RLock()
	matched := make([]memRecord, 0, len(m.records[kind]))
	for _, r := range m.records[kind] {
		if opts.Parent != "" && r.Parent != opts.Parent {
			continue
		}
		if r.Deleted && !opts.ShowDeleted {
			continue
		}
		matched = append(matched, memRecord{Record: copyRecord(&r.Record), seq: r.seq})
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, func(a, b memRecord) int {
		if c := a.CreateTime.Compare(b.CreateTime); c != 0 {
			return c
		}
		return int(a.seq - b.seq)
	})
	if opts.Descending {
		slices.Reverse(matched)
	}
	out := make([]*Record, len(matched))
	for i := range matched {
		out[i] = &matched[i].Record
	}
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}

func copyRecord(rec *Record) Record {
	out := *rec
	out.Payload = slices.Clone(rec.Payload)
	return out
}
