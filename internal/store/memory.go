package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory keeps collections as JSON blobs in a map. Used for tests; the
// record round-trips match the sqlite backend exactly.
type Memory struct {
	docs map[string][]byte
	mu   sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, name string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return loadDoc(m.docs, name, v)
}

func (m *Memory) Save(ctx context.Context, name string, v any) error {
	return m.Update(ctx, func(tx Tx) error {
		return tx.Save(name, v)
	})
}

func (m *Memory) Update(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage writes so a failed callback applies nothing.
	staged := make(map[string][]byte)
	if err := fn(&memoryTx{base: m.docs, staged: staged}); err != nil {
		return err
	}
	for name, doc := range staged {
		m.docs[name] = doc
	}
	return nil
}

func (m *Memory) Close() error { return nil }

type memoryTx struct {
	base   map[string][]byte
	staged map[string][]byte
}

func (t *memoryTx) Load(name string, v any) error {
	if doc, ok := t.staged[name]; ok {
		if err := json.Unmarshal(doc, v); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		return nil
	}
	return loadDoc(t.base, name, v)
}

func (t *memoryTx) Save(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	t.staged[name] = doc
	return nil
}

func loadDoc(docs map[string][]byte, name string, v any) error {
	doc, ok := docs[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(doc, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
