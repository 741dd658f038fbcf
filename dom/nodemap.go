package dom

import (
	"runtime"
	"sync"
	"weak"

	"golang.org/x/net/html"
)

// NodeMap is a map keyed weakly by DOM nodes: an entry does not keep its
// node alive, and it is dropped after the node has been garbage collected.
// Values must not reference their key node, otherwise the node never
// becomes unreachable.
//
// The zero value is ready to use. NodeMap is safe for concurrent use.
type NodeMap[V any] struct {
	mu      sync.Mutex
	entries map[weak.Pointer[html.Node]]nodeEntry[V]
}

// nodeEntry pairs a value with the cleanup registered for its node.
// The cleanup is stopped when the entry is deleted explicitly, so a node
// carries at most one registration per map.
type nodeEntry[V any] struct {
	value   V
	cleanup runtime.Cleanup
}

// Get returns the value stored for n.
func (m *NodeMap[V]) Get(n *html.Node) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[weak.Make(n)]
	return e.value, ok
}

// Set stores v for n.
func (m *NodeMap[V]) Set(n *html.Node, v V) {
	m.Update(n, func(V, bool) (V, bool) { return v, true })
}

// Update atomically replaces the value stored for n by f(old, present).
// If f returns keep=false, the entry is deleted.
func (m *NodeMap[V]) Update(n *html.Node, f func(old V, present bool) (v V, keep bool)) {
	key := weak.Make(n)
	m.mu.Lock()
	defer m.mu.Unlock()
	e, present := m.entries[key]
	v, keep := f(e.value, present)
	if !keep {
		if present {
			e.cleanup.Stop()
			delete(m.entries, key)
		}
		return
	}
	if m.entries == nil {
		m.entries = make(map[weak.Pointer[html.Node]]nodeEntry[V])
	}
	if !present {
		e.cleanup = runtime.AddCleanup(n, m.drop, key)
	}
	e.value = v
	m.entries[key] = e
}

// Delete removes the entry for n, if any.
func (m *NodeMap[V]) Delete(n *html.Node) {
	key := weak.Make(n)
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok {
		e.cleanup.Stop()
		delete(m.entries, key)
	}
}

// Len returns the number of entries.
func (m *NodeMap[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// drop runs after the key node has been collected.
func (m *NodeMap[V]) drop(key weak.Pointer[html.Node]) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
