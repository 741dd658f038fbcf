package value

import (
	"sort"
	"sync"

	"github.com/npillmayer/weft/lifecycle"
)

// Entry is a single name/value pair of a mapping.
type Entry struct {
	Key   string
	Value any
}

// Entries is an ordered mapping of names to values.
type Entries []Entry

// FromMap converts a Go map into entries, sorted by key.
func FromMap(m map[string]any) Entries {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make(Entries, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Value: m[k]}
	}
	return entries
}

// MapReceiver receives the changes of a streaming mapping.
type MapReceiver interface {
	Init(Entries)         // snapshot on subscription
	Set(Entries)          // entries added or changed
	Delete(keys []string) // entries removed
}

// MapSource is a streaming mapping of names to values.
type MapSource interface {
	SubscribeEntries(scope *lifecycle.Scope, recv MapReceiver)
}

// --- Map -------------------------------------------------------------------

// Map is a streaming mapping which keeps its entries in insertion order.
type Map struct {
	mu   sync.Mutex
	keys []string
	vals map[string]any
	subs subscribers[MapReceiver]
}

// NewMap creates a map from initial entries.
func NewMap(entries ...Entry) *Map {
	m := &Map{vals: make(map[string]any)}
	m.put(entries)
	return m
}

func (m *Map) put(entries Entries) {
	for _, e := range entries {
		if _, ok := m.vals[e.Key]; !ok {
			m.keys = append(m.keys, e.Key)
		}
		m.vals[e.Key] = e.Value
	}
}

// Get returns the value for key.
func (m *Map) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok
}

// Entries returns a snapshot of all entries, in insertion order.
func (m *Map) Entries() Entries {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make(Entries, len(m.keys))
	for i, k := range m.keys {
		entries[i] = Entry{Key: k, Value: m.vals[k]}
	}
	return entries
}

// Set adds or changes a single entry.
func (m *Map) Set(key string, v any) {
	m.SetAll(Entry{Key: key, Value: v})
}

// SetAll adds or changes several entries and emits them as one change.
func (m *Map) SetAll(entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	m.mu.Lock()
	m.put(entries)
	m.mu.Unlock()
	changed := append(Entries(nil), entries...)
	m.subs.each(func(r MapReceiver) { r.Set(changed) })
}

// Delete removes entries. Keys not present are ignored.
func (m *Map) Delete(keys ...string) {
	m.mu.Lock()
	var removed []string
	for _, k := range keys {
		if _, ok := m.vals[k]; !ok {
			continue
		}
		delete(m.vals, k)
		for i, kk := range m.keys {
			if kk == k {
				m.keys = append(m.keys[:i], m.keys[i+1:]...)
				break
			}
		}
		removed = append(removed, k)
	}
	m.mu.Unlock()
	if len(removed) > 0 {
		m.subs.each(func(r MapReceiver) { r.Delete(removed) })
	}
}

// SubscribeEntries is part of interface MapSource. The current entries are
// delivered to recv.Init right away.
func (m *Map) SubscribeEntries(scope *lifecycle.Scope, recv MapReceiver) {
	if m.subs.add(scope, recv) {
		recv.Init(m.Entries())
	}
}

// --- Record ----------------------------------------------------------------

// Record is a streaming associative record. It does not keep an insertion
// order; entries are reported in sorted key order.
type Record struct {
	mu   sync.Mutex
	vals map[string]any
	subs subscribers[MapReceiver]
}

// NewRecord creates a record from a Go map. The map is copied.
func NewRecord(fields map[string]any) *Record {
	r := &Record{vals: make(map[string]any, len(fields))}
	for k, v := range fields {
		r.vals[k] = v
	}
	return r
}

// Get returns the value of field key.
func (r *Record) Get(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vals[key]
	return v, ok
}

// Entries returns a snapshot of all fields, sorted by key.
func (r *Record) Entries() Entries {
	r.mu.Lock()
	defer r.mu.Unlock()
	return FromMap(r.vals)
}

// Set changes a field.
func (r *Record) Set(key string, v any) {
	r.mu.Lock()
	r.vals[key] = v
	r.mu.Unlock()
	changed := Entries{{Key: key, Value: v}}
	r.subs.each(func(rcv MapReceiver) { rcv.Set(changed) })
}

// Delete removes a field.
func (r *Record) Delete(key string) {
	r.mu.Lock()
	_, ok := r.vals[key]
	delete(r.vals, key)
	r.mu.Unlock()
	if ok {
		r.subs.each(func(rcv MapReceiver) { rcv.Delete([]string{key}) })
	}
}

// SubscribeEntries is part of interface MapSource.
func (r *Record) SubscribeEntries(scope *lifecycle.Scope, recv MapReceiver) {
	if r.subs.add(scope, recv) {
		recv.Init(r.Entries())
	}
}

var _ MapSource = &Map{}
var _ MapSource = &Record{}
