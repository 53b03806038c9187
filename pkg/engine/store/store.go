// Package store provides the per-location persistent key/value storage that
// location state (puzzle slots, spawn registries) is written to.
package store

import (
	"sort"
	"strings"
)

// Store is a string key/value store scoped to one location.
// Values survive save/reload when the owning Book is saved.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
	Contains(key string) bool
}

// Memory is an in-memory Store
type Memory struct {
	data map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value stored under key
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Set stores value under key
func (m *Memory) Set(key, value string) {
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
}

// Remove deletes key. Removing a missing key is a no-op.
func (m *Memory) Remove(key string) {
	delete(m.data, key)
}

// Contains returns true if key is present
func (m *Memory) Contains(key string) bool {
	_, ok := m.data[key]
	return ok
}

// Len returns the number of stored keys
func (m *Memory) Len() int {
	return len(m.data)
}

// Keys returns the stored keys with the given prefix, sorted
func (m *Memory) Keys(prefix string) []string {
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the stored data
func (m *Memory) Snapshot() map[string]string {
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

// Prefixed scopes a Store to keys starting with a fixed prefix.
// Keys passed to it are relative to the prefix.
type Prefixed struct {
	Prefix string
	Inner  Store
}

func (p Prefixed) Get(key string) (string, bool) { return p.Inner.Get(p.Prefix + key) }
func (p Prefixed) Set(key, value string)         { p.Inner.Set(p.Prefix+key, value) }
func (p Prefixed) Remove(key string)             { p.Inner.Remove(p.Prefix + key) }
func (p Prefixed) Contains(key string) bool      { return p.Inner.Contains(p.Prefix + key) }
