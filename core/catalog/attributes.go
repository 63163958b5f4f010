package catalog

import (
	"encoding/json"
	"strings"
)

// Entry is a single key/value pair used to build an AttributeSet.
type Entry struct {
	Key   Key
	Value Value
}

// AttributeSet is an ordered mapping from attribute key to value plus an optional
// price range. It describes either an item's fixed attributes or search criteria.
//
// An AttributeSet is immutable once built; the zero value is an empty set with no
// price constraint.
type AttributeSet struct {
	keys     []Key
	entries  map[Key]Value
	minPrice *float64
	maxPrice *float64
}

// Option configures optional parts of an AttributeSet.
type Option func(*AttributeSet)

// WithPriceRange constrains matches to prices within [min, max], inclusive.
func WithPriceRange(min, max float64) Option {
	return func(s *AttributeSet) {
		s.minPrice = &min
		s.maxPrice = &max
	}
}

// WithMinPrice sets only the lower price bound.
func WithMinPrice(min float64) Option {
	return func(s *AttributeSet) {
		s.minPrice = &min
	}
}

// WithMaxPrice sets only the upper price bound.
func WithMaxPrice(max float64) Option {
	return func(s *AttributeSet) {
		s.maxPrice = &max
	}
}

// NewAttributeSet builds a set from entries in the given order.
// Entries with an invalid (zero) Value are ignored. A repeated key keeps its first
// position and takes the last value.
func NewAttributeSet(entries []Entry, opts ...Option) AttributeSet {
	s := AttributeSet{
		keys:    make([]Key, 0, len(entries)),
		entries: make(map[Key]Value, len(entries)),
	}
	for _, e := range entries {
		if e.Value.Kind() == KindInvalid {
			continue
		}
		if _, exists := s.entries[e.Key]; !exists {
			s.keys = append(s.keys, e.Key)
		}
		s.entries[e.Key] = e.Value
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Get returns the value stored for key. ok is false when the key carries no constraint.
func (s AttributeSet) Get(key Key) (Value, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (s AttributeSet) Has(key Key) bool {
	_, ok := s.entries[key]
	return ok
}

// Keys returns the keys in insertion order.
func (s AttributeSet) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (s AttributeSet) Entries() []Entry {
	out := make([]Entry, len(s.keys))
	for i, k := range s.keys {
		out[i] = Entry{Key: k, Value: s.entries[k]}
	}
	return out
}

// Len returns the number of stored keys.
func (s AttributeSet) Len() int { return len(s.keys) }

// IsEmpty reports whether the set has neither entries nor price bounds.
func (s AttributeSet) IsEmpty() bool {
	return len(s.keys) == 0 && s.minPrice == nil && s.maxPrice == nil
}

// MinPrice returns the lower price bound, if any.
func (s AttributeSet) MinPrice() (float64, bool) {
	if s.minPrice == nil {
		return 0, false
	}
	return *s.minPrice, true
}

// MaxPrice returns the upper price bound, if any.
func (s AttributeSet) MaxPrice() (float64, bool) {
	if s.maxPrice == nil {
		return 0, false
	}
	return *s.maxPrice, true
}

// PriceInRange reports whether price lies within the set's bounds. Bounds are
// inclusive; a missing bound is unbounded on that side. Contradictory bounds
// (min > max) are evaluated literally and admit nothing.
func (s AttributeSet) PriceInRange(price float64) bool {
	if s.minPrice != nil && price < *s.minPrice {
		return false
	}
	if s.maxPrice != nil && price > *s.maxPrice {
		return false
	}
	return true
}

// Describe renders one "Key: value" line per entry, in insertion order.
func (s AttributeSet) Describe() string {
	return s.DescribeWith(nil)
}

// DescribeWith is Describe with a hook to replace stored labels by display names.
// A nil display function leaves labels untouched.
func (s AttributeSet) DescribeWith(display func(key Key, label string) string) string {
	var b strings.Builder
	for i, k := range s.keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		v := s.entries[k]
		b.WriteString(k.String())
		b.WriteString(": ")
		if display == nil {
			b.WriteString(v.String())
			continue
		}
		b.WriteString(v.format(func(label string) string { return display(k, label) }))
	}
	return b.String()
}

// MarshalJSON encodes the entries as a JSON object in insertion order.
func (s AttributeSet) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.entries[k])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
