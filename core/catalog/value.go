package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindInvalid is the zero Value.
	KindInvalid Kind = iota
	// KindScalar holds exactly one label.
	KindScalar
	// KindMulti holds a set of labels.
	KindMulti
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMulti:
		return "multi"
	default:
		return "invalid"
	}
}

// Value is the tagged union stored per attribute: a single label or a set of labels.
//
// Multi values remember the order in which labels were first added so that
// descriptions stay stable; membership ignores order.
type Value struct {
	kind   Kind
	label  string
	labels []string
	set    map[string]struct{}
}

// Scalar returns a single-label value.
func Scalar(label string) Value {
	return Value{kind: KindScalar, label: label}
}

// Multi returns a set value. Duplicate labels are collapsed.
func Multi(labels ...string) Value {
	v := Value{
		kind:   KindMulti,
		labels: make([]string, 0, len(labels)),
		set:    make(map[string]struct{}, len(labels)),
	}
	for _, l := range labels {
		if _, dup := v.set[l]; dup {
			continue
		}
		v.set[l] = struct{}{}
		v.labels = append(v.labels, l)
	}
	return v
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsMulti reports whether v is a set value.
func (v Value) IsMulti() bool { return v.kind == KindMulti }

// Label returns the scalar label, or "" for a set value.
func (v Value) Label() string {
	if v.kind == KindScalar {
		return v.label
	}
	return ""
}

// Labels returns the labels held by v: one for a scalar, all of them (first-seen order) for a set.
func (v Value) Labels() []string {
	switch v.kind {
	case KindScalar:
		return []string{v.label}
	case KindMulti:
		out := make([]string, len(v.labels))
		copy(out, v.labels)
		return out
	default:
		return nil
	}
}

// Contains reports whether label is held by v.
func (v Value) Contains(label string) bool {
	switch v.kind {
	case KindScalar:
		return v.label == label
	case KindMulti:
		_, ok := v.set[label]
		return ok
	default:
		return false
	}
}

// Len returns the number of labels held by v.
func (v Value) Len() int {
	switch v.kind {
	case KindScalar:
		return 1
	case KindMulti:
		return len(v.labels)
	default:
		return 0
	}
}

// Equal reports whether two values hold the same variant and the same labels.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.label == o.label
	case KindMulti:
		if len(v.set) != len(o.set) {
			return false
		}
		for l := range v.set {
			if _, ok := o.set[l]; !ok {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders a scalar as its label and a set as "[a, b]".
func (v Value) String() string {
	return v.format(func(s string) string { return s })
}

func (v Value) format(display func(string) string) string {
	switch v.kind {
	case KindScalar:
		return display(v.label)
	case KindMulti:
		parts := make([]string, len(v.labels))
		for i, l := range v.labels {
			parts[i] = display(l)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// MarshalJSON encodes a scalar as a JSON string and a set as a JSON array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.Marshal(v.label)
	case KindMulti:
		return json.Marshal(v.labels)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON string into a scalar and a JSON array into a set.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*v = Scalar(label)
		return nil
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return fmt.Errorf("attribute value must be a string or an array of strings: %w", err)
	}
	*v = Multi(labels...)
	return nil
}
