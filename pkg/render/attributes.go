package render

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-formextras/pkg/policy"
)

const classKey = "class"

// Attributes is a render-attribute bag keyed by element handle. Values for a
// key accumulate, mirroring engines where adding an attribute twice appends
// to it, so callers that want overwrite semantics remove first. Class tokens
// are deduplicated per handle.
//
// Attributes is not safe for concurrent mutation; a bag belongs to one render
// pass.
type Attributes struct {
	elements map[string]*element
}

type element struct {
	keys   []string
	values map[string][]string
}

// NewAttributes returns an empty bag.
func NewAttributes() *Attributes {
	return &Attributes{elements: make(map[string]*element)}
}

func (a *Attributes) element(handle string) *element {
	if a.elements == nil {
		a.elements = make(map[string]*element)
	}
	el, ok := a.elements[handle]
	if !ok {
		el = &element{values: make(map[string][]string)}
		a.elements[handle] = el
	}
	return el
}

func (el *element) add(key string, values ...string) {
	if _, exists := el.values[key]; !exists {
		el.keys = append(el.keys, key)
	}
	el.values[key] = append(el.values[key], values...)
}

// AddClass appends class tokens to handle, skipping blanks and tokens already
// present.
func (a *Attributes) AddClass(handle string, tokens ...string) {
	var keep []string
	var existing []string
	if el, ok := a.elements[handle]; ok {
		existing = el.values[classKey]
	}
	seen := make(map[string]struct{}, len(existing)+len(tokens))
	for _, token := range existing {
		seen[token] = struct{}{}
	}
	for _, token := range tokens {
		token = policy.Trim(token)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keep = append(keep, token)
	}
	if len(keep) == 0 {
		return
	}
	a.element(handle).add(classKey, keep...)
}

// SetAttribute appends value to key on handle. Keys that are not valid
// attribute names are ignored.
func (a *Attributes) SetAttribute(handle, key, value string) {
	if !policy.ValidAttributeName(key) {
		return
	}
	a.element(handle).add(key, value)
}

// RemoveAttribute drops key from handle.
func (a *Attributes) RemoveAttribute(handle, key string) {
	el, ok := a.elements[handle]
	if !ok {
		return
	}
	if _, exists := el.values[key]; !exists {
		return
	}
	delete(el.values, key)
	for i, existing := range el.keys {
		if existing == key {
			el.keys = append(el.keys[:i], el.keys[i+1:]...)
			break
		}
	}
}

// Values returns a copy of the values stored for key on handle.
func (a *Attributes) Values(handle, key string) []string {
	el, ok := a.elements[handle]
	if !ok {
		return nil
	}
	values, ok := el.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Has reports whether handle carries key.
func (a *Attributes) Has(handle, key string) bool {
	el, ok := a.elements[handle]
	if !ok {
		return false
	}
	_, exists := el.values[key]
	return exists
}

// Keys lists the attribute keys of handle in insertion order.
func (a *Attributes) Keys(handle string) []string {
	el, ok := a.elements[handle]
	if !ok {
		return nil
	}
	return append([]string(nil), el.keys...)
}

// Handles lists every handle holding at least one attribute, sorted.
func (a *Attributes) Handles() []string {
	names := make([]string, 0, len(a.elements))
	for name, el := range a.elements {
		if len(el.keys) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the attributes of handle as ` key="v1 v2"` pairs in
// insertion order, escaping values.
func (a *Attributes) String(handle string) string {
	el, ok := a.elements[handle]
	if !ok {
		return ""
	}
	var builder strings.Builder
	for _, key := range el.keys {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(strings.Join(el.values[key], " ")))
		builder.WriteByte('"')
	}
	return builder.String()
}

// Snapshot returns a deep copy of the bag for assertions and serialisation.
func (a *Attributes) Snapshot() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(a.elements))
	for handle, el := range a.elements {
		if len(el.keys) == 0 {
			continue
		}
		attrs := make(map[string][]string, len(el.keys))
		for _, key := range el.keys {
			attrs[key] = append([]string(nil), el.values[key]...)
		}
		out[handle] = attrs
	}
	return out
}
