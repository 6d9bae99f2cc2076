package validator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Payload is the accumulated error payload of one value.
// Its shape mirrors the value it describes: leaf errors for scalars,
// index-aligned items for sequences (nil marks a clean position),
// and per-key payloads for mappings.
// Alternatives holds one payload per failed Either branch; it describes the
// value as a whole and is never aligned with Items.
type Payload struct {
	Errors       []*ValidationError
	Items        []*Payload
	Keys         map[string]*Payload
	Alternatives []*Payload
}

// Add folds one validator failure into the payload.
// Structural failures are merged by shape; leaf failures are appended in order.
func (p *Payload) Add(err *ValidationError) {
	if err == nil {
		return
	}
	if err.Nested != nil {
		p.Merge(err.Nested)
		return
	}
	p.Errors = append(p.Errors, err)
}

// Merge folds other into p, aligning items by index and keys by name.
// Alternatives are appended as they come.
func (p *Payload) Merge(other *Payload) {
	if other == nil {
		return
	}
	p.Errors = append(p.Errors, other.Errors...)
	p.Alternatives = append(p.Alternatives, other.Alternatives...)

	if len(other.Items) > 0 {
		for len(p.Items) < len(other.Items) {
			p.Items = append(p.Items, nil)
		}
		for i, item := range other.Items {
			if item == nil {
				continue
			}
			if p.Items[i] == nil {
				p.Items[i] = &Payload{}
			}
			p.Items[i].Merge(item)
		}
	}

	for k, v := range other.Keys {
		if v == nil {
			continue
		}
		if p.Keys == nil {
			p.Keys = make(map[string]*Payload, len(other.Keys))
		}
		if p.Keys[k] == nil {
			p.Keys[k] = &Payload{}
		}
		p.Keys[k].Merge(v)
	}
}

// IsEmpty reports whether the payload carries no failure at any depth.
func (p *Payload) IsEmpty() bool {
	if p == nil {
		return true
	}
	if len(p.Errors) > 0 {
		return false
	}
	for _, item := range p.Items {
		if !item.IsEmpty() {
			return false
		}
	}
	for _, alt := range p.Alternatives {
		if !alt.IsEmpty() {
			return false
		}
	}
	for _, v := range p.Keys {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

// Messages returns the leaf messages recorded directly on this payload.
func (p *Payload) Messages() []string {
	if p == nil || len(p.Errors) == 0 {
		return nil
	}
	out := make([]string, len(p.Errors))
	for i, err := range p.Errors {
		out[i] = err.Message
	}
	return out
}

// Item returns the payload recorded for sequence index i, or nil.
func (p *Payload) Item(i int) *Payload {
	if p == nil || i < 0 || i >= len(p.Items) {
		return nil
	}
	return p.Items[i]
}

// Alternative returns the payload recorded for Either branch i, or nil.
func (p *Payload) Alternative(i int) *Payload {
	if p == nil || i < 0 || i >= len(p.Alternatives) {
		return nil
	}
	return p.Alternatives[i]
}

// Key returns the payload recorded for mapping key k, or nil.
func (p *Payload) Key(k string) *Payload {
	if p == nil {
		return nil
	}
	return p.Keys[k]
}

func (p *Payload) String() string {
	flat := p.flatten("", nil)
	parts := make([]string, 0, len(flat))
	for _, pe := range flat {
		if pe.Path == "" {
			parts = append(parts, strings.Join(pe.Messages, ", "))
			continue
		}
		parts = append(parts, pe.Path+": "+strings.Join(pe.Messages, ", "))
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON renders leaf-only payloads as a list of messages, sequence-only
// payloads as an index-aligned list, and mapping-only payloads as an object.
// Any other combination renders as an object with "_messages", "_items" and
// "_either" entries next to the mapping keys.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	hasErrors, hasItems, hasKeys := len(p.Errors) > 0, len(p.Items) > 0, len(p.Keys) > 0
	hasAlts := len(p.Alternatives) > 0

	if !hasAlts {
		switch {
		case hasErrors && !hasItems && !hasKeys:
			return json.Marshal(p.Messages())
		case hasItems && !hasErrors && !hasKeys:
			return json.Marshal(p.Items)
		case !hasItems && !hasErrors:
			if !hasKeys {
				return []byte("[]"), nil
			}
			return json.Marshal(p.Keys)
		}
	}

	out := make(map[string]any, len(p.Keys)+3)
	for k, v := range p.Keys {
		out[k] = v
	}
	if hasErrors {
		out["_messages"] = p.Messages()
	}
	if hasItems {
		out["_items"] = p.Items
	}
	if hasAlts {
		out["_either"] = p.Alternatives
	}
	return json.Marshal(out)
}

// PathError is one flattened entry of an error tree.
type PathError struct {
	Path     string
	Messages []string
}

func (p *Payload) flatten(prefix string, out []PathError) []PathError {
	if p == nil {
		return out
	}
	if len(p.Errors) > 0 {
		out = append(out, PathError{Path: prefix, Messages: p.Messages()})
	}
	for i, item := range p.Items {
		out = item.flatten(prefix+"["+strconv.Itoa(i)+"]", out)
	}
	for i, alt := range p.Alternatives {
		out = alt.flatten(prefix+"<either "+strconv.Itoa(i)+">", out)
	}
	for _, k := range sortedKeys(p.Keys) {
		out = p.Keys[k].flatten(joinPath(prefix, k), out)
	}
	return out
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(m map[string]*Payload) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tree is the error tree of a form: field name to payload.
// Clean fields are absent; a present entry is never empty.
type Tree map[string]*Payload

func (t Tree) Error() string {
	if len(t) == 0 {
		return ErrValidationFailed.Error()
	}
	flat := t.Flatten()
	parts := make([]string, 0, len(flat))
	for _, pe := range flat {
		parts = append(parts, fmt.Sprintf("%s: %s", pe.Path, strings.Join(pe.Messages, ", ")))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(tree, ErrValidationFailed) match.
func (t Tree) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether field has errors.
func (t Tree) Has(field string) bool {
	return !t[field].IsEmpty()
}

// Get returns the leaf messages recorded directly on field.
func (t Tree) Get(field string) []string {
	return t[field].Messages()
}

// Fields returns the names of failing fields in lexical order.
func (t Tree) Fields() []string {
	return sortedKeys(t)
}

func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

// Flatten lists every leaf failure with its value path,
// e.g. "children[1].children[0].id". Either branches are marked as
// "value<either 1>".
func (t Tree) Flatten() []PathError {
	var out []PathError
	for _, k := range t.Fields() {
		out = t[k].flatten(k, out)
	}
	return out
}

// Messages returns the leaf messages recorded at a flattened path.
func (t Tree) Messages(path string) []string {
	for _, pe := range t.Flatten() {
		if pe.Path == path {
			return pe.Messages
		}
	}
	return nil
}

// Payload wraps the tree as a mapping-shaped payload.
func (t Tree) Payload() *Payload {
	if len(t) == 0 {
		return nil
	}
	keys := make(map[string]*Payload, len(t))
	for k, v := range t {
		keys[k] = v
	}
	return &Payload{Keys: keys}
}
