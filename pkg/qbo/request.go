// =============================================================================
// QBO Request Builder - Request Mapping
// =============================================================================
//
// Request is the only runtime state a builder owns: an insertion-ordered
// mapping from QBO field name to value. Values are one of:
//   - a primitive (string, number, bool)
//   - a normalized date string (see ConvertDate)
//   - a nested *Request (another builder's snapshot)
//   - a []any sequence of nested snapshots (Line, LinkedTxn, TaxRateDetails...)
//
// SERIALIZATION:
//   Keys are written in insertion order. The separators match the reference
//   request bodies (", " between members and ": " after keys) so that output
//   is byte-stable for identical input.
//
// =============================================================================

package qbo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request is an ordered field-name -> value mapping.
// The zero value is not usable; create one with NewRequest.
type Request struct {
	keys   []string
	values map[string]any
}

// NewRequest returns an empty Request.
func NewRequest() *Request {
	return &Request{
		values: make(map[string]any),
	}
}

// Set writes value under key. A key that already exists keeps its position.
func (r *Request) Set(key string, value any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Request) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Append adds value to the sequence stored under key, creating the sequence
// when the key is absent. It fails if key holds something other than a sequence.
func (r *Request) Append(key string, value any) error {
	current, exists := r.values[key]
	if !exists {
		r.Set(key, []any{value})
		return nil
	}

	list, ok := current.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a sequence (got %T)", key, current)
	}
	r.values[key] = append(list, value)
	return nil
}

// Keys returns the field names in insertion order.
func (r *Request) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Request) Len() int {
	return len(r.keys)
}

// Clone returns a deep copy. Nested requests and sequences are copied so the
// clone shares no mutable state with the receiver.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	out := &Request{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]any, len(r.values)),
	}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Request:
		return t.Clone()
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = cloneValue(item)
		}
		return list
	default:
		return v
	}
}

// Map converts the request into plain nested maps and slices, dropping order.
func (r *Request) Map() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		out[k] = plainValue(r.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Request:
		return t.Map()
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = plainValue(item)
		}
		return list
	default:
		return v
	}
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (r *Request) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// ENCODING
// =============================================================================

func (r *Request) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := encodeScalar(buf, k); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := encodeValue(buf, r.values[k]); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Request:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		return t.encode(buf)
	case []any:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return encodeScalar(buf, v)
	}
}

func encodeScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder terminates every value with a newline.
	buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
	return nil
}
