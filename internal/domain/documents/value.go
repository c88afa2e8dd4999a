package documents

import "encoding/json"

type Kind int

const (
	KindScalar Kind = iota
	KindObject
)

// Value is either a scalar string or a one-level object of named strings.
// Template field sources and interpolation results both use it, so there is
// no loosely-typed map access anywhere in the engine.
type Value struct {
	kind   Kind
	scalar string
	fields map[string]string
}

func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func Object(fields map[string]string) Value {
	return Value{kind: KindObject, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }

// Scalar returns the scalar payload; ok is false for object values.
func (v Value) Scalar() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// Field looks up a nested value by name; ok is false for scalar values and
// for names the object does not carry.
func (v Value) Field(name string) (string, bool) {
	if v.kind != KindObject {
		return "", false
	}
	s, ok := v.fields[name]
	return s, ok
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindObject {
		return json.Marshal(v.fields)
	}
	return json.Marshal(v.scalar)
}

// Source maps template keys to values. Top-level keys hold scalars, dotted
// keys resolve through an object stored under the key's first segment.
type Source map[string]Value

// Fields is the merged interpolation result consumed by the document preview.
type Fields map[string]Value
