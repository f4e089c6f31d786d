package statuspage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for Value accessors.
var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrNotObject       = errors.New("value is not a JSON object")
	ErrNotArray        = errors.New("value is not a JSON array")
	ErrIndexOutOfRange = errors.New("array index out of range")
	ErrWrongType       = errors.New("value has a different JSON type")
)

// ValueKind identifies which JSON type a Value holds.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the JSON types: object, array, string,
// number, bool, and null. It is the library's representation of
// dynamically-shaped JSON, with missing-key access surfacing as an
// explicit ErrKeyNotFound instead of a silent zero value.
//
// The zero Value is JSON null. Mapping from well-formed JSON is pure
// and total: conversion never fails once the bytes have parsed.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  map[string]Value
}

// ParseValue parses raw JSON into a Value. Malformed input yields a
// *ParseError; structurally valid JSON always maps successfully.
func ParseValue(data []byte) (Value, error) {
	var raw interface{}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return Value{}, &ParseError{Err: err, Body: data}
	}

	return fromInterface(raw), nil
}

func fromInterface(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}
	case bool:
		return Value{kind: KindBool, b: v}
	case float64:
		return Value{kind: KindNumber, num: v}
	case string:
		return Value{kind: KindString, str: v}
	case []interface{}:
		arr := make([]Value, len(v))
		for i, elem := range v {
			arr[i] = fromInterface(elem)
		}

		return Value{kind: KindArray, arr: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(v))
		for key, elem := range v {
			obj[key] = fromInterface(elem)
		}

		return Value{kind: KindObject, obj: obj}
	default:
		// json.Unmarshal into interface{} produces no other types.
		return Value{kind: KindNull}
	}
}

// Kind returns the JSON type this Value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Get returns the field named key of a JSON object. A missing key is
// ErrKeyNotFound; a non-object receiver is ErrNotObject.
func (v Value) Get(key string) (Value, error) {
	if v.kind != KindObject {
		return Value{}, fmt.Errorf("%w (got %s)", ErrNotObject, v.kind)
	}

	field, ok := v.obj[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return field, nil
}

// Has reports whether a JSON object has the named key.
func (v Value) Has(key string) bool {
	_, ok := v.obj[key]

	return v.kind == KindObject && ok
}

// Index returns element i of a JSON array, preserving source order.
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindArray {
		return Value{}, fmt.Errorf("%w (got %s)", ErrNotArray, v.kind)
	}

	if i < 0 || i >= len(v.arr) {
		return Value{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v.arr))
	}

	return v.arr[i], nil
}

// Len returns the number of elements of an array or fields of an
// object, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// StringValue returns the string a JSON string holds.
func (v Value) StringValue() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("%w: want string, got %s", ErrWrongType, v.kind)
	}

	return v.str, nil
}

// Float64 returns the numeric value of a JSON number.
func (v Value) Float64() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: want number, got %s", ErrWrongType, v.kind)
	}

	return v.num, nil
}

// Int returns the numeric value of a JSON number truncated to int64.
func (v Value) Int() (int64, error) {
	f, err := v.Float64()
	if err != nil {
		return 0, err
	}

	return int64(f), nil
}

// BoolValue returns the value of a JSON bool.
func (v Value) BoolValue() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: want bool, got %s", ErrWrongType, v.kind)
	}

	return v.b, nil
}

// Slice returns the elements of a JSON array in source order.
func (v Value) Slice() ([]Value, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("%w (got %s)", ErrNotArray, v.kind)
	}

	return v.arr, nil
}

// Map returns the fields of a JSON object.
func (v Value) Map() (map[string]Value, error) {
	if v.kind != KindObject {
		return nil, fmt.Errorf("%w (got %s)", ErrNotObject, v.kind)
	}

	return v.obj, nil
}

// Interface converts the Value back to the plain Go representation
// json.Unmarshal would produce.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		arr := make([]interface{}, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = elem.Interface()
		}

		return arr
	case KindObject:
		obj := make(map[string]interface{}, len(v.obj))
		for key, elem := range v.obj {
			obj[key] = elem.Interface()
		}

		return obj
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("marshaling value: %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler, so Value can be used as a
// field type for free-form API payloads such as incident metadata.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
