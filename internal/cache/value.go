package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the closed value domain of the cache: null, text, integer, or an
// object with string keys. Puzzle answers are Null (unsolved), Text, or Int;
// objects only appear as interior nodes of the document.
//
// The zero Value is Null.
type Value struct {
	kind Kind
	text string
	num  int64
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Object returns an object Value backed by fields. The map is not copied;
// the store relies on this to mutate interior nodes in place.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return Value{kind: KindObject, obj: fields}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the text content, if v is text.
func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

// Int64 returns the integer content, if v is an integer.
func (v Value) Int64() (int64, bool) {
	return v.num, v.kind == KindInt
}

// Fields returns the backing map, if v is an object.
func (v Value) Fields() (map[string]Value, bool) {
	return v.obj, v.kind == KindObject
}

// Key returns the string form of v used as a cache key, e.g. in the
// ["cached_submissions", part, key] path.
func (v Value) Key() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindObject:
		return fmt.Sprintf("%v", v.Interface())
	default:
		return "null"
	}
}

// Display returns the human-readable form of v used in reports.
func (v Value) Display() string {
	if v.kind == KindNull {
		return "none"
	}
	return v.Key()
}

// Interface converts v to the corresponding native Go value: nil, string,
// int64, or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return v.num
	case KindObject:
		m := make(map[string]any, len(v.obj))
		for k, child := range v.obj {
			m[k] = child.Interface()
		}
		return m
	default:
		return nil
	}
}

// Equal reports whether two values hold the same content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindInt:
		return v.num == other.num
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, child := range v.obj {
			o, ok := other.obj[k]
			if !ok || !child.Equal(o) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML lets `aoc cache show` dump documents with yaml.Marshal.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

func fromRaw(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return Text(t), nil
	case json.Number:
		n, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("cache values must be whole numbers, got %s", t)
		}
		return Int(n), nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, child := range t {
			cv, err := fromRaw(child)
			if err != nil {
				return Value{}, err
			}
			fields[k] = cv
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("unsupported cache value of type %T", raw)
	}
}
