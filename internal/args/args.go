// SPDX-License-Identifier: MPL-2.0

package args

import "strings"

const (
	// KindString tags a Value holding free-form text.
	KindString Kind = iota + 1
	// KindBool tags a Value holding a boolean.
	KindBool

	flagPrefix = "--"
	separator  = "="
)

type (
	// Kind identifies which variant a Value holds.
	Kind int

	// Value is a tagged variant: either a string or a boolean.
	// The zero Value is invalid and reports Kind() == 0.
	Value struct {
		kind Kind
		str  string
		b    bool
	}

	// Map is the parsed argument map, keyed by flag name without the leading "--".
	Map map[string]Value
)

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Parse converts argv into a Map. Later duplicates override earlier ones.
func Parse(argv []string) Map {
	m := make(Map)
	for _, arg := range argv {
		if !strings.HasPrefix(arg, flagPrefix) {
			continue
		}

		key, raw, hasValue := strings.Cut(strings.TrimPrefix(arg, flagPrefix), separator)
		if key == "" {
			continue
		}

		if !hasValue {
			m[key] = BoolValue(true)
			continue
		}
		m[key] = coerce(raw)
	}
	return m
}

// coerce applies the one typing rule of the grammar: exactly "true" or
// "false" become booleans, everything else stays a string.
func coerce(raw string) Value {
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	default:
		return StringValue(raw)
	}
}

// Has reports whether key was present on the command line.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// GetString returns the string value for key. It reports false when the key is
// missing or holds a boolean.
func (m Map) GetString(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetBool returns the boolean value for key. It reports false when the key is
// missing or holds a string.
func (m Map) GetBool(key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// IsTrue reports whether key holds the boolean true.
func (m Map) IsTrue(key string) bool {
	b, ok := m.GetBool(key)
	return ok && b
}

// First returns the value of the first key in keys that is present.
func (m Map) First(keys ...string) (Value, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return Value{}, false
}
