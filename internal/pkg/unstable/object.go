// Package unstable provides loosely-typed access to Hypixel API payloads.
//
// Fields in these payloads come and go without notice and frequently change
// type between releases, so every getter here is tolerant of missing keys and
// only fails when a value is present but cannot possibly be what the caller
// asked for.
package unstable

import (
	"github.com/tidwall/gjson"

	"exusiai.dev/hystats/internal/pkg/hyerr"
)

// Object is an immutable view over a single JSON value.
type Object struct {
	raw gjson.Result
}

func New(raw gjson.Result) Object {
	return Object{raw: raw}
}

// Parse validates data as JSON and wraps the parsed value.
func Parse(data []byte) (Object, error) {
	if !gjson.ValidBytes(data) {
		return Object{}, hyerr.ErrInvalidPayload
	}
	return New(gjson.ParseBytes(data)), nil
}

// Raw returns the wrapped JSON value.
func (o Object) Raw() gjson.Result {
	return o.raw
}

// Property returns the member named name. Keys are compared literally, so
// names containing gjson path characters such as '.' or '*' are safe.
// The zero Result is returned when the member does not exist or the wrapped
// value is not an object.
func (o Object) Property(name string) gjson.Result {
	var found gjson.Result
	if !o.raw.IsObject() {
		return found
	}
	o.raw.ForEach(func(key, value gjson.Result) bool {
		if key.Str == name {
			found = value
			return false
		}
		return true
	})
	return found
}

func (o Object) HasProperty(name string) bool {
	return o.Property(name).Exists()
}

// ArrayProperty returns the elements of the array named name. A missing or
// null member yields an empty slice; any other non-array value yields an
// error matching hyerr.ErrPropertyType.
func (o Object) ArrayProperty(name string) ([]gjson.Result, error) {
	v := o.Property(name)
	if absent(v) {
		return []gjson.Result{}, nil
	}
	if !v.IsArray() {
		return nil, hyerr.NewPropertyType(name, "array", Kind(v))
	}
	return v.Array(), nil
}

// ObjectProperty returns the object named name, with the same missing/null
// handling as ArrayProperty.
func (o Object) ObjectProperty(name string) (Object, error) {
	v := o.Property(name)
	if absent(v) {
		return New(gjson.Parse("{}")), nil
	}
	if !v.IsObject() {
		return Object{}, hyerr.NewPropertyType(name, "object", Kind(v))
	}
	return New(v), nil
}

func (o Object) StringProperty(name string, def string) string {
	v := o.Property(name)
	if absent(v) {
		return def
	}
	return v.String()
}

func (o Object) IntProperty(name string, def int64) int64 {
	v := o.Property(name)
	if absent(v) {
		return def
	}
	return v.Int()
}

func (o Object) FloatProperty(name string, def float64) float64 {
	v := o.Property(name)
	if absent(v) {
		return def
	}
	return v.Float()
}

func (o Object) BoolProperty(name string, def bool) bool {
	v := o.Property(name)
	if absent(v) {
		return def
	}
	return v.Bool()
}

// Kind names the JSON kind of v as used in error messages.
func Kind(v gjson.Result) string {
	switch {
	case !v.Exists():
		return "missing"
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	}
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	default:
		return "null"
	}
}

func absent(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}
