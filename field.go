package describe

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Visibility is the declared access tier of a field.
//
// Go only distinguishes exported and unexported fields, so the default
// mapping is exported → Public and unexported → Private. The intermediate
// tiers exist for types ported from languages with richer access control
// and are declared through the `describe` struct tag.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Package
	Private
)

// String returns the tier name as it appears in the struct tag.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Package:
		return "package"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Modifiers is a bit set of field modifiers, orthogonal to visibility.
// Go fields carry none of these natively; they are declared through the
// `describe` struct tag.
type Modifiers uint8

const (
	Final Modifiers = 1 << iota
	Transient
	Volatile
)

// Has reports whether all bits in m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Field describes one inspectable field of a target value. Read is the
// fallible accessor: reading twice without mutating the target yields an
// equal value or the same class of failure.
type Field struct {
	Name       string
	Type       reflect.Type
	Visibility Visibility
	Modifiers  Modifiers
	Read       func() (any, error)
}

// FieldSource discovers the describable fields of a target value.
// The reflect-based default is used unless [Describer.Source] overrides it.
type FieldSource interface {
	// Fields returns the target's fields in natural (declaration) order.
	// Implementations return nil for targets that have no fields.
	Fields(target any) []Field
}

// AccessError is the failure produced when a field's value cannot be read.
// It never escapes Generate; included-but-unreadable fields render as a
// {Kind:message} placeholder instead.
type AccessError struct {
	Kind string
	Msg  string
}

func (e *AccessError) Error() string { return e.Kind + ": " + e.Msg }

// TagKey is the struct tag consulted for visibility tiers and modifiers,
// e.g. `describe:"protected,final"`.
const TagKey = "describe"

// Type returns the reflect.Type of T. It is shorthand for type-based rules:
//
//	inc.EnsureType(describe.Type[bool]())
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// defaultSource is the reflect-based FieldSource used by New.
var defaultSource FieldSource = reflectSource{}

type reflectSource struct{}

// Fields walks the target's struct fields in declaration order. Pointers are
// dereferenced first; non-struct targets have no fields. Unexported fields
// are read through an addressable shadow copy, so private tiers are fully
// inspectable without the caller relaxing anything.
func (reflectSource) Fields(target any) []Field {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if !v.CanAddr() {
		shadow := reflect.New(v.Type()).Elem()
		shadow.Set(v)
		v = shadow
	}

	t := v.Type()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		vis := Public
		if !sf.IsExported() {
			vis = Private
		}
		var mods Modifiers
		if tag, ok := sf.Tag.Lookup(TagKey); ok {
			vis, mods = parseTag(tag, vis)
		}
		fields = append(fields, Field{
			Name:       sf.Name,
			Type:       sf.Type,
			Visibility: vis,
			Modifiers:  mods,
			Read:       reader(sf.Name, v.Field(i)),
		})
	}
	return fields
}

// reader builds the accessor for a single field value. Exported fields go
// through the ordinary interface path; unexported ones are re-pointed via
// unsafe, which requires addressability.
func reader(name string, fv reflect.Value) func() (any, error) {
	return func() (any, error) {
		if fv.CanInterface() {
			return fv.Interface(), nil
		}
		if !fv.CanAddr() {
			return nil, &AccessError{
				Kind: "Unaddressable",
				Msg:  fmt.Sprintf("cannot read unexported field %s of non-addressable value", name),
			}
		}
		return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem().Interface(), nil
	}
}

// parseTag interprets a `describe` tag value. A tier token replaces the
// default tier; modifier tokens accumulate. Unknown tokens are ignored.
func parseTag(tag string, vis Visibility) (Visibility, Modifiers) {
	var mods Modifiers
	for _, tok := range strings.Split(tag, ",") {
		switch strings.TrimSpace(tok) {
		case "public":
			vis = Public
		case "protected":
			vis = Protected
		case "package":
			vis = Package
		case "private":
			vis = Private
		case "final":
			mods |= Final
		case "transient":
			mods |= Transient
		case "volatile":
			mods |= Volatile
		}
	}
	return vis, mods
}
