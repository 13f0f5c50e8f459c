package describe

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// nullText is the rendering of the absence marker, both for a nil target
// and for nil field values.
const nullText = "null"

// renderText assembles TypeName[hash]{k=v,...}. hash already carries the
// symbol, or is empty when the identity segment is off.
func renderText(name, hash string, entries []Entry, sep, eq string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(hash)
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(e.Key)
		sb.WriteString(eq)
		sb.WriteString(e.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// valueText resolves a field value to its textual form. nil renders as
// "null". A value exposing its own renderer (fmt.Stringer) is asked to
// describe itself, which is the recursion path for nested describable
// values; everything else falls back to the generic %v form. Nothing here
// guards against reference cycles, so mutually-describing values recurse
// without bound.
func valueText(v any) string {
	if isNull(v) {
		return nullText
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// failureText renders an access failure as a {Kind:message} placeholder.
func failureText(err error) string {
	if ae, ok := err.(*AccessError); ok {
		return "{" + ae.Kind + ":" + ae.Msg + "}"
	}
	return "{" + reflect.TypeOf(err).String() + ":" + err.Error() + "}"
}

// isNull reports whether v is the absence marker: untyped nil, or a nil
// pointer, interface, map, slice, func, or channel.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// typeName derives the short display name of the target's type: pointers
// are unwrapped, generic instantiation parameters are stripped, and the
// package qualifier is dropped. Unnamed types fall back to their reflect
// string form.
func typeName(target any) string {
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// identityHex returns the identity fingerprint as lowercase hex. Pointer
// targets use the pointee address. Value targets are fingerprinted through
// a fresh addressable copy, so their identity is stable within one
// Generate call but not across calls.
func identityHex(target any) string {
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Pointer {
		return strconv.FormatUint(uint64(rv.Pointer()), 16)
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return strconv.FormatUint(uint64(p.Pointer()), 16)
}
