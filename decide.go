package describe

import (
	"reflect"
	"slices"
)

// decide applies the policy to one field. ok reports whether the read
// succeeded; value-based rules only ever match successful reads.
//
// Precedence, first match wins:
//  1. value in excludeValues
//  2. name in excludeNames, or type in excludeTypes
//  3. exclude name+type map, or exclude name+type+value map
//  4. value in ensureValues
//  5. name in ensureNames, or type in ensureTypes
//  6. ensure name+type map, or ensure name+type+value map
//  7. visibility flags, narrowed by the keep flags
func decide(inc *Include, f Field, val any, ok bool) bool {
	if ok && containsValue(inc.excludeValues, val) {
		return false
	}
	if slices.Contains(inc.excludeNames, f.Name) || slices.Contains(inc.excludeTypes, f.Type) {
		return false
	}
	if matchesFieldRule(inc.excludeFields, inc.excludeFieldValues, f, val, ok) {
		return false
	}
	if ok && containsValue(inc.ensureValues, val) {
		return true
	}
	if slices.Contains(inc.ensureNames, f.Name) || slices.Contains(inc.ensureTypes, f.Type) {
		return true
	}
	if matchesFieldRule(inc.ensureFields, inc.ensureFieldValues, f, val, ok) {
		return true
	}

	include := inc.privates && f.Visibility == Private
	include = include || (inc.packages && f.Visibility == Package)
	include = include || (inc.protecteds && f.Visibility == Protected)
	include = include || (inc.publics && f.Visibility == Public)
	include = include && (inc.keepFinals || !f.Modifiers.Has(Final))
	include = include && (inc.keepTransients || !f.Modifiers.Has(Transient))
	include = include && (inc.keepVolatiles || !f.Modifiers.Has(Volatile))
	return include
}

// matchesFieldRule checks the per-name rule maps. The name+type rule needs
// an exact declared-type match; the name+type+value rule additionally needs
// a successful read and a structurally equal value.
func matchesFieldRule(byType map[string]reflect.Type, byValue map[string]typedValue, f Field, val any, ok bool) bool {
	if t, present := byType[f.Name]; present && t == f.Type {
		return true
	}
	if tv, present := byValue[f.Name]; present && ok && tv.typ == f.Type && equalValues(tv.value, val) {
		return true
	}
	return false
}

// containsValue reports membership under structural equality.
func containsValue(vals []any, v any) bool {
	return slices.ContainsFunc(vals, func(x any) bool { return equalValues(x, v) })
}

// equalValues is the type-erased equality used by every value rule and by
// IgnoreValue. reflect.DeepEqual handles heterogeneous and non-comparable
// values without panicking.
func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
