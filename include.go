package describe

import (
	"reflect"
	"slices"
)

// Include collects the rules deciding which fields appear in the output.
// Build one with [NewInclude] and chain the rule methods; every method
// returns the same policy. Configure it fully before handing it to [New];
// mutating a policy while a Generate call is using it is not supported.
//
// Rule precedence is fixed: exclude rules outrank ensure rules, and both
// outrank the visibility flags. Conflicting rules are never reported; the
// precedence order resolves them.
type Include struct {
	publics    bool
	protecteds bool
	packages   bool
	privates   bool

	keepFinals     bool
	keepTransients bool
	keepVolatiles  bool

	ensureNames   []string
	excludeNames  []string
	ensureTypes   []reflect.Type
	excludeTypes  []reflect.Type
	ensureValues  []any
	excludeValues []any

	ensureFields       map[string]reflect.Type
	excludeFields      map[string]reflect.Type
	ensureFieldValues  map[string]typedValue
	excludeFieldValues map[string]typedValue

	renames   map[string]string
	customs   []customEntry
	fieldCmp  func(a, b Field) int
	omitNulls bool
}

// customEntry is a synthetic entry registered with Custom. The value is
// held as-is and resolved to text on each Generate call.
type customEntry struct {
	name  string
	value any
}

// typedValue is a (type, required value) constraint stored per field name.
type typedValue struct {
	typ   reflect.Type
	value any
}

// NewInclude returns an empty policy. It includes nothing until told to.
func NewInclude() *Include {
	return &Include{
		keepFinals:         true,
		keepTransients:     true,
		keepVolatiles:      true,
		ensureFields:       make(map[string]reflect.Type),
		excludeFields:      make(map[string]reflect.Type),
		ensureFieldValues:  make(map[string]typedValue),
		excludeFieldValues: make(map[string]typedValue),
		renames:            make(map[string]string),
	}
}

// EnsureName forces fields with the given name to be shown.
func (inc *Include) EnsureName(name string) *Include {
	inc.ensureNames = append(inc.ensureNames, name)
	return inc
}

// EnsureType forces fields declared with exactly type t to be shown.
func (inc *Include) EnsureType(t reflect.Type) *Include {
	inc.ensureTypes = append(inc.ensureTypes, t)
	return inc
}

// EnsureField forces a field with the given name and declared type to be
// shown. Only one name+type or name+type+value constraint survives per
// name on the ensure side; the last write wins.
func (inc *Include) EnsureField(name string, t reflect.Type) *Include {
	inc.ensureFields[name] = t
	return inc
}

// EnsureFieldValue forces a field with the given name and declared type to
// be shown, but only while its value equals want. Last write per name wins.
func (inc *Include) EnsureFieldValue(name string, t reflect.Type, want any) *Include {
	inc.ensureFieldValues[name] = typedValue{typ: t, value: want}
	return inc
}

// EnsureValue forces any field whose value is structurally equal to v to
// be shown. Fields whose value could not be read never match.
func (inc *Include) EnsureValue(v any) *Include {
	inc.ensureValues = append(inc.ensureValues, v)
	return inc
}

// ExcludeName hides fields with the given name.
func (inc *Include) ExcludeName(name string) *Include {
	inc.excludeNames = append(inc.excludeNames, name)
	return inc
}

// ExcludeType hides fields declared with exactly type t.
func (inc *Include) ExcludeType(t reflect.Type) *Include {
	inc.excludeTypes = append(inc.excludeTypes, t)
	return inc
}

// ExcludeField hides a field with the given name and declared type.
// Last write per name wins.
func (inc *Include) ExcludeField(name string, t reflect.Type) *Include {
	inc.excludeFields[name] = t
	return inc
}

// ExcludeFieldValue hides a field with the given name and declared type
// while its value equals want. Last write per name wins.
func (inc *Include) ExcludeFieldValue(name string, t reflect.Type, want any) *Include {
	inc.excludeFieldValues[name] = typedValue{typ: t, value: want}
	return inc
}

// ExcludeValue hides any field whose value is structurally equal to v.
// Exclusion by value outranks every ensure rule.
func (inc *Include) ExcludeValue(v any) *Include {
	inc.excludeValues = append(inc.excludeValues, v)
	return inc
}

// IgnoreName cancels prior EnsureName/ExcludeName and EnsureField/
// ExcludeField rules for the given name.
func (inc *Include) IgnoreName(name string) *Include {
	inc.ensureNames = slices.DeleteFunc(inc.ensureNames, func(s string) bool { return s == name })
	inc.excludeNames = slices.DeleteFunc(inc.excludeNames, func(s string) bool { return s == name })
	delete(inc.ensureFields, name)
	delete(inc.excludeFields, name)
	return inc
}

// IgnoreType cancels prior EnsureType/ExcludeType rules for type t.
func (inc *Include) IgnoreType(t reflect.Type) *Include {
	inc.ensureTypes = slices.DeleteFunc(inc.ensureTypes, func(x reflect.Type) bool { return x == t })
	inc.excludeTypes = slices.DeleteFunc(inc.excludeTypes, func(x reflect.Type) bool { return x == t })
	return inc
}

// IgnoreValue cancels prior EnsureValue/ExcludeValue rules for value v.
func (inc *Include) IgnoreValue(v any) *Include {
	inc.ensureValues = slices.DeleteFunc(inc.ensureValues, func(x any) bool { return equalValues(x, v) })
	inc.excludeValues = slices.DeleteFunc(inc.excludeValues, func(x any) bool { return equalValues(x, v) })
	return inc
}

// Publics sets whether public fields are included by default.
func (inc *Include) Publics(b bool) *Include {
	inc.publics = b
	return inc
}

// Protecteds sets whether protected fields are included by default.
func (inc *Include) Protecteds(b bool) *Include {
	inc.protecteds = b
	return inc
}

// Packages sets whether package-local fields are included by default.
func (inc *Include) Packages(b bool) *Include {
	inc.packages = b
	return inc
}

// Privates sets whether private fields are included by default.
func (inc *Include) Privates(b bool) *Include {
	inc.privates = b
	return inc
}

// AllVisibilities sets all four visibility flags at once.
func (inc *Include) AllVisibilities(b bool) *Include {
	inc.publics = b
	inc.protecteds = b
	inc.packages = b
	inc.privates = b
	return inc
}

// KeepFinals sets whether final fields are kept. Defaults to true. Setting
// it to false only ever removes fields the visibility flags would have
// included; it never includes anything on its own.
func (inc *Include) KeepFinals(b bool) *Include {
	inc.keepFinals = b
	return inc
}

// KeepTransients sets whether transient fields are kept. Defaults to true.
// Like KeepFinals, it only ever removes inclusion.
func (inc *Include) KeepTransients(b bool) *Include {
	inc.keepTransients = b
	return inc
}

// KeepVolatiles sets whether volatile fields are kept. Defaults to true.
// Like KeepFinals, it only ever removes inclusion.
func (inc *Include) KeepVolatiles(b bool) *Include {
	inc.keepVolatiles = b
	return inc
}

// Map renames a field in the output. Only the displayed key changes; every
// rule still matches on the original name.
func (inc *Include) Map(original, display string) *Include {
	inc.renames[original] = display
	return inc
}

// Unmap removes a rename added with Map.
func (inc *Include) Unmap(original string) *Include {
	delete(inc.renames, original)
	return inc
}

// Custom injects a synthetic entry that corresponds to no real field. It
// bypasses every rule and the null-value omission: a nil custom value is
// always shown as "null". The value is resolved to text on each Generate
// call, so later mutations are visible. Repeating a name replaces the
// previous value in place.
func (inc *Include) Custom(name string, value any) *Include {
	for i := range inc.customs {
		if inc.customs[i].name == name {
			inc.customs[i].value = value
			return inc
		}
	}
	inc.customs = append(inc.customs, customEntry{name: name, value: value})
	return inc
}

// FieldComparator sorts the discovered fields before resolution. Custom
// entries are unaffected. Without a comparator, fields keep the source's
// natural order (declaration order for the reflect source).
func (inc *Include) FieldComparator(cmp func(a, b Field) int) *Include {
	inc.fieldCmp = cmp
	return inc
}

// OmitNullValues drops fields whose resolved value is nil. Custom entries
// are exempt.
func (inc *Include) OmitNullValues(b bool) *Include {
	inc.omitNulls = b
	return inc
}
