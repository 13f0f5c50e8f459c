// Package describe renders an arbitrary value's fields as a deterministic,
// human-readable string for debugging and logging, selecting which fields
// appear through a rule-based inclusion policy instead of a fixed
// visibility rule.
//
// The central entry points are [Of] and [New], which return a render-ready
// [Describer]:
//
//	describe.Of(&person).Generate()
//	// Person{FirstName=Joe,LastName=Schmoe,Age=23.4}
//
// [Of] shows public fields only. [New] takes an [Include] policy built by
// chaining rule methods:
//
//	inc := describe.NewInclude().
//		Publics(true).
//		EnsureName("numberOfFriends").
//		ExcludeType(describe.Type[float32]())
//	describe.New(&person, inc).Generate()
//
// # Inclusion rules
//
// Rules are evaluated per field with a fixed precedence: exclude-by-value,
// then exclude by name or type, then the per-name exclude maps, then the
// same three layers on the ensure side, and finally the visibility flags
// narrowed by the keep flags. Exclude rules always outrank ensure rules,
// so a caller can carve exceptions out of a blanket visibility policy.
// Per-name rule maps hold one constraint per field name; registering a
// second silently replaces the first. Value rules compare with structural
// equality and never match a field whose value could not be read.
//
// # Visibility and modifiers
//
// Exported fields are public and unexported fields are private. The
// intermediate tiers (protected, package) and the final/transient/volatile
// modifiers have no Go equivalent; declare them with the `describe` tag:
//
//	type Person struct {
//		NumberOfFriends int `describe:"protected"`
//		Height          float32 `describe:"final"`
//		timesCried      int `describe:"volatile"`
//	}
//
// Unexported fields are readable without any setup; the reflect-based
// field source reads them through an addressable shadow copy.
//
// # Rendering
//
// Output is TypeName{key=value,...}. The entry separator, the key-value
// symbol, and an optional @hexid identity segment are configurable on the
// handle. Nil values render as "null" and can be omitted wholesale with
// [Include.OmitNullValues]. A nil target short-circuits to the literal
// "null". A field whose value cannot be read renders as a {Kind:message}
// placeholder; Generate itself never fails.
//
// A value that implements [fmt.Stringer] renders through its own String
// method, so a type whose String calls [Of] describes itself recursively.
// Nothing detects reference cycles: mutually-describing values recurse
// without bound.
//
// # Ordering
//
// Without comparators, fields render in declaration order followed by
// custom entries in insertion order. [Include.FieldComparator] reorders
// fields before resolution; [Describer.EntryComparator] sorts the final
// merged list and is then the single source of truth for output order.
//
// # Structured output
//
// [Write] and [Marshal] render the same entry list in alternative formats
// for structured logging: [Text], [JSON], [YAML], and a bordered [Table].
// Use [ParseFormat] to convert a CLI flag string into a [Format].
package describe
