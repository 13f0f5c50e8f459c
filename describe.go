package describe

import (
	"slices"
)

// Entry is one rendered key-value pair of the final output. Exported so the
// structured formats and the entry comparator can operate on it.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Describer is a render-ready handle for one target value. Configure it
// with the chained setters, then call [Describer.Generate]. Each Generate
// call runs the full pipeline against fresh per-call state, so a nested
// Generate (a field whose String method describes itself) cannot corrupt
// the outer call.
type Describer struct {
	target   any
	include  *Include
	source   FieldSource
	identity bool
	hashSym  string
	sep      string
	eq       string
	entryCmp func(a, b Entry) int
}

// Of returns a handle that shows only public fields, the common default:
//
//	func (p *Person) String() string { return describe.Of(p).Generate() }
func Of(target any) *Describer {
	return New(target, NewInclude().Publics(true))
}

// New returns a handle that shows the fields selected by inc. A nil inc
// behaves like an empty policy and includes nothing.
func New(target any, inc *Include) *Describer {
	if inc == nil {
		inc = NewInclude()
	}
	return &Describer{
		target:  target,
		include: inc,
		source:  defaultSource,
		hashSym: "@",
		sep:     ",",
		eq:      "=",
	}
}

// IdentityHash toggles the hex identity segment after the type name.
// Defaults to off.
func (d *Describer) IdentityHash(b bool) *Describer {
	d.identity = b
	return d
}

// HashSymbol sets the symbol between the type name and the identity hash.
// Defaults to "@".
func (d *Describer) HashSymbol(s string) *Describer {
	d.hashSym = s
	return d
}

// Separator sets the string between entries. Defaults to ",".
func (d *Describer) Separator(s string) *Describer {
	d.sep = s
	return d
}

// Equality sets the string between a key and its value. Defaults to "=".
func (d *Describer) Equality(s string) *Describer {
	d.eq = s
	return d
}

// EntryComparator sorts the merged entry list (discovered fields plus
// custom entries) immediately before rendering. It overrides whatever
// order the field comparator or natural discovery produced, and must be a
// strict total order. Keys are unique within one render.
func (d *Describer) EntryComparator(cmp func(a, b Entry) int) *Describer {
	d.entryCmp = cmp
	return d
}

// Source replaces the reflect-based field discovery. Mostly useful for
// targets with hand-built descriptor tables and for tests.
func (d *Describer) Source(src FieldSource) *Describer {
	if src != nil {
		d.source = src
	}
	return d
}

// Generate runs the pipeline and returns the description. It never fails:
// unreadable fields render as a {Kind:message} placeholder and a nil
// target short-circuits to the literal "null".
func (d *Describer) Generate() string {
	if isNull(d.target) {
		return nullText
	}
	hash := ""
	if d.identity {
		hash = d.hashSym + identityHex(d.target)
	}
	return renderText(typeName(d.target), hash, d.Entries(), d.sep, d.eq)
}

// String makes the handle itself printable. Equivalent to Generate.
func (d *Describer) String() string { return d.Generate() }

// Entries returns the final entry list: discovered fields filtered by the
// policy, renamed, resolved to text, merged with custom entries, and
// sorted if an entry comparator is set. The slice is freshly built on
// every call.
func (d *Describer) Entries() []Entry {
	if isNull(d.target) {
		return nil
	}
	inc := d.include

	fields := d.source.Fields(d.target)
	if inc.fieldCmp != nil {
		fields = slices.Clone(fields)
		slices.SortFunc(fields, inc.fieldCmp)
	}

	entries := make([]Entry, 0, len(fields)+len(inc.customs))
	for _, f := range fields {
		val, err := f.Read()
		if !decide(inc, f, val, err == nil) {
			continue
		}
		var text string
		switch {
		case err != nil:
			text = failureText(err)
		case inc.omitNulls && isNull(val):
			continue
		default:
			text = valueText(val)
		}
		key := f.Name
		if display, found := inc.renames[f.Name]; found {
			key = display
		}
		entries = append(entries, Entry{Key: key, Value: text})
	}
	for _, c := range inc.customs {
		entries = append(entries, Entry{Key: c.name, Value: valueText(c.value)})
	}

	if d.entryCmp != nil {
		slices.SortFunc(entries, d.entryCmp)
	}
	return entries
}
