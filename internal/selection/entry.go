package selection

import (
	"strings"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Entry is one element of the selection array, kept exactly as written so
// that user edits (extra fields, key order, literals) survive re-rendering.
type Entry struct {
	raw string
}

// NewEntry wraps a raw JSON value. The caller guarantees raw is valid JSON.
func NewEntry(raw string) Entry {
	return Entry{raw: raw}
}

// EntryFrom encodes a catalog descriptor as a selection entry.
func EntryFrom(d catalog.Descriptor) (Entry, error) {
	raw, err := d.JSON()
	if err != nil {
		return Entry{}, err
	}
	return Entry{raw: raw}, nil
}

// Raw returns the JSON text of the entry.
func (e Entry) Raw() string {
	return e.raw
}

// Name returns the entry's "name" member. ok is false when the entry is not
// an object or its name is not a JSON string. When the key is repeated the
// last occurrence counts.
func (e Entry) Name() (name string, ok bool) {
	obj := gjson.Parse(e.raw)
	if !obj.IsObject() {
		return "", false
	}
	var last gjson.Result
	obj.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "name" {
			last = value
		}
		return true
	})
	if last.Type != gjson.String {
		return "", false
	}
	return last.String(), true
}

// hasName reports whether the entry's name equals name.
func (e Entry) hasName(name string) bool {
	n, ok := e.Name()
	return ok && n == name
}

// parse reads text as JSON. valid is false for malformed text; isArray is
// false for well-formed text that is not an array, in which case entries is
// empty.
func parse(text string) (entries []Entry, isArray, valid bool) {
	if !gjson.Valid(text) {
		return nil, false, false
	}
	res := gjson.Parse(text)
	if !res.IsArray() {
		return nil, false, true
	}
	for _, el := range res.Array() {
		entries = append(entries, Entry{raw: el.Raw})
	}
	return entries, true, true
}

var indentOptions = &pretty.Options{
	Width:  -1, // never collapse arrays onto one line
	Prefix: "",
	Indent: "  ",
}

// Render returns entries as a JSON array indented with two spaces, one
// element or member per line.
func Render(entries []Entry) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.raw)
	}
	b.WriteByte(']')
	out := pretty.PrettyOptions([]byte(b.String()), indentOptions)
	return strings.TrimSuffix(string(out), "\n")
}

func indexByName(entries []Entry, name string) int {
	for i, e := range entries {
		if e.hasName(name) {
			return i
		}
	}
	return -1
}

// withoutName returns entries minus every element named name.
func withoutName(entries []Entry, name string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.hasName(name) {
			out = append(out, e)
		}
	}
	return out
}
