// Package selection keeps the chosen plugins in two forms: a structured list
// that drives the checklist and the JSON text the user can edit directly.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/clipboard"
)

// EmptyText is the textual form of an empty selection.
const EmptyText = "[]"

// ErrInvalidJSON is returned by Toggle when the current text does not parse.
var ErrInvalidJSON = errors.New("invalid JSON, fix JSON before selecting new plugin")

// Synchronizer owns the selection. The text is always exactly what the user
// last typed or what the last toggle rendered; the entries follow the text
// whenever it parses as a JSON array and are left stale otherwise.
//
// A Synchronizer is not safe for concurrent use.
type Synchronizer struct {
	text     string
	entries  []Entry
	notifier Notifier
	clip     clipboard.Writer
}

// New returns an empty selection. A nil notifier drops notifications.
func New(notifier Notifier, clip clipboard.Writer) *Synchronizer {
	if notifier == nil {
		notifier = discard{}
	}
	return &Synchronizer{
		text:     EmptyText,
		notifier: notifier,
		clip:     clip,
	}
}

// Text returns the textual form.
func (s *Synchronizer) Text() string {
	return s.text
}

// Entries returns a copy of the structured form.
func (s *Synchronizer) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the structured form.
func (s *Synchronizer) Len() int {
	return len(s.entries)
}

// Selected reports whether the structured form holds an entry named name.
func (s *Synchronizer) Selected(name string) bool {
	return indexByName(s.entries, name) >= 0
}

// Valid reports whether the textual form currently parses as a JSON array,
// that is, whether the structured form is in step with it.
func (s *Synchronizer) Valid() bool {
	_, isArray, valid := parse(s.text)
	return valid && isArray
}

// Toggle adds plugin d to the selection, or removes it when an entry with
// the same name is already there. The current text is the source of truth:
// removal drops the user's (possibly edited) object, and a text that is
// valid JSON but not an array counts as an empty selection.
//
// If the text is not valid JSON nothing changes, a warning is emitted and
// ErrInvalidJSON is returned.
func (s *Synchronizer) Toggle(d catalog.Descriptor) error {
	current, isArray, valid := parse(s.text)
	if !valid {
		slog.Debug("toggle rejected, text is not valid JSON", "plugin", d.Name)
		s.notifier.Notify(Notification{Level: Warning, Message: MsgInvalidJSON})
		return ErrInvalidJSON
	}
	if !isArray {
		slog.Debug("toggle on non-array JSON, starting from an empty selection", "plugin", d.Name)
	}

	var next []Entry
	if indexByName(current, d.Name) >= 0 {
		next = withoutName(current, d.Name)
		slog.Debug("plugin deselected", "plugin", d.Name)
	} else {
		e, err := EntryFrom(d)
		if err != nil {
			return err
		}
		next = append(current, e)
		slog.Debug("plugin selected", "plugin", d.Name)
	}

	// The structured form is always the parse of the rendered text, so
	// every entry carries the same encoding whichever path produced it.
	s.text = Render(next)
	s.entries, _, _ = parse(s.text)
	return nil
}

// EditText replaces the textual form with text verbatim. The structured form
// follows only when text parses as a JSON array; anything else is treated as
// the user still typing.
func (s *Synchronizer) EditText(text string) {
	s.text = text
	entries, isArray, valid := parse(text)
	switch {
	case !valid:
		slog.Debug("text is not valid JSON yet, keeping previous selection")
	case !isArray:
		slog.Debug("text is not a JSON array, keeping previous selection")
	default:
		s.entries = entries
	}
}

// Reset empties the selection.
func (s *Synchronizer) Reset() {
	s.text = EmptyText
	s.entries = nil
}

// Copy writes the textual form to the clipboard and emits a success
// notification. An empty selection ("[]", ignoring surrounding whitespace)
// is not copied; copied is false and nothing is emitted.
func (s *Synchronizer) Copy(ctx context.Context) (copied bool, err error) {
	if strings.TrimFunc(s.text, isSpace) == EmptyText {
		return false, nil
	}
	if s.clip == nil {
		return false, errors.New("copying config: no clipboard configured")
	}
	if err := s.clip.WriteText(ctx, s.text); err != nil {
		return false, fmt.Errorf("copying config: %w", err)
	}
	slog.Debug("config copied", "bytes", len(s.text))
	s.notifier.Notify(Notification{Level: Success, Message: MsgCopied})
	return true, nil
}

// isSpace reports Unicode white space and the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
