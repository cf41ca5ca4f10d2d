package selection

import (
	"fmt"
	"slices"
	"testing"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"pgregory.net/rapid"
)

func testCatalog(n int) []catalog.Descriptor {
	out := make([]catalog.Descriptor, n)
	for i := range out {
		out[i] = plugin(fmt.Sprintf("plugin-%d", i))
	}
	return out
}

// TestToggleMatchesReferenceModel drives random toggles and compares both
// forms with an ordered-set model of the selection.
func TestToggleMatchesReferenceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plugins := testCatalog(rapid.IntRange(1, 8).Draw(t, "catalogSize"))
		s := New(nil, nil)
		var model []catalog.Descriptor

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			p := rapid.SampledFrom(plugins).Draw(t, "plugin")
			if err := s.Toggle(p); err != nil {
				t.Fatalf("toggle %s: %v", p.Name, err)
			}

			idx := slices.IndexFunc(model, func(d catalog.Descriptor) bool { return d.Name == p.Name })
			if idx >= 0 {
				model = slices.Delete(model, idx, idx+1)
			} else {
				model = append(model, p)
			}

			if got, want := s.Text(), indented(t, model...); got != want {
				t.Fatalf("text mismatch after toggling %s:\n got: %s\nwant: %s", p.Name, got, want)
			}
			if got := s.Len(); got != len(model) {
				t.Fatalf("structured form has %d entries, want %d", got, len(model))
			}
			for _, d := range plugins {
				inModel := slices.ContainsFunc(model, func(m catalog.Descriptor) bool { return m.Name == d.Name })
				if s.Selected(d.Name) != inModel {
					t.Fatalf("Selected(%s) = %v, want %v", d.Name, s.Selected(d.Name), inModel)
				}
			}
		}
	})
}

// TestDoubleToggleRoundTrips checks that toggling the same plugin twice from a
// valid text restores membership, and restores both forms exactly when the
// plugin started out unselected.
func TestDoubleToggleRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plugins := testCatalog(6)
		s := New(nil, nil)
		for _, p := range plugins {
			if rapid.Bool().Draw(t, "preselect-"+p.Name) {
				if err := s.Toggle(p); err != nil {
					t.Fatal(err)
				}
			}
		}

		p := rapid.SampledFrom(plugins).Draw(t, "plugin")
		wasSelected := s.Selected(p.Name)
		beforeText := s.Text()
		beforeEntries := s.Entries()

		if err := s.Toggle(p); err != nil {
			t.Fatal(err)
		}
		if s.Selected(p.Name) == wasSelected {
			t.Fatalf("first toggle did not flip membership of %s", p.Name)
		}
		if err := s.Toggle(p); err != nil {
			t.Fatal(err)
		}

		if s.Selected(p.Name) != wasSelected {
			t.Fatalf("membership of %s not restored", p.Name)
		}
		if s.Len() != len(beforeEntries) {
			t.Fatalf("got %d entries, want %d", s.Len(), len(beforeEntries))
		}
		if !wasSelected {
			if s.Text() != beforeText {
				t.Fatalf("text not restored:\n got: %s\nwant: %s", s.Text(), beforeText)
			}
			if !slices.Equal(s.Entries(), beforeEntries) {
				t.Fatalf("entries not restored")
			}
		}
	})
}

// TestInvalidEditNeverMovesStructuredForm truncates a valid document at a
// random point; whenever the prefix is not valid JSON the structured form
// must stay put and the text must be exactly what was typed.
func TestInvalidEditNeverMovesStructuredForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plugins := testCatalog(4)
		s := New(nil, nil)
		for _, p := range plugins[:rapid.IntRange(1, len(plugins)).Draw(t, "selected")] {
			if err := s.Toggle(p); err != nil {
				t.Fatal(err)
			}
		}
		full := s.Text()
		before := s.Entries()

		cut := rapid.IntRange(0, len(full)-1).Draw(t, "cut")
		typed := full[:cut]
		s.EditText(typed)

		if s.Text() != typed {
			t.Fatalf("text = %q, want %q", s.Text(), typed)
		}
		if _, isArray, valid := parse(typed); !valid || !isArray {
			if !slices.Equal(s.Entries(), before) {
				t.Fatalf("structured form changed on invalid text %q", typed)
			}
		}
	})
}
