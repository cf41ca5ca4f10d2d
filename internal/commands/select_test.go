package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/commands"
	"github.com/ruminaider/plugin-selector/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Descriptor{
		{Name: "foo", PackageName: "foo-pkg", Version: "1.0.0", Configs: json.RawMessage(`{}`)},
		{Name: "bar", PackageName: "bar-pkg", Version: "2.0.0", Configs: json.RawMessage(`{"level": "info"}`)},
		{Name: "baz", PackageName: "baz-pkg", Version: "0.3.0", Configs: json.RawMessage(`{}`)},
	})
}

func TestList(t *testing.T) {
	t.Run("no selection", func(t *testing.T) {
		rows := commands.List(testCatalog(), "")
		require.Len(t, rows, 3)
		assert.Equal(t, commands.ListRow{Name: "foo", PackageName: "foo-pkg", Version: "1.0.0"}, rows[0])
		for _, r := range rows {
			assert.False(t, r.Selected)
		}
	})

	t.Run("marks selected", func(t *testing.T) {
		rows := commands.List(testCatalog(), `[{"name": "baz"}, {"name": "unknown"}]`)
		require.Len(t, rows, 3)
		assert.False(t, rows[0].Selected)
		assert.False(t, rows[1].Selected)
		assert.True(t, rows[2].Selected)
	})

	t.Run("invalid text selects nothing", func(t *testing.T) {
		rows := commands.List(testCatalog(), `[{"name": "baz"`)
		for _, r := range rows {
			assert.False(t, r.Selected)
		}
	})
}

func TestSelect(t *testing.T) {
	t.Run("from empty", func(t *testing.T) {
		out, err := commands.Select(commands.SelectOptions{
			Catalog: testCatalog(),
			Names:   []string{"bar", "foo"},
		})
		require.NoError(t, err)

		want := `[
  {
    "name": "bar",
    "package_name": "bar-pkg",
    "version": "2.0.0",
    "configs": {
      "level": "info"
    }
  },
  {
    "name": "foo",
    "package_name": "foo-pkg",
    "version": "1.0.0",
    "configs": {}
  }
]`
		assert.Equal(t, want, out)
	})

	t.Run("toggles off existing", func(t *testing.T) {
		out, err := commands.Select(commands.SelectOptions{
			Catalog: testCatalog(),
			Text:    `[{"name": "foo", "version": "custom"}, {"name": "baz"}]`,
			Names:   []string{"foo"},
		})
		require.NoError(t, err)
		assert.Equal(t, "[\n  {\n    \"name\": \"baz\"\n  }\n]", out)
	})

	t.Run("no names normalizes text", func(t *testing.T) {
		out, err := commands.Select(commands.SelectOptions{
			Catalog: testCatalog(),
			Text:    `[]`,
		})
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("unknown plugin", func(t *testing.T) {
		_, err := commands.Select(commands.SelectOptions{
			Catalog: testCatalog(),
			Names:   []string{"foo", "nope"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("invalid json warns", func(t *testing.T) {
		inbox := &selection.Inbox{}
		_, err := commands.Select(commands.SelectOptions{
			Catalog:  testCatalog(),
			Text:     `[{"name": `,
			Names:    []string{"foo"},
			Notifier: inbox,
		})
		assert.ErrorIs(t, err, selection.ErrInvalidJSON)
		assert.Equal(t, []selection.Notification{
			{Level: selection.Warning, Message: selection.MsgInvalidJSON},
		}, inbox.Drain())
	})
}

func TestCopy(t *testing.T) {
	t.Run("copies text verbatim", func(t *testing.T) {
		var writes []string
		inbox := &selection.Inbox{}
		text := `[{"name":"foo","package_name":"foo-pkg","version":"1.0.0","configs":{}}]`

		res, err := commands.Copy(context.Background(), commands.CopyOptions{
			Text: text,
			Clipboard: clipboard.Func(func(_ context.Context, s string) error {
				writes = append(writes, s)
				return nil
			}),
			Notifier: inbox,
		})

		require.NoError(t, err)
		assert.Equal(t, commands.CopyResult{Copied: true, Bytes: len(text), Entries: 1, Valid: true}, res)
		assert.Equal(t, []string{text}, writes)
		assert.Len(t, inbox.Drain(), 1)
	})

	t.Run("empty selection", func(t *testing.T) {
		called := false
		res, err := commands.Copy(context.Background(), commands.CopyOptions{
			Text: " [] \n",
			Clipboard: clipboard.Func(func(context.Context, string) error {
				called = true
				return nil
			}),
		})
		require.NoError(t, err)
		assert.False(t, res.Copied)
		assert.False(t, called)
	})

	t.Run("clipboard error", func(t *testing.T) {
		boom := errors.New("no display")
		_, err := commands.Copy(context.Background(), commands.CopyOptions{
			Text: `[{"name":"foo"}]`,
			Clipboard: clipboard.Func(func(context.Context, string) error {
				return boom
			}),
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid json still copied", func(t *testing.T) {
		res, err := commands.Copy(context.Background(), commands.CopyOptions{
			Text:      `[{"name":`,
			Clipboard: clipboard.Func(func(context.Context, string) error { return nil }),
		})
		require.NoError(t, err)
		assert.True(t, res.Copied)
		assert.False(t, res.Valid)
		assert.Equal(t, 0, res.Entries)
	})
}
