package commands

import (
	"context"

	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/selection"
)

// CopyOptions configures Copy.
type CopyOptions struct {
	Text      string
	Clipboard clipboard.Writer
	Notifier  selection.Notifier
}

// CopyResult reports what Copy did.
type CopyResult struct {
	Copied  bool
	Bytes   int
	Entries int
	Valid   bool // text parsed as a JSON array
}

// Copy loads text into a selection and copies it to the clipboard. The text
// is copied verbatim even when it is not valid JSON; an empty selection is
// not copied.
func Copy(ctx context.Context, opts CopyOptions) (CopyResult, error) {
	sel := selection.New(opts.Notifier, opts.Clipboard)
	sel.EditText(opts.Text)

	copied, err := sel.Copy(ctx)
	if err != nil {
		return CopyResult{}, err
	}
	res := CopyResult{
		Copied:  copied,
		Entries: sel.Len(),
		Valid:   sel.Valid(),
	}
	if copied {
		res.Bytes = len(sel.Text())
	}
	return res, nil
}
