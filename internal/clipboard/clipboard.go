// Package clipboard writes text to the user's clipboard through one of
// several backends.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	xclipboard "golang.design/x/clipboard"
)

// Backend names accepted by Open and the config file.
const (
	BackendSystem = "system"
	BackendNative = "native"
	BackendOSC52  = "osc52"
)

// Backends lists every backend name in the order shown to users.
var Backends = []string{BackendSystem, BackendNative, BackendOSC52}

// ErrUnsupported is returned when the chosen backend cannot run on this machine.
var ErrUnsupported = errors.New("clipboard backend not supported on this system")

// Writer puts text on the clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// Func adapts a function to Writer.
type Func func(ctx context.Context, text string) error

// WriteText calls f.
func (f Func) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Open returns the Writer for backend. out receives terminal escape
// sequences for the osc52 backend; nil means os.Stderr.
func Open(backend string, out io.Writer) (Writer, error) {
	switch strings.ToLower(backend) {
	case "", BackendSystem:
		return System{}, nil
	case BackendNative:
		return &Native{}, nil
	case BackendOSC52:
		if out == nil {
			out = os.Stderr
		}
		return OSC52{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (want one of %s)", backend, strings.Join(Backends, ", "))
	}
}

// System uses the platform clipboard tools (pbcopy, xclip, xsel, wl-copy,
// or the Windows API).
type System struct{}

// WriteText copies text with the platform tool.
func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if atotto.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrUnsupported)
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	return nil
}

// Native talks to the window system clipboard in-process.
type Native struct {
	once    sync.Once
	initErr error
}

// WriteText copies text through the native clipboard API.
func (n *Native) WriteText(ctx context.Context, text string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.once.Do(func() {
		if e := xclipboard.Init(); e != nil {
			n.initErr = fmt.Errorf("%w: %v", ErrUnsupported, e)
		}
	})
	if n.initErr != nil {
		return n.initErr
	}

	// Some platforms panic instead of returning an error when the display
	// connection goes away.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("writing to clipboard: %v", r)
		}
	}()
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH
// and inside tmux or screen.
type OSC52 struct {
	Out io.Writer
}

// WriteText emits the OSC 52 sequence carrying text.
func (o OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}
