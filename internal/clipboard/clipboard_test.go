package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		want    Writer
	}{
		{"", System{}},
		{"system", System{}},
		{"SYSTEM", System{}},
		{"osc52", OSC52{Out: os.Stderr}},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			w, err := Open(tt.backend, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
		})
	}

	t.Run("native", func(t *testing.T) {
		w, err := Open("native", nil)
		require.NoError(t, err)
		assert.IsType(t, &Native{}, w)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open("carrier-pigeon", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}

func TestOSC52WriteText(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	w := OSC52{Out: &buf}
	require.NoError(t, w.WriteText(context.Background(), `[{"name":"foo"}]`))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte(`[{"name":"foo"}]`)))
}

func TestOSC52WriteTextTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")

	var buf bytes.Buffer
	require.NoError(t, OSC52{Out: &buf}.WriteText(context.Background(), "hi"))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestWriteTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := OSC52{Out: &buf}.WriteText(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())

	assert.ErrorIs(t, System{}.WriteText(ctx, "hi"), context.Canceled)
	assert.ErrorIs(t, (&Native{}).WriteText(ctx, "hi"), context.Canceled)
}

func TestFunc(t *testing.T) {
	var got string
	w := Func(func(_ context.Context, text string) error {
		got = text
		return nil
	})
	require.NoError(t, w.WriteText(context.Background(), "copied"))
	assert.Equal(t, "copied", got)
}
