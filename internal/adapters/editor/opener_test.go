package editor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantArgs []string
	}{
		{
			name:     "editor",
			env:      map[string]string{"EDITOR": "nano", "VISUAL": "vim"},
			wantArgs: []string{"nano", "/tmp/x.md"},
		},
		{
			name:     "visual fallback",
			env:      map[string]string{"VISUAL": "emacs"},
			wantArgs: []string{"emacs", "/tmp/x.md"},
		},
		{
			name:     "editor with flags",
			env:      map[string]string{"EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", "/tmp/x.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{lookup: func(k string) string { return tt.env[k] }}

			cmd, err := o.Command("/tmp/x.md")
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestDraft_RoundTrip(t *testing.T) {
	d, err := NewDraft("Experience Description", "first line\nsecond")
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Remove() })

	assert.Contains(t, d.Path, "cvbuilder-experience-description-")

	require.NoError(t, os.WriteFile(d.Path, []byte("edited text\n\n"), 0o600))

	got, err := d.Read()
	require.NoError(t, err)
	assert.Equal(t, "edited text", got)

	require.NoError(t, d.Remove())
	_, err = os.Stat(d.Path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, d.Remove(), "removing twice is fine")
}
