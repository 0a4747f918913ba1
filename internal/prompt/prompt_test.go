package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("first\r\n\nlast"), &out)

	got, err := p.Ask("one: ")
	require.NoError(t, err)
	require.Equal(t, "first", got)

	got, err = p.Ask("two: ")
	require.NoError(t, err)
	require.Equal(t, "", got)

	got, err = p.Ask("three: ")
	require.NoError(t, err)
	require.Equal(t, "last", got)

	_, err = p.Ask("four: ")
	require.ErrorIs(t, err, io.EOF)

	require.Equal(t, "one: two: three: four: ", out.String())
}

func TestAskSecret_NotATerminal(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("hunter2\n"), &out)

	got, err := p.AskSecret("Password: ")
	require.NoError(t, err)
	require.Equal(t, "hunter2", got)
	require.Equal(t, "Password: ", out.String())
}

func TestPrompterInterface(t *testing.T) {
	var _ Prompter = (*Terminal)(nil)
}
