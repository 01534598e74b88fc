package linesource

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPlainSource_ReadLine(t *testing.T) {
	var prompts bytes.Buffer
	src := NewPlainSource(strings.NewReader("cwd\n\nmkdir a\r\nlast"), &prompts)

	var lines []string
	for {
		line, err := src.ReadLine("> ")
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"cwd", "", "mkdir a\r", "last"}, lines)
	assert.Equal(t, strings.Repeat("> ", 5), prompts.String())

	_, err := src.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF, "end of input must be sticky")
}

func TestPlainSource_EmptyInput(t *testing.T) {
	src := NewPlainSource(strings.NewReader(""), nil)

	line, err := src.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)
}

func TestPlainSource_ReadError(t *testing.T) {
	src := NewPlainSource(failingReader{}, nil)

	_, err := src.ReadLine("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestNew_NonTerminalUsesPlainSource(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	_, err = f.WriteString("exit\n")
	require.NoError(t, err)
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	src, closer, err := New(f, io.Discard, "")
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &PlainSource{}, src)
	line, err := src.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "exit", line)
}
