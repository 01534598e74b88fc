package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestConsole(t *testing.T) {
	original := color.NoColor
	DisableColors()
	t.Cleanup(func() { color.NoColor = original })

	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Print("/home/user")
	c.Error("wasabi: expected argument to \"cd\"")
	c.Writer().Write([]byte("raw\n"))

	if got, want := out.String(), "/home/user\nraw\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "wasabi: expected argument to \"cd\"\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}
