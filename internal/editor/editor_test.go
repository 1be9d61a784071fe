package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Precedence(t *testing.T) {
	t.Setenv("TASKEASY_EDITOR", "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	assert.Equal(t, []string{"vi"}, Command())

	t.Setenv("VISUAL", "nano")
	assert.Equal(t, []string{"nano"}, Command())

	t.Setenv("EDITOR", "code -w")
	assert.Equal(t, []string{"code", "-w"}, Command())

	t.Setenv("TASKEASY_EDITOR", "hx")
	assert.Equal(t, []string{"hx"}, Command())
}

func TestEditTemp(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}
	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho edited >> \"$1\"\n"), 0755))
	t.Setenv("TASKEASY_EDITOR", script)

	out, err := EditTemp("task-*.md", []byte("original\n"))
	require.NoError(t, err)
	assert.Equal(t, "original\nedited\n", string(out))
}

func TestEditTemp_EditorFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}
	t.Setenv("TASKEASY_EDITOR", "false")
	_, err := EditTemp("task-*.md", []byte("x"))
	assert.Error(t, err)
}
