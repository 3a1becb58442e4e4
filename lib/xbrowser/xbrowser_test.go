package xbrowser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenDisabled(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Open(context.Background(), "0", "/nonexistent.html"))
}

func TestOpenCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	marker := filepath.Join(dir, "opened")
	err := Open(context.Background(), "touch", marker)
	assert.NoError(t, err)
	_, err = os.Stat(marker)
	assert.NoError(t, err)

	assert.Error(t, Open(context.Background(), "false", marker))
}

func TestOpenDefaultInTestMode(t *testing.T) {
	t.Setenv("TEST_MODE", "1")

	assert.NoError(t, Open(context.Background(), "", "/nonexistent.html"))
}
