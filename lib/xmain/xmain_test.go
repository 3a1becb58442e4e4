package xmain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

func testState(stderr *bytes.Buffer) *State {
	env := xos.NewEnv(nil)
	return &State{
		Name: "test",
		Env:  env,
		Log:  cmdlog.Log(env, stderr),
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		err    error
		code   int
		stderr string
	}{
		{name: "exit", err: ExitErrorf(3, "found %d invalid files", 2), code: 3, stderr: "found 2 invalid files"},
		{name: "wrapped_exit", err: fmt.Errorf("failed to fmt: %w", ExitErrorf(1, "unformatted")), code: 1, stderr: "unformatted"},
		{name: "silent_exit", err: ExitError{Code: 4}, code: 4},
		{name: "usage", err: fmt.Errorf("failed: %w", UsageErrorf("missing file")), code: 1, stderr: "Run with --help to see usage."},
		{name: "other", err: fmt.Errorf("boom"), code: 1, stderr: "boom"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stderr := &bytes.Buffer{}
			ms := testState(stderr)
			assert.Equal(t, tc.code, ms.ExitCode(tc.err))
			if tc.stderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tc.stderr)
			}
		})
	}
}

func TestMainSignal(t *testing.T) {
	t.Parallel()

	ms := testState(&bytes.Buffer{})
	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGTERM
	err := ms.Main(context.Background(), sigs, func(ctx context.Context, ms *State) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.NoError(t, err)

	sigs <- os.Interrupt
	err = ms.Main(context.Background(), sigs, func(ctx context.Context, ms *State) error {
		<-ctx.Done()
		return nil
	})
	assert.Equal(t, ExitError{Code: 1}, err)
}

func TestAbsPath(t *testing.T) {
	t.Parallel()

	ms := &State{PWD: "/work"}
	assert.Equal(t, "-", ms.AbsPath("-"))
	assert.Equal(t, "/abs/d.json", ms.AbsPath("/abs/d.json"))
	assert.Equal(t, "/work/sub/d.json", ms.AbsPath("sub/d.json"))
}
