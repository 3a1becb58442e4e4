package xmain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/xos"
)

func TestOptsEnv(t *testing.T) {
	t.Parallel()

	env := xos.NewEnv([]string{
		"UNLAYERKIT_EXPORT=true",
		"UNLAYERKIT_WAIT=250ms",
		"UNLAYERKIT_BAD=maybe",
	})
	o := NewOpts(env, nil, []string{"--wait", "1s"})

	exportFlag, err := o.Bool("UNLAYERKIT_EXPORT", "export", "e", false, "")
	assert.NoError(t, err)
	waitFlag, err := o.Duration("UNLAYERKIT_WAIT", "wait", "", time.Second, "")
	assert.NoError(t, err)
	_, err = o.Bool("UNLAYERKIT_BAD", "bad", "", false, "")
	assert.Error(t, err)

	assert.True(t, *exportFlag)
	assert.Equal(t, 250*time.Millisecond, *waitFlag)

	assert.NoError(t, o.Flags.Parse(o.Args))
	assert.Equal(t, time.Second, *waitFlag)

	assert.Contains(t, o.Help(), "- $UNLAYERKIT_EXPORT")
}

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exiting with code 2: nope", ExitErrorf(2, "no%s", "pe").Error())
	assert.Equal(t, "bad usage: missing file", UsageErrorf("missing %s", "file").Error())
}

func TestOptsInvalidEnv(t *testing.T) {
	t.Parallel()

	env := xos.NewEnv([]string{
		"UNLAYERKIT_TIMEOUT=soon",
		"UNLAYERKIT_WAIT=5",
		"BROWSER=firefox",
	})
	o := NewOpts(env, nil, nil)

	_, err := o.Int64("UNLAYERKIT_TIMEOUT", "timeout", "", 60, "")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `Expected int64. Found "soon"`)
	}
	_, err = o.Duration("UNLAYERKIT_WAIT", "wait", "", time.Second, "")
	assert.Error(t, err)
	assert.Equal(t, "firefox", *o.String("BROWSER", "browser", "", "", ""))
	noEnv, err := o.Bool("", "check", "", true, "")
	assert.NoError(t, err)
	assert.True(t, *noEnv)

	assert.Equal(t, []string{"UNLAYERKIT_TIMEOUT", "UNLAYERKIT_WAIT", "BROWSER"}, o.registeredEnvs)
}
