package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

// Opts registers flags whose defaults may come from environment variables.
type Opts struct {
	Args  []string
	Flags *pflag.FlagSet
	env   *xos.Env
	log   *cmdlog.Logger

	registeredEnvs []string
}

func NewOpts(env *xos.Env, log *cmdlog.Logger, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:  args,
		Flags: flags,
		env:   env,
		log:   log,
	}
}

// Help lists the flags followed by the environment variables backing them.
func (o *Opts) Help() string {
	b := &strings.Builder{}
	o.Flags.SetOutput(b)
	o.Flags.PrintDefaults()
	o.Flags.SetOutput(io.Discard)

	if len(o.registeredEnvs) == 0 {
		return b.String()
	}
	b.WriteString("\nYou may persistently set the following as environment variables (flags take precedent):\n")
	envs := make([]string, len(o.registeredEnvs))
	for i, e := range o.registeredEnvs {
		envs[i] = "- $" + e
	}
	b.WriteString(strings.Join(envs, "\n"))
	return b.String()
}

// envDefault returns def unless envKey is set, in which case its value parsed by
// parse is returned instead. kind names the expected type in errors.
func envDefault[T any](o *Opts, envKey, kind string, def T, parse func(string) (T, error)) (T, error) {
	if envKey == "" {
		return def, nil
	}
	o.registeredEnvs = append(o.registeredEnvs, envKey)
	s := o.env.Getenv(envKey)
	if s == "" {
		return def, nil
	}
	v, err := parse(s)
	if err != nil {
		return def, fmt.Errorf(`invalid environment variable %s. Expected %s. Found "%v".`, envKey, kind, s)
	}
	return v, nil
}

func (o *Opts) Int64(envKey, flag, shortFlag string, defaultVal int64, usage string) (*int64, error) {
	defaultVal, err := envDefault(o, envKey, "int64", defaultVal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
	if err != nil {
		return nil, err
	}
	return o.Flags.Int64P(flag, shortFlag, defaultVal, usage), nil
}

// Duration accepts time.ParseDuration syntax in both the flag and the environment variable.
func (o *Opts) Duration(envKey, flag, shortFlag string, defaultVal time.Duration, usage string) (*time.Duration, error) {
	defaultVal, err := envDefault(o, envKey, "duration", defaultVal, time.ParseDuration)
	if err != nil {
		return nil, err
	}
	return o.Flags.DurationP(flag, shortFlag, defaultVal, usage), nil
}

func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	defaultVal, _ = envDefault(o, envKey, "string", defaultVal, func(s string) (string, error) {
		return s, nil
	})
	return o.Flags.StringP(flag, shortFlag, defaultVal, usage)
}

func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	defaultVal, err := envDefault(o, envKey, "bool", defaultVal, parseBool)
	if err != nil {
		return nil, err
	}
	return o.Flags.BoolP(flag, shortFlag, defaultVal, usage), nil
}

// parseBool accepts only 0, 1, false and true.
func parseBool(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a bool: %q", s)
	}
}
