// Package unlayercli implements the unlayerkit command.
package unlayercli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/unlayerkit/lib/go2"
	"oss.terrastruct.com/unlayerkit/lib/log"
	"oss.terrastruct.com/unlayerkit/lib/version"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
)

type flags struct {
	export   bool
	options  bool
	audit    bool
	check    bool
	wait     time.Duration
	markdown string
	browser  string
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)
	defer log.Sync(ctx)
	// These should be kept up-to-date with help.go
	debugFlag, err := ms.Opts.Bool("UNLAYERKIT_DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid UNLAYERKIT_DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	exportFlag, err := ms.Opts.Bool("UNLAYERKIT_EXPORT", "export", "e", false, `treat inputs as export data ({"html", "design"}) instead of bare designs`)
	if err != nil {
		return err
	}
	optionsFlag, err := ms.Opts.Bool("", "options", "", false, "with validate, treat inputs as editor options")
	if err != nil {
		return err
	}
	auditFlag, err := ms.Opts.Bool("", "audit", "", false, "with sanitize, report executable markup that survived sanitizing and exit 1 if there is any")
	if err != nil {
		return err
	}
	checkFlag, err := ms.Opts.Bool("", "check", "", false, "with fmt, check that the files are formatted instead of rewriting them")
	if err != nil {
		return err
	}
	waitFlag, err := ms.Opts.Duration("UNLAYERKIT_WAIT", "wait", "", 100*time.Millisecond, "with watch, how long the input must stay unchanged before it is rebuilt")
	if err != nil {
		return err
	}
	markdownFlag := ms.Opts.String("", "markdown", "m", "", "with sample, markdown file rendered into the sample's text block")
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch opens. Setting to 0 opens no browser.")
	timeoutFlag, err := ms.Opts.Int64("UNLAYERKIT_TIMEOUT", "timeout", "", 60, "the maximum number of seconds a command runs for before timing out. Not applied to watch.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	fl := flags{
		export:   *exportFlag,
		options:  *optionsFlag,
		audit:    *auditFlag,
		check:    *checkFlag,
		wait:     *waitFlag,
		markdown: *markdownFlag,
		browser:  *browserFlag,
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		help(ms)
		return xmain.UsageErrorf("a subcommand is required")
	}
	cmd := ms.Opts.Flags.Arg(0)
	args := ms.Opts.Flags.Args()[1:]
	ctx = log.Named(ctx, cmd)
	log.Debug(ctx, "running", slog.F("args", args), slog.F("export", fl.export))

	if cmd == "watch" {
		return watchCmd(ctx, ms, fl, args)
	}

	ctx, cancel := log.WithTimeout(ctx, time.Duration(*timeoutFlag)*time.Second)
	defer cancel()

	switch cmd {
	case "validate":
		return validateCmd(ctx, ms, fl, args)
	case "sanitize":
		return sanitizeCmd(ctx, ms, fl, args)
	case "text":
		return textCmd(ctx, ms, fl, args)
	case "size":
		return sizeCmd(ctx, ms, args)
	case "sample":
		return sampleCmd(ctx, ms, fl, args)
	case "fmt":
		return fmtCmd(ctx, ms, fl, args)
	case "version":
		if len(args) > 0 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", cmd)
	}
}

// marshalIndent renders v as indented JSON ending in exactly one newline. Markup
// in string values is left unescaped.
func marshalIndent(v interface{}) []byte {
	return []byte(strings.TrimRight(xjson.MarshalIndent(v), "\n") + "\n")
}

// inputOutput resolves the conventional "<in> [out]" arguments. out defaults to
// stdout.
func inputOutput(ms *xmain.State, cmd string, args []string) (string, string, error) {
	switch len(args) {
	case 0:
		return "", "", xmain.UsageErrorf("%s must be passed an input file, use - for stdin", cmd)
	case 1:
		return ms.AbsPath(args[0]), "-", nil
	case 2:
		return ms.AbsPath(args[0]), ms.AbsPath(args[1]), nil
	default:
		return "", "", xmain.UsageErrorf("%s accepts at most an input and an output file", cmd)
	}
}
