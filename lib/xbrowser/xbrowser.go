package xbrowser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"oss.terrastruct.com/unlayerkit/lib/env"
)

// Open shows target, a URL or file path, to the user. browserCmd overrides the
// system default; "0" disables opening altogether. Under TEST_MODE the system
// default is never launched.
func Open(ctx context.Context, browserCmd, target string) error {
	switch browserCmd {
	case "0":
		return nil
	case "":
		if env.Test() {
			return nil
		}
		return browser.OpenFile(target)
	}
	browserSh := fmt.Sprintf("%s \"$1\"", browserCmd)
	cmd := exec.CommandContext(ctx, "sh", "-c", browserSh, "--", target)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
	}
	return nil
}
