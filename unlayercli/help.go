package unlayercli

import (
	"fmt"

	"oss.terrastruct.com/unlayerkit/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--export] <subcommand> [args...]

%[1]s checks, cleans and inspects documents of the hosted design editor.
Use - to read from stdin or write to stdout.

Subcommands:
  %[1]s validate file.json...      - Check that files are designs (export data with --export,
                                      editor options with --options)
  %[1]s fmt [--check] file.json... - Rewrite designs as indented JSON
  %[1]s sanitize in [out]          - Strip scripts, javascript: URLs and event handlers from HTML
                                      (--export sanitizes the html of export data, --audit reports leftovers)
  %[1]s text in                    - Print the visible text of HTML or export data
  %[1]s size n|file...             - Print human readable sizes, e.g. 1536 or 2MiB or a path
  %[1]s sample [out]               - Write the sample design (--markdown file.md for the text block)
  %[1]s watch export.json [out]    - Rebuild sanitized HTML from export data whenever it changes
  %[1]s version                    - Print the version

Flags:
%[2]s
`, ms.Name, ms.Opts.Help())
}
