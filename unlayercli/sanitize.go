package unlayercli

import (
	"context"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/log"
	"oss.terrastruct.com/unlayerkit/lib/sanitize"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func sanitizeCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to sanitize")

	inputPath, outputPath, err := inputOutput(ms, "sanitize", args)
	if err != nil {
		return err
	}
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	var html string
	var output []byte
	if fl.export {
		ed, err := unlayer.ParseExportData(input)
		if err != nil {
			return err
		}
		ed = ed.Sanitized()
		html = ed.HTML
		output = marshalIndent(ed)
	} else {
		html = sanitize.HTML(string(input))
		output = []byte(html)
	}
	log.Debug(ctx, "sanitized", slog.F("removed", len(input)-len(output)))

	if fl.audit {
		findings := sanitize.Audit(html)
		for _, f := range findings {
			ms.Log.Warn.Print(f.String())
		}
		if len(findings) > 0 {
			return xmain.ExitErrorf(1, "%d executable constructs survived sanitizing %s", len(findings), inputPath)
		}
	}

	return ms.WritePath(outputPath, output)
}
