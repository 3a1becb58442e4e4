package unlayercli

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/sanitize"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func textCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to extract text")

	if len(args) != 1 {
		return xmain.UsageErrorf("text must be passed exactly one input file, use - for stdin")
	}
	inputPath := ms.AbsPath(args[0])
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	html := string(input)
	if fl.export {
		ed, err := unlayer.ParseExportData(input)
		if err != nil {
			return err
		}
		html = ed.HTML
	}

	txt, err := sanitize.Text(html)
	if err != nil {
		return err
	}
	return ms.WritePath("-", []byte(txt+"\n"))
}
