package unlayercli

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func sampleCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to write sample")

	if len(args) > 1 {
		return xmain.UsageErrorf("sample accepts at most an output file")
	}
	outputPath := "-"
	if len(args) == 1 {
		outputPath = ms.AbsPath(args[0])
	}

	d := unlayer.SampleDesign()
	if fl.markdown != "" {
		md, err := ms.ReadPath(ms.AbsPath(fl.markdown))
		if err != nil {
			return err
		}
		ct, err := unlayer.MarkdownContent(string(md))
		if err != nil {
			return err
		}
		d.Body.Rows[0].Columns[0].Contents[0] = ct
	}

	return ms.WritePath(outputPath, marshalIndent(d))
}
