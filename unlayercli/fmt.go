package unlayercli

import (
	"bytes"
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/log"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func fmtCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to fmt")

	if len(args) == 0 {
		return xmain.UsageErrorf("fmt must be passed at least one file to be formatted")
	}

	unformattedCount := 0

	for _, inputPath := range args {
		inputPath = ms.AbsPath(inputPath)
		input, err := ms.ReadPath(inputPath)
		if err != nil {
			return err
		}

		var v interface{}
		if fl.export {
			v, err = unlayer.ParseExportData(input)
		} else {
			v, err = unlayer.ParseDesign(input)
		}
		if err != nil {
			return err
		}
		output := marshalIndent(v)

		if !bytes.Equal(output, input) {
			if fl.check {
				unformattedCount += 1
				log.Warn(ctx, inputPath)
			} else {
				if err := ms.WritePath(inputPath, output); err != nil {
					return err
				}
			}
		}
	}

	if unformattedCount > 0 {
		pluralFiles := "file"
		if unformattedCount > 1 {
			pluralFiles = "files"
		}

		return xmain.ExitErrorf(1, "found %d unformatted %s. Run unlayerkit fmt to fix.", unformattedCount, pluralFiles)
	}

	return nil
}
