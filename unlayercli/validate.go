package unlayercli

import (
	"context"
	"errors"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/bytesize"
	"oss.terrastruct.com/unlayerkit/lib/log"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayer"
)

func validateCmd(ctx context.Context, ms *xmain.State, fl flags, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	if len(args) == 0 {
		return xmain.UsageErrorf("validate must be passed at least one file to be validated")
	}

	if fl.export && fl.options {
		return xmain.UsageErrorf("validate accepts only one of --export and --options")
	}
	kind := "design"
	switch {
	case fl.export:
		kind = "export data"
	case fl.options:
		kind = "editor options"
	}

	invalidCount := 0
	for _, inputPath := range args {
		inputPath = ms.AbsPath(inputPath)
		input, err := ms.ReadPath(inputPath)
		if err != nil {
			return err
		}

		if fl.options {
			_, err = unlayer.ParseOptions(input)
			if err != nil {
				invalidCount++
				logInvalid(ms, inputPath, err)
				continue
			}
			ms.Log.Success.Printf("%s is valid %s", inputPath, kind)
			continue
		}

		var d *unlayer.Design
		if fl.export {
			var ed *unlayer.ExportData
			ed, err = unlayer.ParseExportData(input)
			if ed != nil {
				d = ed.Design
			}
		} else {
			d, err = unlayer.ParseDesign(input)
		}
		if err != nil {
			invalidCount++
			logInvalid(ms, inputPath, err)
			continue
		}

		log.Debug(ctx, "parsed",
			slog.F("path", inputPath),
			slog.F("size", bytesize.Format(float64(len(input)))),
			slog.F("contents", len(d.Contents())),
		)
		ms.Log.Success.Printf("%s is valid %s", inputPath, kind)
	}

	if invalidCount > 0 {
		pluralFiles := "file"
		if invalidCount > 1 {
			pluralFiles = "files"
		}
		return xmain.ExitErrorf(1, "found %d invalid %s", invalidCount, pluralFiles)
	}
	return nil
}

func logInvalid(ms *xmain.State, inputPath string, err error) {
	var uerr *unlayer.Error
	if errors.As(err, &uerr) && uerr.Code != "" {
		ms.Log.Error.Printf("%s: %s", inputPath, uerr)
		return
	}
	ms.Log.Error.Printf("%s: %v", inputPath, err)
}
