package unlayercli

import (
	"context"
	"fmt"
	"os"

	"oss.terrastruct.com/unlayerkit/lib/bytesize"
	"oss.terrastruct.com/unlayerkit/lib/xmain"
)

// sizeCmd prints each argument, a file path or a byte count, in human units.
func sizeCmd(ctx context.Context, ms *xmain.State, args []string) error {
	if len(args) == 0 {
		return xmain.UsageErrorf("size must be passed at least one byte count or file")
	}
	for _, arg := range args {
		var n float64
		if fi, err := os.Stat(ms.AbsPath(arg)); err == nil && !fi.IsDir() {
			n = float64(fi.Size())
		} else {
			b, err := bytesize.Parse(arg)
			if err != nil {
				return xmain.UsageErrorf("%q is neither a file nor a size: %v", arg, err)
			}
			n = float64(b)
		}
		fmt.Fprintf(ms.Stdout, "%s\t%s\n", arg, bytesize.Format(n))
	}
	return nil
}
