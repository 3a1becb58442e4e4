package main

import (
	"oss.terrastruct.com/unlayerkit/lib/xmain"
	"oss.terrastruct.com/unlayerkit/unlayercli"
)

func main() {
	xmain.Main(unlayercli.Run)
}
