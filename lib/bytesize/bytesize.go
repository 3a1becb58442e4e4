// Package bytesize formats byte counts for people.
package bytesize

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"oss.terrastruct.com/unlayerkit/lib/go2"
)

const k = 1024

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders bytes with a binary (1024) base and at most two decimals,
// e.g. 1536 is "1.5 KB". Anything past the largest unit is expressed in GB.
//
// Negative values format their magnitude with a leading minus sign.
func Format(bytes float64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return strconv.FormatFloat(bytes, 'f', -1, 64) + " " + units[0]
	}
	sign := ""
	if bytes < 0 {
		sign = "-"
		bytes = -bytes
	}

	i := int(math.Floor(math.Log(bytes) / math.Log(k)))
	i = go2.Clamp(i, 0, len(units)-1)

	v := round2(bytes / math.Pow(k, float64(i)))
	return sign + strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

// round2 rounds to two decimals the way fixed-point formatting does, so
// trailing zeros disappear once the result is re-formatted.
func round2(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// Parse reads a human size like "1.5MB", "2 KiB" or "512" into bytes.
func Parse(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}
