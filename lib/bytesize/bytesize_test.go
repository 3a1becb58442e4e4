package bytesize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		bytes float64
		exp   string
	}{
		{name: "zero", bytes: 0, exp: "0 Bytes"},
		{name: "one", bytes: 1, exp: "1 Bytes"},
		{name: "bytes", bytes: 1023, exp: "1023 Bytes"},
		{name: "kb", bytes: 1024, exp: "1 KB"},
		{name: "kb_fraction", bytes: 1536, exp: "1.5 KB"},
		{name: "kb_rounded", bytes: 1234, exp: "1.21 KB"},
		{name: "mb", bytes: 5 * 1024 * 1024, exp: "5 MB"},
		{name: "gb", bytes: 1.25 * 1024 * 1024 * 1024, exp: "1.25 GB"},
		{name: "past_gb", bytes: 1024 * 1024 * 1024 * 1024, exp: "1024 GB"},
		{name: "sub_byte", bytes: 0.5, exp: "0.5 Bytes"},
		{name: "negative", bytes: -1536, exp: "-1.5 KB"},
		{name: "nan", bytes: math.NaN(), exp: "NaN Bytes"},
		{name: "inf", bytes: math.Inf(1), exp: "+Inf Bytes"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			diff.AssertStringEq(t, tc.exp, Format(tc.bytes))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	n, err := Parse("1.5 KiB")
	assert.NoError(t, err)
	assert.Equal(t, uint64(1536), n)

	n, err = Parse("512")
	assert.NoError(t, err)
	assert.Equal(t, uint64(512), n)

	_, err = Parse("lots")
	assert.Error(t, err)
}
