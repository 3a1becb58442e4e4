package env

import (
	"os"
	"strconv"
)

func Test() bool {
	return os.Getenv("TEST_MODE") != ""
}

func Debug() bool {
	return os.Getenv("DEBUG") != "" || os.Getenv("UNLAYERKIT_DEBUG") != ""
}

// Timeout is the number of seconds from UNLAYERKIT_TIMEOUT. Non-integer values are ignored.
func Timeout() (int, bool) {
	if s := os.Getenv("UNLAYERKIT_TIMEOUT"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
