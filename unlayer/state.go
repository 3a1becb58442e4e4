package unlayer

import (
	"fmt"
)

// LoadingState tracks the editor script and instance lifecycle.
type LoadingState int

const (
	Idle LoadingState = iota
	Loading
	Loaded
	Failed
)

func (s LoadingState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "error"
	default:
		return fmt.Sprintf("LoadingState(%d)", int(s))
	}
}

func (s LoadingState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LoadingState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = Idle
	case "loading":
		*s = Loading
	case "loaded":
		*s = Loaded
	case "error":
		*s = Failed
	default:
		return fmt.Errorf("unknown loading state %q", b)
	}
	return nil
}

// Error is a component level failure reported to callers.
type Error struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
