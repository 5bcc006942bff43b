package domain

import (
	"fmt"
	"strings"
)

// Whence values line up with io.SeekStart, io.SeekCurrent and io.SeekEnd.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

func (w Whence) String() string {
	switch w {
	case SeekSet:
		return "set"
	case SeekCur:
		return "cur"
	case SeekEnd:
		return "end"
	default:
		return fmt.Sprintf("whence(%d)", int(w))
	}
}

func ParseWhence(raw string) (Whence, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "set", "start":
		return SeekSet, nil
	case "cur", "current":
		return SeekCur, nil
	case "end":
		return SeekEnd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWhence, raw)
	}
}

// SeekPosition resolves a seek request against the cursor and clamps the
// result into [0, maxIndex]. SeekEnd counts backwards: maxIndex - offset.
// An unknown whence resolves to 0. The cursor must already lie in
// [0, maxIndex]; offsets saturate instead of wrapping.
func SeekPosition(cursor, offset, maxIndex int64, whence Whence) int64 {
	switch whence {
	case SeekSet:
		return clampIndex(offset, maxIndex)
	case SeekCur:
		switch {
		case offset > maxIndex-cursor:
			return maxIndex
		case offset < -cursor:
			return 0
		default:
			return cursor + offset
		}
	case SeekEnd:
		if offset < 0 {
			return maxIndex
		}
		return clampIndex(maxIndex-offset, maxIndex)
	default:
		return 0
	}
}

func clampIndex(pos, maxIndex int64) int64 {
	if pos > maxIndex {
		return maxIndex
	}
	if pos < 0 {
		return 0
	}

	return pos
}
