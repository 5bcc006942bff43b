package application

import (
	"context"

	"github.com/bnema/fibdrv/internal/domain"
)

// Session is the handle returned by Device.Open. Sharing one Session between
// goroutines is allowed but seeks and reads then race on the device cursor.
type Session struct {
	dev    *Device
	serial uint32
}

func (s *Session) Serial() uint32 {
	return s.serial
}

// SeekTo works even after Close, like Device.SeekTo.
func (s *Session) SeekTo(offset int64, whence domain.Whence) int64 {
	return s.dev.SeekTo(offset, whence)
}

// Read computes F(cursor) and records how long it took. The cursor is not
// advanced.
func (s *Session) Read(ctx context.Context) (domain.Value, error) {
	if !s.dev.holds(s.serial) {
		return domain.Value{}, domain.ErrSessionClosed
	}

	return s.dev.read(ctx)
}

// Write ignores p and reports the duration of the last read in nanoseconds,
// whichever session performed it.
func (s *Session) Write(p []byte) (int64, error) {
	if !s.dev.holds(s.serial) {
		return 0, domain.ErrSessionClosed
	}

	return s.dev.LastDuration().Nanoseconds(), nil
}

func (s *Session) Close() error {
	return s.dev.release(s.serial)
}
