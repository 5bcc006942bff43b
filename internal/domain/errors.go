package domain

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

var (
	// ErrBusy matches iox.ErrWouldBlock: a second open is rejected, never queued.
	ErrBusy = fmt.Errorf("fibdrv is in use: %w", iox.ErrWouldBlock)

	ErrSessionClosed   = errors.New("session closed")
	ErrOverflow        = errors.New("decimal capacity exceeded")
	ErrInvalidDigit    = errors.New("invalid decimal digit")
	ErrAllocation      = errors.New("cannot allocate sequence buffer")
	ErrNegativeIndex   = errors.New("negative fibonacci index")
	ErrIndexOutOfRange = errors.New("fibonacci index out of range")
	ErrInvalidWhence   = errors.New("invalid seek whence")
	ErrReportNotFound  = errors.New("bench report not found")
)
