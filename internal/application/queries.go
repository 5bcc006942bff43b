package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/fibdrv/internal/domain"
)

// Reading pairs a computed value with the duration reported by the write
// that followed it.
type Reading struct {
	Index   int64
	Digits  string
	Length  int
	Elapsed time.Duration
}

// ReadIndex runs one full client round on the device: open, seek to k, read,
// write, close.
func ReadIndex(ctx context.Context, dev *Device, k int64) (Reading, error) {
	session, err := dev.Open(ctx)
	if err != nil {
		return Reading{}, err
	}
	defer session.Close()

	pos := session.SeekTo(k, domain.SeekSet)
	value, err := session.Read(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("read F(%d): %w", pos, err)
	}

	ns, err := session.Write(nil)
	if err != nil {
		return Reading{}, fmt.Errorf("report elapsed time: %w", err)
	}

	return Reading{
		Index:   value.Index,
		Digits:  value.String(),
		Length:  value.Len(),
		Elapsed: time.Duration(ns),
	}, nil
}
