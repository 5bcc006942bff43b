package application

import (
	"context"
	"fmt"

	"github.com/bnema/fibdrv/internal/domain"
)

// Console drives a Device one Command at a time, the way a client program
// drives a device node: it remembers the session it opened, if any.
type Console struct {
	dev     *Device
	session *Session
}

func NewConsole(dev *Device) *Console {
	return &Console{dev: dev}
}

// Exec runs cmd and returns a one-line result.
func (c *Console) Exec(ctx context.Context, cmd Command) (string, error) {
	switch cmd.Op {
	case OpOpen:
		session, err := c.dev.Open(ctx)
		if err != nil {
			return "", err
		}
		c.session = session
		return fmt.Sprintf("opened session %d", session.Serial()), nil
	case OpClose:
		if c.session == nil {
			return "", domain.ErrSessionClosed
		}
		if err := c.session.Close(); err != nil {
			return "", err
		}
		serial := c.session.Serial()
		c.session = nil
		return fmt.Sprintf("closed session %d", serial), nil
	case OpSeek:
		return fmt.Sprintf("position %d", c.dev.SeekTo(cmd.Offset, cmd.Whence)), nil
	case OpRead:
		if c.session == nil {
			return "", domain.ErrSessionClosed
		}
		value, err := c.session.Read(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("F(%d) = %s (%d digits)", value.Index, value, value.Len()), nil
	case OpWrite:
		if c.session == nil {
			return "", domain.ErrSessionClosed
		}
		ns, err := c.session.Write(cmd.Payload)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("elapsed %d ns", ns), nil
	default:
		return "", fmt.Errorf("unknown command %q", cmd.Op)
	}
}

// Close releases the session left open by the script, if any.
func (c *Console) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil

	return err
}
