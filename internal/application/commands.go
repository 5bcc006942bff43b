package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/fibdrv/internal/domain"
)

type Op string

const (
	OpOpen  Op = "open"
	OpClose Op = "close"
	OpSeek  Op = "seek"
	OpRead  Op = "read"
	OpWrite Op = "write"
)

type Command struct {
	Op      Op
	Offset  int64
	Whence  domain.Whence
	Payload []byte
}

// ParseCommand parses one console line. Blank lines and lines starting with
// '#' yield ok == false.
//
//	open
//	seek <offset> [set|cur|end]
//	read
//	write [payload...]
//	close
func ParseCommand(line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	fields := strings.Fields(line)
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]

	switch op {
	case OpOpen, OpClose, OpRead:
		if len(args) != 0 {
			return Command{}, false, fmt.Errorf("%s takes no arguments", op)
		}
		return Command{Op: op}, true, nil
	case OpWrite:
		payload := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		return Command{Op: op, Payload: []byte(payload)}, true, nil
	case OpSeek:
		if len(args) < 1 || len(args) > 2 {
			return Command{}, false, fmt.Errorf("usage: seek <offset> [set|cur|end]")
		}
		offset, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return Command{}, false, fmt.Errorf("parse seek offset %q: %w", args[0], err)
		}
		whence := domain.SeekSet
		if len(args) == 2 {
			whence, err = domain.ParseWhence(args[1])
			if err != nil {
				return Command{}, false, err
			}
		}
		return Command{Op: op, Offset: offset, Whence: whence}, true, nil
	default:
		return Command{}, false, fmt.Errorf("unknown command %q", fields[0])
	}
}
