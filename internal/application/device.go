package application

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"github.com/bnema/fibdrv/internal/domain"
	"github.com/bnema/fibdrv/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/bnema/fibdrv/internal/application"

// serials hands out session identifiers; 0 means "not held".
var serials atomix.Uint32

func nextSerial() uint32 {
	for {
		if s := serials.Add(1); s != 0 {
			return s
		}
	}
}

// Device is the process-wide Fibonacci engine. At most one Session holds it
// at a time. The cursor and the last measured duration belong to the device,
// not to a session, so they outlive Close.
type Device struct {
	gen    *domain.Generator
	clock  ports.Clock
	logger *log.Logger
	tracer trace.Tracer

	mu           sync.Mutex
	holder       uint32
	cursor       int64
	lastDuration time.Duration
}

func NewDevice(gen *domain.Generator, clock ports.Clock, logger *log.Logger) *Device {
	if gen == nil {
		gen = domain.NewGenerator()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Device{
		gen:    gen,
		clock:  clock,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

func (d *Device) MaxIndex() int64 {
	return d.gen.MaxIndex()
}

// Open acquires the device without waiting. A held device yields
// domain.ErrBusy and is left untouched.
func (d *Device) Open(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.holder != 0 {
		d.logger.Printf("fibdrv is in use by session %d", d.holder)
		return nil, domain.ErrBusy
	}

	d.holder = nextSerial()
	return &Session{dev: d, serial: d.holder}, nil
}

func (d *Device) InUse() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.holder != 0
}

func (d *Device) Cursor() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cursor
}

// SeekTo moves the cursor and returns the clamped position. It does not require
// an open session.
func (d *Device) SeekTo(offset int64, whence domain.Whence) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cursor = domain.SeekPosition(d.cursor, offset, d.gen.MaxIndex(), whence)
	return d.cursor
}

// LastDuration is zero until the first successful read in this process.
func (d *Device) LastDuration() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastDuration
}

func (d *Device) holds(serial uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.holder == serial
}

func (d *Device) release(serial uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.holder != serial {
		return domain.ErrSessionClosed
	}
	d.holder = 0

	return nil
}

func (d *Device) read(ctx context.Context) (domain.Value, error) {
	k := d.Cursor()

	value, elapsed, err := d.timedGenerate(ctx, k)
	if err != nil {
		return domain.Value{}, err
	}

	d.mu.Lock()
	d.lastDuration = elapsed
	d.mu.Unlock()

	return value, nil
}
