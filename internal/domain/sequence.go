package domain

import (
	"fmt"
	"math"
)

const (
	DefaultMaxIndex    int64 = 500
	DefaultAllocBudget       = 64 << 20
)

// Allocator hands out the slots for one sequence computation.
type Allocator func(slots, capacity int) ([]Decimal, error)

// BudgetAllocator backs all slots with one byte slice and refuses requests
// larger than budget bytes. A non-positive budget disables the limit.
func BudgetAllocator(budget int) Allocator {
	return func(slots, capacity int) ([]Decimal, error) {
		if slots <= 0 || capacity <= 0 {
			return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, slots, capacity)
		}
		if budget > 0 && slots > budget/capacity {
			return nil, fmt.Errorf("%w: %d slots of %d bytes exceeds budget of %d bytes", ErrAllocation, slots, capacity, budget)
		}

		backing := make([]byte, slots*capacity)
		decimals := make([]Decimal, slots)
		for i := range decimals {
			lo, hi := i*capacity, (i+1)*capacity
			decimals[i] = Decimal{buf: backing[lo:hi:hi]}
		}

		return decimals, nil
	}
}

var (
	log10Phi   = math.Log10((1 + math.Sqrt(5)) / 2)
	log10Sqrt5 = math.Log10(math.Sqrt(5))
)

// DigitCount returns the number of decimal digits of F(k), from Binet's
// formula: floor(k*log10(phi) - log10(sqrt(5))) + 1.
func DigitCount(k int64) int {
	if k < 2 {
		return 1
	}

	return int(math.Floor(float64(k)*log10Phi-log10Sqrt5)) + 1
}

// RequiredCapacity is the smallest Decimal capacity that holds every value up
// to F(maxIndex) plus its terminator.
func RequiredCapacity(maxIndex int64) int {
	return DigitCount(maxIndex) + 1
}

// Value is a computed Fibonacci number in display order.
type Value struct {
	Index  int64
	Digits []byte
}

func (v Value) Len() int {
	return len(v.Digits)
}

func (v Value) String() string {
	return string(v.Digits)
}

type Generator struct {
	maxIndex int64
	capacity int
	alloc    Allocator
}

type GeneratorOption func(*Generator)

func WithMaxIndex(maxIndex int64) GeneratorOption {
	return func(g *Generator) {
		g.maxIndex = maxIndex
	}
}

func WithCapacity(capacity int) GeneratorOption {
	return func(g *Generator) {
		g.capacity = capacity
	}
}

func WithAllocator(alloc Allocator) GeneratorOption {
	return func(g *Generator) {
		g.alloc = alloc
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		maxIndex: DefaultMaxIndex,
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.alloc == nil {
		g.alloc = BudgetAllocator(DefaultAllocBudget)
	}

	return g
}

func (g *Generator) MaxIndex() int64 {
	return g.maxIndex
}

func (g *Generator) Capacity() int {
	return g.capacity
}

// Generate computes F(k) by filling slots 0..k with repeated additions.
// Nothing is cached between calls.
func (g *Generator) Generate(k int64) (Value, error) {
	if k < 0 {
		return Value{}, fmt.Errorf("%w: %d", ErrNegativeIndex, k)
	}
	if k > g.maxIndex {
		return Value{}, fmt.Errorf("%w: %d > %d", ErrIndexOutOfRange, k, g.maxIndex)
	}

	fib, err := g.alloc(int(k)+1, g.capacity)
	if err != nil {
		return Value{}, err
	}

	if err := fib[0].SetLiteral("0"); err != nil {
		return Value{}, fmt.Errorf("seed F(0): %w", err)
	}
	if k >= 1 {
		if err := fib[1].SetLiteral("1"); err != nil {
			return Value{}, fmt.Errorf("seed F(1): %w", err)
		}
	}
	for i := int64(2); i <= k; i++ {
		if err := Add(fib[i-1], fib[i-2], &fib[i]); err != nil {
			return Value{}, fmt.Errorf("compute F(%d): %w", i, err)
		}
	}

	last := fib[k]
	n := last.Len()
	Reverse(last.buf[:n])

	digits := make([]byte, n)
	copy(digits, last.buf[:n])

	return Value{Index: k, Digits: digits}, nil
}
