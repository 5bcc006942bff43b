package domain

import "fmt"

// DefaultCapacity holds F(500), which has 105 digits, with room to spare.
const DefaultCapacity = 128

// Decimal is a non-negative integer stored as ASCII digits, least significant
// first, terminated by a zero byte inside a fixed-capacity buffer.
type Decimal struct {
	buf []byte
}

func NewDecimal(capacity int) Decimal {
	return Decimal{buf: make([]byte, capacity)}
}

// FromLiteral builds a Decimal from a most-significant-first digit literal.
func FromLiteral(s string, capacity int) (Decimal, error) {
	d := NewDecimal(capacity)
	if err := d.SetLiteral(s); err != nil {
		return Decimal{}, err
	}

	return d, nil
}

func (d *Decimal) SetLiteral(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty literal", ErrInvalidDigit)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidDigit, s)
		}
	}
	if len(s)+1 > len(d.buf) {
		return fmt.Errorf("%w: literal of %d digits in %d bytes", ErrOverflow, len(s), len(d.buf))
	}

	for i := 0; i < len(s); i++ {
		d.buf[i] = s[len(s)-1-i]
	}
	d.buf[len(s)] = 0

	return nil
}

// Len returns the number of digits before the terminator.
func (d Decimal) Len() int {
	for i, c := range d.buf {
		if c == 0 {
			return i
		}
	}

	return len(d.buf)
}

func (d Decimal) Cap() int {
	return len(d.buf)
}

// Bytes returns the digits most significant first.
func (d Decimal) Bytes() []byte {
	n := d.Len()
	out := make([]byte, n)
	copy(out, d.buf[:n])
	Reverse(out)
	return out
}

func (d Decimal) String() string {
	return string(d.Bytes())
}

func (d *Decimal) setZero() {
	switch {
	case len(d.buf) >= 2:
		d.buf[0] = '0'
		d.buf[1] = 0
	case len(d.buf) == 1:
		d.buf[0] = 0
	}
}

// Add stores a+b into out. Every digit write is checked against the capacity
// of out, leaving room for the terminator; on overflow out is reset to "0".
// out may alias a or b.
func Add(a, b Decimal, out *Decimal) error {
	la, lb := a.Len(), b.Len()
	n := max(la, lb)

	carry := 0
	i := 0
	for ; i < n; i++ {
		if i+1 >= len(out.buf) {
			out.setZero()
			return fmt.Errorf("%w: sum needs more than %d bytes", ErrOverflow, len(out.buf))
		}

		sum := carry
		if i < la {
			sum += int(a.buf[i] - '0')
		}
		if i < lb {
			sum += int(b.buf[i] - '0')
		}
		out.buf[i] = '0' + byte(sum%10)
		carry = sum / 10
	}

	if carry > 0 {
		if i+1 >= len(out.buf) {
			out.setZero()
			return fmt.Errorf("%w: carry needs more than %d bytes", ErrOverflow, len(out.buf))
		}
		out.buf[i] = '1'
		i++
	}
	out.buf[i] = 0

	return nil
}

// Reverse reverses buf in place with an XOR swap walking in from both ends.
func Reverse(buf []byte) {
	n := len(buf)
	for i := 0; i < n/2; i++ {
		j := n - i - 1
		buf[i] ^= buf[j]
		buf[j] ^= buf[i]
		buf[i] ^= buf[j]
	}
}
